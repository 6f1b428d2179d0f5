package navigation

// Route names of the app.
const (
	SplashScreen     = "SplashScreen"
	OnboardingScreen = "OnboardingScreen"
	LoginScreen      = "LoginScreen"
	RegisterScreen   = "RegisterScreen"
	HomeScreen       = "HomeScreen"
)

// Params is the optional parameter record passed along with a route.
type Params map[string]any

// Route is one entry of the navigation stack.
type Route struct {
	Name   string
	Params Params
}

// ActionType identifies a navigation command.
type ActionType string

const (
	ActionNavigate ActionType = "NAVIGATE"
	ActionGoBack   ActionType = "GO_BACK"
	ActionReset    ActionType = "RESET"
	ActionPush     ActionType = "PUSH"
)

// Action is what the Navigator hands to the container.
// Name/Params are used by navigate and push; Index/Routes by reset.
type Action struct {
	Type   ActionType
	Name   string
	Params Params
	Index  int
	Routes []Route
}

func NavigateAction(name string, params Params) Action {
	return Action{Type: ActionNavigate, Name: name, Params: params}
}

func GoBackAction() Action {
	return Action{Type: ActionGoBack}
}

func ResetAction(index int, routes ...Route) Action {
	return Action{Type: ActionReset, Index: index, Routes: routes}
}

func PushAction(name string, params Params) Action {
	return Action{Type: ActionPush, Name: name, Params: params}
}
