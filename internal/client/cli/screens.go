package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophonboard/internal/client/models"
	"github.com/dmitrijs2005/gophonboard/internal/client/navigation"
)

type button struct {
	cmd   string
	label string
}

type slide struct {
	title    string
	subtitle string
	buttons  []button
}

var slides = []slide{
	{
		title:    "Welcome",
		subtitle: "Your account is only a few steps away.",
		buttons:  []button{{cmd: "next", label: "Next"}},
	},
	{
		title:    "Stay signed in",
		subtitle: "Your session survives restarts until you log out.",
		buttons:  []button{{cmd: "next", label: "Next"}},
	},
	{
		title:    "Get started",
		subtitle: "Log in or create a new account.",
		buttons:  []button{{cmd: "login", label: "Login"}, {cmd: "register", label: "Sign up"}},
	},
}

func renderButtons(w io.Writer, buttons ...button) {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, fmt.Sprintf("[%s] %s", b.cmd, b.label))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, "   "))
}

func renderSplash(w io.Writer) {
	fmt.Fprintln(w, "GophOnboard")
	fmt.Fprintln(w, "Loading...")
}

// renderSlide draws onboarding slide i (zero based).
func renderSlide(w io.Writer, i int) {
	s := slides[i]
	fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(slides), s.title)
	fmt.Fprintln(w, s.subtitle)
	fmt.Fprintln(w)
	renderButtons(w, s.buttons...)
}

func renderLogin(w io.Writer) {
	fmt.Fprintln(w, "Login")
	fmt.Fprintln(w, "Fields: Email, Password")
	fmt.Fprintln(w)
	renderButtons(w, button{cmd: "login", label: "Login"})
	renderButtons(w, button{cmd: "register", label: "Don't have an account? Sign Up"})
}

func renderRegister(w io.Writer) {
	fmt.Fprintln(w, "Register")
	fmt.Fprintln(w, "Fields: First name, Last name, Email, Password")
	fmt.Fprintln(w)
	renderButtons(w, button{cmd: "register", label: "Register"})
	renderButtons(w, button{cmd: "login", label: "Already have an account? Log In"})
}

func renderHome(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "Welcome, %s!\n", u.DisplayName())
	fmt.Fprintln(w)
	renderButtons(w, button{cmd: "logout", label: "Logout"})
}

// screenTitle is the short route name shown in the prompt.
func screenTitle(route string) string {
	return strings.TrimSuffix(route, "Screen")
}

// render draws the focused screen. It is installed as the stack's change
// hook, so it runs after every successful navigation.
func (a *App) render(route navigation.Route) {
	a.formErrors = nil
	fmt.Fprintln(a.out)
	switch route.Name {
	case navigation.SplashScreen:
		renderSplash(a.out)
	case navigation.OnboardingScreen:
		renderSlide(a.out, a.slide)
	case navigation.LoginScreen:
		renderLogin(a.out)
	case navigation.RegisterScreen:
		renderRegister(a.out)
	case navigation.HomeScreen:
		renderHome(a.out, a.store.User())
	}
}
