package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(routes []Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Name
	}
	return out
}

func TestStack_NavigatePushesOrPopsBack(t *testing.T) {
	s := NewStack(OnboardingScreen)

	require.NoError(t, s.Dispatch(NavigateAction(LoginScreen, nil)))
	require.NoError(t, s.Dispatch(NavigateAction(RegisterScreen, nil)))
	assert.Equal(t, []string{OnboardingScreen, LoginScreen, RegisterScreen}, names(s.Routes()))

	require.NoError(t, s.Dispatch(NavigateAction(LoginScreen, Params{"from": "register"})))
	assert.Equal(t, []string{OnboardingScreen, LoginScreen}, names(s.Routes()))
	assert.Equal(t, Params{"from": "register"}, s.Current().Params)
}

func TestStack_PushAlwaysPushes(t *testing.T) {
	s := NewStack(LoginScreen)

	require.NoError(t, s.Dispatch(PushAction(LoginScreen, Params{"id": 14})))
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, Params{"id": 14}, s.Current().Params)
}

func TestStack_GoBackKeepsRoot(t *testing.T) {
	s := NewStack(OnboardingScreen)
	require.NoError(t, s.Dispatch(PushAction(LoginScreen, nil)))

	require.NoError(t, s.Dispatch(GoBackAction()))
	assert.Equal(t, OnboardingScreen, s.Current().Name)

	require.NoError(t, s.Dispatch(GoBackAction()))
	assert.Equal(t, 1, s.Depth())
}

func TestStack_Reset(t *testing.T) {
	s := NewStack(SplashScreen)
	require.NoError(t, s.Dispatch(PushAction(LoginScreen, nil)))

	require.NoError(t, s.Dispatch(ResetAction(0, Route{Name: HomeScreen})))
	assert.Equal(t, []string{HomeScreen}, names(s.Routes()))

	require.NoError(t, s.Dispatch(ResetAction(1, Route{Name: OnboardingScreen}, Route{Name: LoginScreen}, Route{Name: RegisterScreen})))
	assert.Equal(t, []string{OnboardingScreen, LoginScreen}, names(s.Routes()))
	assert.Equal(t, LoginScreen, s.Current().Name)

	// out of range index keeps every route
	require.NoError(t, s.Dispatch(ResetAction(5, Route{Name: OnboardingScreen}, Route{Name: LoginScreen})))
	assert.Equal(t, []string{OnboardingScreen, LoginScreen}, names(s.Routes()))

	assert.ErrorIs(t, s.Dispatch(ResetAction(0)), ErrEmptyReset)
}

func TestStack_UnknownAction(t *testing.T) {
	s := NewStack(SplashScreen)
	assert.ErrorIs(t, s.Dispatch(Action{Type: "JUMP"}), ErrUnknownAction)
	assert.Equal(t, SplashScreen, s.Current().Name)
}

func TestStack_OnChangeAndReadiness(t *testing.T) {
	s := NewStack(SplashScreen)
	var seen []string
	s.OnChange(func(r Route) { seen = append(seen, r.Name) })

	require.NoError(t, s.Dispatch(ResetAction(0, Route{Name: OnboardingScreen})))
	require.NoError(t, s.Dispatch(NavigateAction(LoginScreen, nil)))
	assert.Equal(t, []string{OnboardingScreen, LoginScreen}, seen)

	assert.True(t, s.IsReady())
	s.SetReady(false)
	assert.False(t, s.IsReady())
}
