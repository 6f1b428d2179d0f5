package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophonboard/internal/client/navigation"
	"github.com/dmitrijs2005/gophonboard/internal/client/session"
	"github.com/dmitrijs2005/gophonboard/internal/client/validation"
	"github.com/dmitrijs2005/gophonboard/internal/shared"
)

var (
	ErrCommandUnavailable = errors.New("command not available on this screen")
	ErrInvalidForm        = errors.New("form has invalid fields")
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Next advances the onboarding slides. Past the last slide it continues to
// the login screen.
func (a *App) Next(ctx context.Context) error {
	if a.stack.Current().Name != navigation.OnboardingScreen {
		return a.unavailable("next")
	}
	if a.slide < len(slides)-1 {
		a.slide++
		a.render(a.stack.Current())
		return nil
	}
	a.markOnboardingSeen(ctx)
	return a.navigate(ctx, navigation.LoginScreen)
}

// Login opens the login screen from onboarding and registration, and
// submits the login form when already on it.
func (a *App) Login(ctx context.Context) error {
	switch a.stack.Current().Name {
	case navigation.OnboardingScreen:
		a.markOnboardingSeen(ctx)
		return a.navigate(ctx, navigation.LoginScreen)
	case navigation.RegisterScreen:
		return a.navigate(ctx, navigation.LoginScreen)
	case navigation.LoginScreen:
		return a.submitLogin(ctx)
	default:
		return a.unavailable("login")
	}
}

// Register opens the registration screen from onboarding and login, and
// submits the registration form when already on it.
func (a *App) Register(ctx context.Context) error {
	switch a.stack.Current().Name {
	case navigation.OnboardingScreen:
		a.markOnboardingSeen(ctx)
		return a.navigate(ctx, navigation.RegisterScreen)
	case navigation.LoginScreen:
		return a.navigate(ctx, navigation.RegisterScreen)
	case navigation.RegisterScreen:
		return a.submitRegister(ctx)
	default:
		return a.unavailable("register")
	}
}

// Logout clears the session, removes the persisted entry and starts over at
// the login screen.
func (a *App) Logout(ctx context.Context) error {
	if a.stack.Current().Name != navigation.HomeScreen {
		return a.unavailable("logout")
	}
	a.store.SetUser(nil)
	a.persistor.Purge(ctx)
	a.logger.Info(ctx, "logged out")
	return a.resetTo(ctx, navigation.LoginScreen)
}

// Reset forgets both the session and the onboarding progress, then shows
// the onboarding slides again.
func (a *App) Reset(ctx context.Context) error {
	a.store.Logout()
	if !a.kv.MultiRemove(ctx, a.persistor.StorageKey(), onboardingSeenKey) {
		fmt.Fprintln(a.out, "Saved data could not be cleared, it will be ignored until restart.")
	}
	a.slide = 0
	return a.resetTo(ctx, navigation.OnboardingScreen)
}

func (a *App) Back(ctx context.Context) error {
	if err := a.nav.GoBack(); err != nil {
		a.logger.Error(ctx, "navigation failed", "error", err)
		return err
	}
	return nil
}

func (a *App) submitLogin(ctx context.Context) error {
	email, err := a.ask(validation.FieldEmail, "Email")
	if err != nil {
		return err
	}

	password, err := a.askPassword()
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	fe := validation.ValidateLogin(email, string(password))
	if !fe.Valid() {
		a.printFieldErrors(fe, validation.FieldEmail, validation.FieldPassword)
		a.formErrors = fe
		return ErrInvalidForm
	}

	res, err := a.await(ctx, "Signing in...", a.store.LoginUser(ctx, session.LoginInput{
		Email:    email,
		Password: string(password),
	}))
	if err != nil {
		return err
	}
	return a.settled(ctx, res)
}

func (a *App) submitRegister(ctx context.Context) error {
	firstName, err := a.ask(validation.FieldFirstName, "First name")
	if err != nil {
		return err
	}

	lastName, err := a.ask(validation.FieldLastName, "Last name")
	if err != nil {
		return err
	}

	email, err := a.ask(validation.FieldEmail, "Email")
	if err != nil {
		return err
	}

	password, err := a.askPassword()
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	fe := validation.ValidateRegister(firstName, lastName, email, string(password))
	if !fe.Valid() {
		a.printFieldErrors(fe,
			validation.FieldFirstName, validation.FieldLastName,
			validation.FieldEmail, validation.FieldPassword)
		a.formErrors = fe
		return ErrInvalidForm
	}

	res, err := a.await(ctx, "Creating account...", a.store.RegisterUser(ctx, session.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(password),
	}))
	if err != nil {
		return err
	}
	return a.settled(ctx, res)
}

// ask prompts for field. An error left from the previous submit is shown
// in the prompt and cleared, the way a screen hides it on focus.
func (a *App) ask(field validation.Field, label string) (string, error) {
	if err := a.formErrors.Get(field); err != nil {
		label = fmt.Sprintf("%s (%s)", label, err)
		a.formErrors.Clear(field)
	}
	return getSimpleText(a.reader, label, a.out)
}

func (a *App) askPassword() ([]byte, error) {
	if err := a.formErrors.Get(validation.FieldPassword); err != nil {
		fmt.Fprintf(a.out, "(%s)\n", err)
		a.formErrors.Clear(validation.FieldPassword)
	}
	return getPassword(a.reader, a.out)
}

// await shows indicator until the action settles.
func (a *App) await(ctx context.Context, indicator string, ch <-chan session.Result) (session.Result, error) {
	fmt.Fprintln(a.out, indicator)
	select {
	case res := <-ch:
		return res, nil
	case <-ctx.Done():
		return session.Result{}, ctx.Err()
	}
}

func (a *App) settled(ctx context.Context, res session.Result) error {
	if res.Stale {
		a.logger.Debug(ctx, "ignoring stale settlement", "action", res.Action, "request_id", res.RequestID)
		return nil
	}
	if !res.Fulfilled() {
		fmt.Fprintln(a.out, a.store.State().Error)
		return res.Err
	}
	return a.navigate(ctx, navigation.HomeScreen)
}

// printFieldErrors prints the errors of fields in the given order.
func (a *App) printFieldErrors(fe validation.FieldErrors, fields ...validation.Field) {
	for _, f := range fields {
		if err := fe.Get(f); err != nil {
			fmt.Fprintf(a.out, "  ! %s\n", err)
		}
	}
}

func (a *App) markOnboardingSeen(ctx context.Context) {
	a.kv.SetItem(ctx, onboardingSeenKey, "1")
}

func (a *App) navigate(ctx context.Context, route string) error {
	if err := a.nav.Navigate(route, nil); err != nil {
		a.logger.Error(ctx, "navigation failed", "route", route, "error", err)
		return err
	}
	return nil
}

func (a *App) resetTo(ctx context.Context, route string) error {
	if err := a.nav.ResetAndNavigate(route); err != nil {
		a.logger.Error(ctx, "navigation failed", "route", route, "error", err)
		return err
	}
	return nil
}

func (a *App) unavailable(cmd string) error {
	fmt.Fprintf(a.out, "'%s' is not available here. %s\n", cmd, a.help())
	return ErrCommandUnavailable
}
