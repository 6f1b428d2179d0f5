package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophonboard/internal/client/config"
	"github.com/dmitrijs2005/gophonboard/internal/client/navigation"
	"github.com/dmitrijs2005/gophonboard/internal/client/persist"
	"github.com/dmitrijs2005/gophonboard/internal/client/session"
	"github.com/dmitrijs2005/gophonboard/internal/client/storage"
	"github.com/dmitrijs2005/gophonboard/internal/client/validation"
	"github.com/dmitrijs2005/gophonboard/internal/logging"
)

// onboardingSeenKey remembers that the user got past the onboarding slides.
const onboardingSeenKey = "onboarding:seen"

// kvStore is the part of storage.Adapter the app needs.
type kvStore interface {
	storage.Storage
	MultiRemove(ctx context.Context, keys ...string) bool
	Close() error
}

type Option func(*App)

// WithIO replaces stdin/stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
	}
}

func WithLogger(l logging.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithAfter replaces time.After for the splash delay.
func WithAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(a *App) { a.after = after }
}

type App struct {
	config    *config.Config
	kv        kvStore
	store     *session.Store
	persistor *persist.Persistor
	stopSync  func()
	nav       *navigation.Navigator
	stack     *navigation.Stack
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	after     func(time.Duration) <-chan time.Time

	// slide is the focused onboarding slide.
	slide int
	// formErrors are the failures of the last submit on the current form.
	// Each one is shown next to its prompt once and then cleared.
	formErrors validation.FieldErrors
}

// NewApp opens storage, builds the session store and restores the persisted
// session. A corrupt persisted session is logged and dropped.
func NewApp(ctx context.Context, c *config.Config, opts ...Option) (*App, error) {
	a := &App{
		config: c,
		logger: logging.Discard(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		after:  time.After,
	}
	for _, opt := range opts {
		opt(a)
	}

	kv, err := storage.Open(ctx, c.StorageKind, c.StorageDSN, a.logger)
	if err != nil {
		a.logger.Error(ctx, "error initializing storage", "error", err)
		return nil, err
	}
	a.kv = kv

	ordering := session.OrderingLastWins
	if c.StrictOrdering {
		ordering = session.OrderingLatestDispatch
	}
	a.store = session.NewStore(
		session.WithLatency(c.SimulatedLatency),
		session.WithOrdering(ordering),
		session.WithLogger(a.logger),
	)

	a.persistor = persist.New(kv, a.store, persist.WithKey(c.PersistKey), persist.WithLogger(a.logger))
	if err := a.persistor.Rehydrate(ctx); err != nil {
		a.logger.Warn(ctx, "dropping persisted session", "error", err)
	}
	a.stopSync = a.persistor.Start(ctx)

	a.nav = navigation.NewNavigator(a.logger)
	a.stack = navigation.NewStack(navigation.SplashScreen)
	a.stack.OnChange(a.render)

	return a, nil
}

// Run shows the splash screen, routes to the first real screen and then
// serves the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to GophOnboard (type 'help' for commands)")
	a.render(a.stack.Current())
	a.nav.Attach(a.stack)

	if err := a.splash(ctx); err != nil {
		return err
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

// Close saves a live session once more, in case a write-through failed,
// then stops the write-through and releases storage.
func (a *App) Close() error {
	if a.store.User() != nil {
		a.persistor.Flush(context.Background())
	}
	if a.stopSync != nil {
		a.stopSync()
		a.stopSync = nil
	}
	return a.kv.Close()
}

// splash waits for the navigator and the splash delay, then replaces the
// stack with the first screen.
func (a *App) splash(ctx context.Context) error {
	if err := a.nav.Prepare(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.after(a.config.SplashDelay):
	}

	return a.nav.ResetAndNavigate(a.initialRoute(ctx))
}

func (a *App) initialRoute(ctx context.Context) string {
	if a.store.User() != nil {
		return navigation.HomeScreen
	}
	if _, seen := a.kv.GetItem(ctx, onboardingSeenKey); seen {
		return navigation.LoginScreen
	}
	return navigation.OnboardingScreen
}

func (a *App) status() string {
	s := screenTitle(a.stack.Current().Name)
	if u := a.store.User(); u != nil {
		s = s + " " + u.Email
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) help() string {
	var cmds []string
	switch a.stack.Current().Name {
	case navigation.OnboardingScreen:
		cmds = []string{"next", "login", "register"}
	case navigation.LoginScreen:
		cmds = []string{"login", "register"}
	case navigation.RegisterScreen:
		cmds = []string{"register", "login"}
	case navigation.HomeScreen:
		cmds = []string{"logout"}
	}
	cmds = append(cmds, "back", "reset", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}
