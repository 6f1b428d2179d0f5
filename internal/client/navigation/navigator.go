// Package navigation is the thin command layer the screens use to move
// around: navigate, go back, reset-and-navigate and push. Commands go
// through a deferred reference to the navigation container, which is
// attached once the UI is up.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophonboard/internal/logging"
)

// ErrNotReady is returned for commands issued before a ready container is
// attached.
var ErrNotReady = errors.New("navigation container not ready")

// DefaultPollInterval is how often Prepare re-checks readiness.
const DefaultPollInterval = 50 * time.Millisecond

// Container is the navigation tree the Navigator drives.
type Container interface {
	IsReady() bool
	Dispatch(Action) error
}

// Navigator holds the deferred container reference.
type Navigator struct {
	mu           sync.RWMutex
	container    Container
	pollInterval time.Duration
	logger       logging.Logger
}

func NewNavigator(logger logging.Logger) *Navigator {
	return &Navigator{
		pollInterval: DefaultPollInterval,
		logger:       logger.With("component", "navigation"),
	}
}

// SetPollInterval changes how often Prepare polls for readiness.
// Non-positive values reset it to DefaultPollInterval.
func (n *Navigator) SetPollInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultPollInterval
	}
	n.mu.Lock()
	n.pollInterval = d
	n.mu.Unlock()
}

// Attach sets the container. It may be called before the container is ready.
func (n *Navigator) Attach(c Container) {
	n.mu.Lock()
	n.container = c
	n.mu.Unlock()
}

func (n *Navigator) ready() (Container, bool) {
	n.mu.RLock()
	c := n.container
	n.mu.RUnlock()
	return c, c != nil && c.IsReady()
}

// Prepare blocks until a ready container is attached or ctx is done.
func (n *Navigator) Prepare(ctx context.Context) error {
	if _, ok := n.ready(); ok {
		return nil
	}

	n.mu.RLock()
	interval := n.pollInterval
	n.mu.RUnlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, ok := n.ready(); ok {
				return nil
			}
		case <-ctx.Done():
			return fmt.Errorf("prepare navigation: %w", ctx.Err())
		}
	}
}

// Navigate goes to name, reusing an existing route of that name if the
// container has one.
func (n *Navigator) Navigate(name string, params Params) error {
	return n.dispatch(NavigateAction(name, params))
}

func (n *Navigator) GoBack() error {
	return n.dispatch(GoBackAction())
}

// ResetAndNavigate replaces the whole stack with a single route.
func (n *Navigator) ResetAndNavigate(name string) error {
	return n.dispatch(ResetAction(0, Route{Name: name}))
}

// Push always adds a new route on top of the stack.
func (n *Navigator) Push(name string, params Params) error {
	return n.dispatch(PushAction(name, params))
}

func (n *Navigator) dispatch(a Action) error {
	ctx := context.Background()
	c, ok := n.ready()
	if !ok {
		n.logger.Warn(ctx, "navigation command dropped", "type", a.Type, "route", a.Name)
		return ErrNotReady
	}
	if err := c.Dispatch(a); err != nil {
		return fmt.Errorf("dispatch %s: %w", a.Type, err)
	}
	n.logger.Debug(ctx, "navigated", "type", a.Type, "route", a.Name)
	return nil
}
