package navigation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophonboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Container that remembers every dispatched action.
type recorder struct {
	mu      sync.Mutex
	ready   atomic.Bool
	actions []Action
	err     error
}

func newRecorder(ready bool) *recorder {
	r := &recorder{}
	r.ready.Store(ready)
	return r
}

func (r *recorder) IsReady() bool { return r.ready.Load() }

func (r *recorder) Dispatch(a Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
	return r.err
}

func (r *recorder) last(t *testing.T) Action {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.actions)
	return r.actions[len(r.actions)-1]
}

func newTestNavigator(c Container) *Navigator {
	n := NewNavigator(logging.Discard())
	if c != nil {
		n.Attach(c)
	}
	return n
}

func TestNavigator_Navigate(t *testing.T) {
	r := newRecorder(true)
	n := newTestNavigator(r)

	require.NoError(t, n.Navigate("TestRoute", nil))
	assert.Equal(t, NavigateAction("TestRoute", nil), r.last(t))

	require.NoError(t, n.Navigate("TestRoute", Params{"id": 14}))
	assert.Equal(t, Action{Type: ActionNavigate, Name: "TestRoute", Params: Params{"id": 14}}, r.last(t))
}

func TestNavigator_GoBack(t *testing.T) {
	r := newRecorder(true)
	n := newTestNavigator(r)

	require.NoError(t, n.GoBack())
	assert.Equal(t, ActionGoBack, r.last(t).Type)
	assert.Len(t, r.actions, 1)
}

func TestNavigator_ResetAndNavigate(t *testing.T) {
	r := newRecorder(true)
	n := newTestNavigator(r)

	require.NoError(t, n.ResetAndNavigate("testRoute"))
	assert.Equal(t, Action{Type: ActionReset, Index: 0, Routes: []Route{{Name: "testRoute"}}}, r.last(t))
}

func TestNavigator_Push(t *testing.T) {
	r := newRecorder(true)
	n := newTestNavigator(r)

	require.NoError(t, n.Push("TestRoute", nil))
	assert.Equal(t, PushAction("TestRoute", nil), r.last(t))

	require.NoError(t, n.Push("TestRoute", Params{"id": 14}))
	assert.Equal(t, Params{"id": 14}, r.last(t).Params)
}

func TestNavigator_NotReady(t *testing.T) {
	t.Run("no container attached", func(t *testing.T) {
		n := newTestNavigator(nil)
		assert.ErrorIs(t, n.Navigate(LoginScreen, nil), ErrNotReady)
	})

	t.Run("container not ready", func(t *testing.T) {
		r := newRecorder(false)
		n := newTestNavigator(r)
		assert.ErrorIs(t, n.Push(LoginScreen, nil), ErrNotReady)
		assert.Empty(t, r.actions)
	})
}

func TestNavigator_DispatchErrorWrapped(t *testing.T) {
	r := newRecorder(true)
	r.err = errors.New("boom")
	n := newTestNavigator(r)

	err := n.GoBack()
	require.ErrorContains(t, err, "dispatch GO_BACK: boom")
}

func TestNavigator_Prepare(t *testing.T) {
	t.Run("already ready", func(t *testing.T) {
		n := newTestNavigator(newRecorder(true))
		require.NoError(t, n.Prepare(context.Background()))
	})

	t.Run("becomes ready later", func(t *testing.T) {
		r := newRecorder(false)
		n := newTestNavigator(nil)
		n.SetPollInterval(time.Millisecond)

		go func() {
			time.Sleep(5 * time.Millisecond)
			n.Attach(r)
			r.ready.Store(true)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, n.Prepare(ctx))
	})

	t.Run("gives up with the context", func(t *testing.T) {
		n := newTestNavigator(newRecorder(false))
		n.SetPollInterval(time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := n.Prepare(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNavigator_SetPollIntervalNonPositive(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		n := newTestNavigator(newRecorder(false))
		n.SetPollInterval(d)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		require.NotPanics(t, func() {
			err := n.Prepare(ctx)
			require.ErrorIs(t, err, context.DeadlineExceeded)
		})
		cancel()

		n.mu.RLock()
		assert.Equal(t, DefaultPollInterval, n.pollInterval)
		n.mu.RUnlock()
	}
}
