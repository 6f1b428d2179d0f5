package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophonboard/internal/client/models"
	"github.com/dmitrijs2005/gophonboard/internal/logging"
	"github.com/google/uuid"
)

// DefaultLatency is the simulated round trip of login and registration.
const DefaultLatency = time.Second

// Ordering selects how overlapping dispatches of the same action settle.
type Ordering int

const (
	// OrderingLastWins applies every settlement in the order the timers fire.
	OrderingLastWins Ordering = iota
	// OrderingLatestDispatch drops settlements overtaken by a newer dispatch
	// of the same action kind.
	OrderingLatestDispatch
)

func (o Ordering) String() string {
	if o == OrderingLatestDispatch {
		return "latest-dispatch"
	}
	return "last-wins"
}

type Option func(*Store)

// WithLatency sets the simulated latency of the async actions.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithAfter replaces time.After as the suspension point of the async
// actions. Tests use it to hold an action in flight.
func WithAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(s *Store) { s.after = after }
}

func WithOrdering(o Ordering) Option {
	return func(s *Store) { s.ordering = o }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithInitialState preloads the store, e.g. from a test fixture.
func WithInitialState(st State) Option {
	return func(s *Store) { s.state = st.clone() }
}

// Store holds the session state. It is safe for concurrent use.
type Store struct {
	// notifyMu serializes mutate+notify so listeners see snapshots in the
	// order the mutations happened. Listeners must not mutate the store.
	notifyMu sync.Mutex

	mu          sync.RWMutex
	state       State
	generations map[string]uint64
	listeners   map[uint64]func(State)
	nextID      uint64

	latency  time.Duration
	after    func(time.Duration) <-chan time.Time
	ordering Ordering
	logger   logging.Logger
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		generations: map[string]uint64{},
		listeners:   map[uint64]func(State){},
		latency:     DefaultLatency,
		after:       time.After,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "session")
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// User is shorthand for SelectUser on a fresh snapshot.
func (s *Store) User() *models.User {
	st := s.State()
	return SelectUser(&st)
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// The returned func removes the listener.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetUser replaces the user and clears the last error. A nil user logs the
// session out. The loading flag is left as is.
func (s *Store) SetUser(user *models.User) {
	s.mutate(func(st *State) bool {
		st.User = user.Clone()
		st.Error = ""
		return true
	})
	s.logger.Debug(context.Background(), "user set", "present", user != nil)
}

// Logout is SetUser(nil).
func (s *Store) Logout() {
	s.SetUser(nil)
}

// Hydrate installs a user restored from persisted storage.
func (s *Store) Hydrate(user *models.User) {
	s.mutate(func(st *State) bool {
		st.User = user.Clone()
		return true
	})
}

// RegisterUser dispatches a registration. The returned channel yields
// exactly one Result and is then closed.
func (s *Store) RegisterUser(ctx context.Context, in RegisterInput) <-chan Result {
	return s.dispatch(ctx, ActionRegisterUser, in.valid(), in.user)
}

// LoginUser dispatches a login. The returned channel yields exactly one
// Result and is then closed.
func (s *Store) LoginUser(ctx context.Context, in LoginInput) <-chan Result {
	return s.dispatch(ctx, ActionLoginUser, in.valid(), in.user)
}

// dispatch runs the common action pipeline: precondition check, loading
// flag, suspension, settlement. ctx only carries logging values; an action
// always settles.
func (s *Store) dispatch(ctx context.Context, action string, valid bool, build func() *models.User) <-chan Result {
	out := make(chan Result, 1)
	res := Result{Action: action, RequestID: uuid.NewString()}
	log := s.logger.With("action", action, "request_id", res.RequestID)

	if !valid {
		s.mutate(func(st *State) bool {
			s.generations[action]++
			st.Loading = false
			st.Error = ErrInvalidData.Error()
			return true
		})
		res.Kind = Rejected
		res.Err = ErrInvalidData
		log.Info(ctx, "action rejected", "error", ErrInvalidData)
		out <- res
		close(out)
		return out
	}

	var gen uint64
	s.mutate(func(st *State) bool {
		s.generations[action]++
		gen = s.generations[action]
		st.Loading = true
		st.Error = ""
		return true
	})
	log.Debug(ctx, "action pending", "latency", s.latency)

	payload := build()
	go func() {
		<-s.after(s.latency)

		applied := s.settle(action, gen, func(st *State) {
			st.User = payload.Clone()
			st.Loading = false
			st.Error = ""
		})

		res.Kind = Fulfilled
		res.User = payload
		res.Stale = !applied
		if applied {
			log.Info(ctx, "action fulfilled")
		} else {
			log.Info(ctx, "stale settlement dropped", "ordering", s.ordering)
		}
		out <- res
		close(out)
	}()

	return out
}

// settle applies fn unless strict ordering says this generation is stale.
func (s *Store) settle(action string, gen uint64, fn func(*State)) bool {
	return s.mutate(func(st *State) bool {
		if s.ordering == OrderingLatestDispatch && gen != s.generations[action] {
			return false
		}
		fn(st)
		return true
	})
}

// mutate applies fn to a copy of the state, installs the copy, and notifies
// listeners with the new snapshot. fn returns false to leave the state
// untouched; mutate reports which happened.
func (s *Store) mutate(fn func(*State) bool) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next := s.state.clone()
	if !fn(&next) {
		s.mu.Unlock()
		return false
	}
	s.state = next
	snapshot := next.clone()
	listeners := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
	return true
}
