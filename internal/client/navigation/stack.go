package navigation

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEmptyReset    = errors.New("reset needs at least one route")
	ErrUnknownAction = errors.New("unknown navigation action")
)

// Stack is an in-memory stack navigator.
//
//   - navigate pops back to an existing route of the same name (updating its
//     params) or pushes a new one;
//   - push always pushes;
//   - go back pops unless only the root is left;
//   - reset replaces the stack with the given routes, truncated after Index
//     so that the route at Index is on top.
type Stack struct {
	mu       sync.RWMutex
	routes   []Route
	ready    bool
	onChange func(Route)
}

// NewStack creates a ready stack with initial as its only route.
func NewStack(initial string) *Stack {
	return &Stack{routes: []Route{{Name: initial}}, ready: true}
}

// OnChange registers fn to be called with the focused route after every
// successful dispatch.
func (s *Stack) OnChange(fn func(Route)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetReady toggles readiness, e.g. while the terminal is being set up.
func (s *Stack) SetReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

func (s *Stack) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Stack) Dispatch(a Action) error {
	s.mu.Lock()

	switch a.Type {
	case ActionNavigate:
		idx := -1
		for i := len(s.routes) - 1; i >= 0; i-- {
			if s.routes[i].Name == a.Name {
				idx = i
				break
			}
		}
		if idx >= 0 {
			s.routes = s.routes[:idx+1]
			if a.Params != nil {
				s.routes[idx].Params = a.Params
			}
		} else {
			s.routes = append(s.routes, Route{Name: a.Name, Params: a.Params})
		}
	case ActionPush:
		s.routes = append(s.routes, Route{Name: a.Name, Params: a.Params})
	case ActionGoBack:
		if len(s.routes) > 1 {
			s.routes = s.routes[:len(s.routes)-1]
		}
	case ActionReset:
		if len(a.Routes) == 0 {
			s.mu.Unlock()
			return ErrEmptyReset
		}
		end := a.Index + 1
		if a.Index < 0 || end > len(a.Routes) {
			end = len(a.Routes)
		}
		s.routes = append([]Route(nil), a.Routes[:end]...)
	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}

	current := s.routes[len(s.routes)-1]
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(current)
	}
	return nil
}

// Current returns the focused route.
func (s *Stack) Current() Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.routes[len(s.routes)-1]
}

// Routes returns a copy of the whole stack, root first.
func (s *Stack) Routes() []Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Route(nil), s.routes...)
}

func (s *Stack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.routes)
}
