package session

import "github.com/dmitrijs2005/gophonboard/internal/client/models"

// State is the session record. Every mutation replaces the whole record.
type State struct {
	User    *models.User
	Loading bool
	Error   string
}

func (s State) clone() State {
	s.User = s.User.Clone()
	return s
}

// SelectUser returns the current user, or nil. Safe on a nil state.
func SelectUser(s *State) *models.User {
	if s == nil {
		return nil
	}
	return s.User
}

// SelectLoading reports whether an action is in flight. Safe on a nil state.
func SelectLoading(s *State) bool {
	if s == nil {
		return false
	}
	return s.Loading
}

// SelectError returns the message of the last rejected action, or "".
// Safe on a nil state.
func SelectError(s *State) string {
	if s == nil {
		return ""
	}
	return s.Error
}
