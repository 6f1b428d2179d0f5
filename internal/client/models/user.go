// Package models defines the client-side data models of the onboarding flow.
package models

// User is the authenticated or freshly registered user.
//
// FirstName and LastName are only set by registration; a login builds a
// record from the email/password pair alone.
type User struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Clone returns a copy of u, or nil for a nil receiver.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// DisplayName is what the home screen greets the user with.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FirstName != "" {
		if u.LastName != "" {
			return u.FirstName + " " + u.LastName
		}
		return u.FirstName
	}
	return u.Email
}
