package session

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophonboard/internal/client/models"
)

// ErrInvalidData rejects an action whose required fields are blank.
var ErrInvalidData = errors.New("Invalid data")

const (
	ActionRegisterUser = "user/registerUser"
	ActionLoginUser    = "user/loginUser"
)

// Outcome tells the two settlements apart.
type Outcome int

const (
	Fulfilled Outcome = iota + 1
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the settlement of an async action.
type Result struct {
	Kind      Outcome
	Action    string
	RequestID string
	// User is the accepted payload on Fulfilled.
	User *models.User
	// Err is set on Rejected.
	Err error
	// Stale marks a settlement that was not applied to the state because a
	// newer dispatch of the same action overtook it.
	Stale bool
}

func (r Result) Fulfilled() bool { return r.Kind == Fulfilled }

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (in RegisterInput) valid() bool {
	return notBlank(in.FirstName, in.LastName, in.Email, in.Password)
}

func (in RegisterInput) user() *models.User {
	return &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

func (in LoginInput) valid() bool {
	return notBlank(in.Email, in.Password)
}

func (in LoginInput) user() *models.User {
	return &models.User{Email: in.Email, Password: in.Password}
}

func notBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
