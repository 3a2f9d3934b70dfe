package domain

import (
	"errors"
	"time"
)

// User models an account in the studio. A registered user is the principal
// resolved from a bearer token on authenticated requests.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email is already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ErrUnauthenticated is returned when a protected operation is attempted
// without a resolved principal; ErrForbidden when a principal is present but
// fails the ownership or role requirement. They map to distinct HTTP codes
// and must not be collapsed into one another.
var ErrUnauthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access denied")

// ErrBadID marks a path parameter that is expected to be numeric but is not.
var ErrBadID = errors.New("invalid identifier")
