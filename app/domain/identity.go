package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Identity is the authenticated user's profile held client-side after a
// successful login or registration. At most one instance is active at a
// time; UI code only ever sees read-only copies handed out by the session
// store.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// DisplayName returns the best human-readable name for the identity.
func (i Identity) DisplayName() string {
	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name != "" {
		return name
	}
	return i.Email
}

// AccessToken is the opaque bearer credential proving an authenticated
// session to the API. Its lifetime is tied to the Identity: created and
// destroyed together, persisted together. The application never inspects
// or verifies it, only stores and forwards it.
type AccessToken string

// AuthSession is the pair returned by the identity provider on successful
// login or registration.
type AuthSession struct {
	Identity    Identity
	AccessToken AccessToken
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate checks the credentials before any network call is made.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return NewAuthError(ErrorKindValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return NewAuthError(ErrorKindValidation, fmt.Sprintf("invalid email format: %s", c.Email), ErrInvalidEmail)
	}
	if c.Password == "" {
		return NewAuthError(ErrorKindValidation, "password is required", nil)
	}
	return nil
}

// Registration carries a registration request; the profile fields are
// optional.
type Registration struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

// Validate checks the registration payload before any network call is made.
func (r Registration) Validate() error {
	return Credentials{Email: r.Email, Password: r.Password}.Validate()
}
