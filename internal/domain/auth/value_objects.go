package auth

import (
	"errors"

	"rental-market/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoPrincipal        = errors.New("no authenticated principal")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Principal is the authenticated caller, passed explicitly into every
// command and query.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewPrincipal(userID uuid.UUID, role user.Role) (Principal, error) {
	if userID == uuid.Nil || !role.IsValid() {
		return Principal{}, ErrNoPrincipal
	}
	return Principal{UserID: userID, Role: role}, nil
}

func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil
}

func (p Principal) Is(userID uuid.UUID) bool {
	return p.UserID != uuid.Nil && p.UserID == userID
}

func (p Principal) IsOperator() bool {
	return p.Role.CanSettle()
}
