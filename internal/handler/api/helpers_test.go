//go:build unit

package api_test

import (
	"errors"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/user"
	"rental-market/internal/handler/middleware"

	"github.com/google/uuid"
)

// tokenTable stands in for JWT validation: each token maps to a principal.
type tokenTable map[string]auth.Principal

func (t tokenTable) ValidateToken(token string) (auth.Principal, error) {
	p, ok := t[token]
	if !ok {
		return auth.Principal{}, errors.New("unknown token")
	}
	return p, nil
}

func newPrincipal(role user.Role) auth.Principal {
	p, err := auth.NewPrincipal(uuid.New(), role)
	if err != nil {
		panic(err)
	}
	return p
}

func authMiddleware(tokens tokenTable) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokens)
}
