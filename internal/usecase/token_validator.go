package usecase

import (
	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/user"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/pkg/jwt"
	"rental-market/internal/usecase/shared"
)

// TokenValidator turns a bearer token into the principal it was issued to.
type TokenValidator interface {
	ValidateToken(token string) (auth.Principal, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{
		jwtService: jwtService,
	}
}

// ValidateToken rejects expired or tampered tokens and tokens carrying a
// role this build does not know, all as ErrUnauthenticated.
func (v *jwtTokenValidator) ValidateToken(token string) (auth.Principal, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, shared.ErrUnauthenticated)
	}

	userID, err := claims.UserID()
	if err != nil {
		return auth.Principal{}, errs.Mark(err, shared.ErrUnauthenticated)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, errs.Mark(errs.Wrap(err, "token role"), shared.ErrUnauthenticated)
	}
	p, err := auth.NewPrincipal(userID, role)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, shared.ErrUnauthenticated)
	}
	return p, nil
}
