package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"

	"rental-market/internal/infra"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

// UserReadStore is shared with login and contact disclosure.
type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindContact(ctx context.Context, id uuid.UUID) (*ContactView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

// GetCurrentUser backs login and /auth/me. A deactivated account keeps a
// valid token until it expires, so activity is checked on every call.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(ErrUserNotFound, shared.ErrNotFound)
	case err != nil:
		return nil, shared.Classify(err)
	case !view.IsActive:
		return nil, errs.Mark(ErrUserInactive, shared.ErrForbidden)
	}
	return view, nil
}
