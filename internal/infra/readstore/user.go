package readstore

import (
	"context"

	"github.com/google/uuid"

	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
	"rental-market/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db pgq.DBTX, email string) (pgq.Users, error)
}

// UserReadStore serves login, /auth/me and contact disclosure. Inactive
// accounts are returned as such; refusing them is the caller's decision.
type UserReadStore struct {
	queries UserReadQueries
	db      pgq.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgq.DBTX) *UserReadStore {
	return &UserReadStore{queries: queries, db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return authorizedView(row.ID, row.Email, row.DisplayName, row.Role, row.IsActive), nil
}

// FindByEmail also returns the password hash, which never leaves the
// login command.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", notFoundOr(err, "user", "find user by email")
	}
	return authorizedView(row.ID, row.Email, row.DisplayName, row.Role, row.IsActive), row.PasswordHash, nil
}

// FindContact does not check disclosure rules; callers gate it.
func (r *UserReadStore) FindContact(ctx context.Context, id uuid.UUID) (*queries.ContactView, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.ContactView{
		UserID:      row.ID,
		DisplayName: row.DisplayName,
		Email:       row.Email,
		Phone:       pgconv.StringPtrFromPgtype(row.Phone),
	}, nil
}

func (r *UserReadStore) findByID(ctx context.Context, id uuid.UUID) (pgq.FindUserByIDRow, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return row, notFoundOr(err, "user", "find user by id")
	}
	return row, nil
}

func authorizedView(id uuid.UUID, email, displayName, role string, active bool) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        role,
		IsActive:    active,
	}
}

func notFoundOr(err error, entity, op string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to "+op, err)
}
