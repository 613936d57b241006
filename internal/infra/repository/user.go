package repository

import (
	"context"
	"time"

	"rental-market/internal/domain/user"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgq.DBTX, arg pgq.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, db pgq.DBTX, arg pgq.UpdateUserLastLoginParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgq.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgq.DBTX) *UserRepository {
	return &UserRepository{queries: queries, db: db}
}

// Create reports a taken email as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, pgq.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
