package converter

import (
	"rental-market/internal/domain/user"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func UserToInfra(u *user.User) pgq.CreateUserParams {
	phone := pgtype.Text{}
	if !u.Phone().IsZero() {
		phone = pgconv.StringToPgtype(u.Phone().Value())
	}
	return pgq.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Phone:        phone,
		DisplayName:  u.DisplayName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
