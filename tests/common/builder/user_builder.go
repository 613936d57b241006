//go:build unit || e2e

package builder

import (
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/user"
	reqdto "rental-market/internal/handler/dto/request"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// accountCreatedAt is the creation instant of every built account.
var accountCreatedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

// UserBuilder describes one account and renders it in each layer's shape:
// provisioning input, domain entity, stored row and read view.
type UserBuilder struct {
	Email        string
	Phone        string
	DisplayName  string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		Phone:        "+33 6 12 34 56 78",
		DisplayName:  "Test User",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleMember),
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildProvisionInput() commands.ProvisionUserInput {
	return commands.ProvisionUserInput{
		Email:       u.Email,
		Phone:       u.Phone,
		DisplayName: u.DisplayName,
		Password:    u.Password,
		Role:        u.Role,
	}
}

// BuildDomain runs the same value-object checks provisioning does and
// returns the first failure.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, phone, u.DisplayName, u.PasswordHash, role, accountCreatedAt), nil
}

func (u *UserBuilder) BuildInfra() pgq.Users {
	stamp := pgtype.Timestamptz{Time: accountCreatedAt, Valid: true}
	return pgq.Users{
		ID:           uuid.New(),
		Email:        u.Email,
		Phone:        pgtype.Text{String: u.Phone, Valid: u.Phone != ""},
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          uuid.New(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}

func (u *UserBuilder) BuildLoginRequest() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}

// BuildCredentials panics on input NewCredentials refuses; tests needing the
// error call auth.NewCredentials themselves.
func (u *UserBuilder) BuildCredentials() auth.Credentials {
	creds, err := auth.NewCredentials(u.Email, u.Password)
	if err != nil {
		panic(err)
	}
	return creds
}
