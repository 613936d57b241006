package commands

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account.go -package=commandsmock

import (
	"context"
	"strings"

	"rental-market/internal/domain/user"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/pkg/password"
	"rental-market/internal/usecase/shared"
)

var ErrEmailTaken = errs.New("email already registered")

type ProvisionUserInput struct {
	Email       string
	Phone       string
	DisplayName string
	Password    string
	// Role defaults to member when empty.
	Role string
}

type AccountCommands interface {
	Provision(ctx context.Context, in ProvisionUserInput) (*user.User, error)
}

type accountCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
	clock  clock.Clock
}

func NewAccountCommands(uow shared.UnitOfWork, hasher *password.Hasher, clock clock.Clock) AccountCommands {
	return &accountCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clock,
	}
}

// Provision creates an active account. The email is unique across accounts.
func (a *accountCommandsImpl) Provision(ctx context.Context, in ProvisionUserInput) (*user.User, error) {
	u, err := a.newUser(in)
	if err != nil {
		return nil, shared.Classify(err)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(ErrEmailTaken, shared.ErrConflict)
		}
		return nil, shared.Classify(err)
	}
	return u, nil
}

func (a *accountCommandsImpl) newUser(in ProvisionUserInput) (*user.User, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, shared.Invalid("display name is required")
	}
	if in.Role == "" {
		in.Role = string(user.RoleMember)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	return user.NewUser(email, phone, name, hash, role, a.clock.Now()), nil
}
