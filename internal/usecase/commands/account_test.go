//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rental-market/internal/domain/user"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/pkg/password"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAccountInput() commands.ProvisionUserInput {
	in := builder.NewUserBuilder().WithEmail(" New.Host@Example.com ").BuildProvisionInput()
	in.Role = ""
	return in
}

func TestAccountCommands_Provision(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	t.Run("stores an active member with a hashed password", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewAccountCommands(m.uow, hasher, clock.NewMockClock(fixedNow))
		var stored *user.User
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				stored = u
				return nil
			})

		u, err := cmds.Provision(context.Background(), newAccountInput())

		require.NoError(t, err)
		require.Same(t, stored, u)
		assert.Equal(t, "new.host@example.com", u.Email().Value())
		assert.Equal(t, user.RoleMember, u.Role())
		assert.True(t, u.IsActive())
		assert.Equal(t, fixedNow, u.CreatedAt())
		assert.NotEqual(t, "password123", u.PasswordHash())
		assert.NoError(t, hasher.Compare(u.PasswordHash(), "password123"))
	})

	t.Run("keeps an explicit role", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewAccountCommands(m.uow, hasher, clock.NewMockClock(fixedNow))
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		in := newAccountInput()
		in.Role = "operator"

		u, err := cmds.Provision(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, user.RoleOperator, u.Role())
	})

	t.Run("taken email is a conflict", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewAccountCommands(m.uow, hasher, clock.NewMockClock(fixedNow))
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKey())

		_, err := cmds.Provision(context.Background(), newAccountInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrEmailTaken))
		assert.True(t, errs.Is(err, shared.ErrConflict))
	})

	t.Run("write failure is a database error", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewAccountCommands(m.uow, hasher, clock.NewMockClock(fixedNow))
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errs.New("connection reset"))

		_, err := cmds.Provision(context.Background(), newAccountInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrDatabase))
	})

	invalid := []struct {
		name   string
		mutate func(in *commands.ProvisionUserInput)
	}{
		{"malformed email", func(in *commands.ProvisionUserInput) { in.Email = "not-an-email" }},
		{"malformed phone", func(in *commands.ProvisionUserInput) { in.Phone = "call me" }},
		{"blank display name", func(in *commands.ProvisionUserInput) { in.DisplayName = "  " }},
		{"short password", func(in *commands.ProvisionUserInput) { in.Password = "short" }},
		{"unknown role", func(in *commands.ProvisionUserInput) { in.Role = "superuser" }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(gomock.NewController(t))
			cmds := commands.NewAccountCommands(m.uow, hasher, clock.NewMockClock(fixedNow))
			in := newAccountInput()
			tc.mutate(&in)

			_, err := cmds.Provision(context.Background(), in)

			require.Error(t, err)
			assert.True(t, errs.Is(err, shared.ErrValidation))
		})
	}
}
