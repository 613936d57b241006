//go:build unit

package user_test

import (
	"testing"
	"time"

	"rental-market/internal/domain/user"
	"rental-market/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	got, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	email, _ := user.NewEmail("test@example.com")
	phone, _ := user.NewPhone("+33 6 12 34 56 78")
	want := user.NewUser(email, phone, "Test User", "hashed_password", user.RoleMember, got.CreatedAt())

	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(user.User{})); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
	assert.NotEqual(t, uuid.Nil, got.ID())
	assert.True(t, got.IsActive())
	assert.Nil(t, got.LastLogin())
	assert.Equal(t, "+33 6 12 34 56 78", got.Phone().Value())
}

func TestReconstructUser_KeepsStoredState(t *testing.T) {
	id := uuid.New()
	login := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	email, _ := user.NewEmail("owner@example.com")

	u := user.ReconstructUser(id, email, user.Phone{}, "Owner", "hash", user.RoleOperator, &login, false, login, login)

	assert.Equal(t, id, u.ID())
	assert.False(t, u.IsActive())
	assert.True(t, u.Phone().IsZero())
	assert.Equal(t, login, *u.LastLogin())
}

func TestUserFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.UserBuilder)
		errIs  error
	}{
		{"email is lowercased", func(b *builder.UserBuilder) { b.WithEmail("Guest@Example.COM") }, nil},
		{"empty email", func(b *builder.UserBuilder) { b.WithEmail("") }, user.ErrInvalidEmail},
		{"email without domain", func(b *builder.UserBuilder) { b.WithEmail("guest@") }, user.ErrInvalidEmail},
		{"phone is optional", func(b *builder.UserBuilder) { b.WithPhone("  ") }, nil},
		{"international phone", func(b *builder.UserBuilder) { b.WithPhone("+212600000000") }, nil},
		{"phone with letters", func(b *builder.UserBuilder) { b.WithPhone("call me") }, user.ErrInvalidPhone},
		{"operator role", func(b *builder.UserBuilder) { b.WithRole("operator") }, nil},
		{"relation names are not roles", func(b *builder.UserBuilder) { b.WithRole("seller") }, user.ErrInvalidRole},
		{"empty role", func(b *builder.UserBuilder) { b.WithRole("") }, user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := builder.NewUserBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role, min user.Role
		want      bool
	}{
		{user.RoleMember, user.RoleMember, true},
		{user.RoleMember, user.RoleOperator, false},
		{user.RoleOperator, user.RoleMember, true},
		{user.RoleAdmin, user.RoleOperator, true},
		{user.Role("viewer"), user.RoleMember, false},
		{user.RoleAdmin, user.Role("root"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}

	assert.False(t, user.RoleMember.CanSettle())
	assert.True(t, user.RoleAdmin.CanSettle())
}
