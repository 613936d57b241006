package response

import (
	"time"

	"rental-market/internal/domain/user"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	return copyFrom[UserResponse](v)
}

// FromUser renders a freshly provisioned account.
func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		DisplayName: u.DisplayName(),
		Role:        string(u.Role()),
	}
}
