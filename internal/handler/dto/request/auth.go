package request

import (
	"rental-market/internal/domain/auth"
	"rental-market/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"omitempty,oneof=member operator admin"`
}

func (r *CreateUserRequest) ToInput() commands.ProvisionUserInput {
	return commands.ProvisionUserInput{
		Email:       r.Email,
		Phone:       r.Phone,
		DisplayName: r.DisplayName,
		Password:    r.Password,
		Role:        r.Role,
	}
}
