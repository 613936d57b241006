package bootstrap

import (
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/jwt"
	"rental-market/internal/pkg/password"

	"go.uber.org/fx"
)

// CredentialsModule provides token signing and password hashing.
var CredentialsModule = fx.Module("credentials",
	fx.Provide(
		NewJWTService,
		NewPasswordHasher,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.JWT.Duration <= 0 {
		panic("invalid JWT_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk)
}

func NewPasswordHasher(cfg config.Config) *password.Hasher {
	return password.NewHasher(cfg.Account.PasswordCost)
}
