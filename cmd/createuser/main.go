package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"rental-market/internal/handler/middleware"
	"rental-market/internal/infra/db"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/uow"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/password"
	"rental-market/internal/usecase/commands"
)

// Provisions one account, typically the first admin of a fresh database.
// The password is read from CREATEUSER_PASSWORD so it stays out of shell history.
func main() {
	in := commands.ProvisionUserInput{Password: os.Getenv("CREATEUSER_PASSWORD")}
	flag.StringVar(&in.Email, "email", "", "account email")
	flag.StringVar(&in.DisplayName, "name", "", "display name")
	flag.StringVar(&in.Phone, "phone", "", "contact phone, optional")
	flag.StringVar(&in.Role, "role", "member", "member, operator or admin")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cmds := commands.NewAccountCommands(
		uow.NewPostgresUoW(pool, pgq.New()),
		password.NewHasher(cfg.Account.PasswordCost),
		clock.NewRealClock(),
	)
	u, err := cmds.Provision(ctx, in)
	if err != nil {
		slog.Error("failed to create user", "email", in.Email, "error", err)
		cancel()
		cleanup()
		os.Exit(1)
	}
	slog.Info("user created", "id", u.ID(), "email", u.Email().Value(), "role", u.Role().String())
}
