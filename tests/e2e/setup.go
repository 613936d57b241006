//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"rental-market/cmd/bootstrap"
	"rental-market/cmd/bootstrap/components"
	"rental-market/internal/infra/db"
	"rental-market/internal/pkg/config"
	"rental-market/tests/common/dbtest"

	"github.com/cenkalti/backoff/v4"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, c.Host, c.Port.Port(), database)
}

// sharedPostgres starts one container per test binary. Every suite gets
// its own database inside it.
var sharedPostgres = sync.OnceValues(func() (ContainerInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd: []string{"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return ContainerInfo{Host: host, Port: port}.dsn("postgres")
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "rental-market-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return ContainerInfo{}, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: port}, nil
})

// SharedSuite gives every e2e suite a migrated database and the full fx
// graph with Kafka and Redis switched off.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg, err := sharedPostgres()
	require.NoError(t, err, "postgres container")

	dbCfg := createDatabase(t, pg)
	pool, _, err := db.Connect(dbCfg)
	require.NoError(t, err, "connect test database")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(pool), "migrate test database")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	router, err := startApp(t, pool, cfg)
	require.NoError(t, err, "start application")

	s.DB, s.Router, s.Config = pool, router, cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

// createDatabase retries CREATE DATABASE, which fails while the template
// database is busy with a concurrent creation.
func createDatabase(t *testing.T, pg ContainerInfo) config.DBConfig {
	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin := pg.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	adminPool, err := pgxpool.New(ctx, admin)
	require.NoError(t, err, "admin connection")
	defer adminPool.Close()

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5)
	err = backoff.RetryNotify(func() error {
		_, err := adminPool.Exec(ctx, "CREATE DATABASE "+name)
		return err
	}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		slog.Warn("retrying database creation", "database", name, "wait", wait, "error", err.Error())
	})
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		p, err := pgxpool.New(ctx, admin)
		if err != nil {
			slog.Warn("drop test database: connect", "database", name, "error", err.Error())
			return
		}
		defer p.Close()
		if _, err := p.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// applyMigrations executes the SQL files in order. cmd/migrate goes
// through the atlas CLI, which the test environment does not ship.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := findMigrations()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		script, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// findMigrations walks up from the package directory to the module root.
func findMigrations() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		cand := filepath.Join(dir, "migrations")
		if info, err := os.Stat(cand); err == nil && info.IsDir() {
			return cand, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("migrations directory not found")
		}
		dir = parent
	}
}

func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, error) {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		bootstrap.SectionProviders,
		fx.Provide(func() *pgxpool.Pool { return pool }),
		bootstrap.StoreProviders,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CredentialsModule,
		bootstrap.MessagingModule,
		bootstrap.SchedulerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, err
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})
	return router, nil
}
