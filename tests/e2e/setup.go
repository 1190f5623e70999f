//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"event-registration/cmd/bootstrap"
	"event-registration/cmd/bootstrap/components"
	"event-registration/internal/infra/db"
	"event-registration/internal/pkg/backoff"
	"event-registration/internal/pkg/config"
	"event-registration/tests/common/authtest"
	"event-registration/tests/common/dbtest"

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

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgStartErr  error
)

// SharedSuite gives each suite its own database inside one shared Postgres container.
// Tables are truncated before every subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbConfig := createDatabase(t, postgresEndpoint(t))

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, applyMigrations(ctx, pool), "マイグレーションに失敗")

	s.DB = pool
	s.Config = createTestConfig(dbConfig, authtest.HashAdminPassword(t))
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "テーブルの初期化に失敗")
}

type endpoint struct {
	host string
	port nat.Port
}

func (e endpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port.Port(), dbName)
}

// postgresEndpoint starts the container on first use. Ryuk reaps it when the test binary exits.
func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		pgContainer, pgStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, pgStartErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return endpoint{host: host, port: port}
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		// durability off: the data dies with the container anyway
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return endpoint{host: host, port: port}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "event-registration-e2e"},
	}
}

// createDatabase creates a uniquely named database and drops it when the suite ends.
func createDatabase(t *testing.T, ep endpoint) config.DBConfig {
	t.Helper()
	dbName := "registrations_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// the container can accept connections before it accepts CREATE DATABASE
	for attempt := 0; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
		if err == nil || attempt == 4 {
			break
		}
		delay := backoff.Exponential(attempt, 250*time.Millisecond)
		slog.Warn("データベース作成を再試行します", "attempt", attempt+1, "error", err.Error(), "retry_wait", delay)
		time.Sleep(delay)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("データベース削除用の接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     ep.host,
		Port:     ep.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}
}

// applyMigrations runs every migrations/*.sql file in name order.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found under %s", root)
	}
	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// moduleRoot walks up from the package directory `go test` runs in until it finds go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}

// startApp runs the production fx graph with the Postgres store swapped in for the configured driver.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Module("teststore",
			fx.Provide(func() components.Store { return components.NewPostgresStore(pool) }),
		),
		fx.Module("testconfig",
			fx.Provide(
				func() config.Config { return cfg },
				bootstrap.NewEventRegistry,
				bootstrap.NewLocation,
			),
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		bootstrap.NotificationModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

func createTestConfig(dbConfig config.DBConfig, adminPasswordHash string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Store.Driver = "postgres"
	cfg.Admin.PasswordHash = adminPasswordHash
	return cfg
}
