//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"stay-picker/cmd/bootstrap"
	"stay-picker/cmd/bootstrap/components"
	"stay-picker/internal/pkg/config"
	"stay-picker/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
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
	pgUser     = "picker"
	pgPassword = "pickerpass"
)

// sharedContainer starts at most once per test binary; every suite in the
// process reuses it with its own database.
type sharedContainer struct {
	once    sync.Once
	port    nat.Port
	request testcontainers.ContainerRequest

	addr string
	err  error
}

var postgres = &sharedContainer{
	port: "5432/tcp",
	request: testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(fmt.Sprintf("%s:%s", host, port.Port()))
		}).WithStartupTimeout(90 * time.Second),
		Labels: map[string]string{"app": "stay-picker-e2e"},
	},
}

var redisServer = &sharedContainer{
	port: "6379/tcp",
	request: testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"app": "stay-picker-e2e"},
	},
}

// Addr returns host:port of the running container, starting it on first use.
func (c *sharedContainer) Addr(t *testing.T) string {
	t.Helper()
	c.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: c.request,
			Started:          true,
		})
		if err != nil {
			c.err = fmt.Errorf("start %s: %w", c.request.Image, err)
			return
		}
		host, err := ctr.Host(ctx)
		if err != nil {
			c.err = err
			return
		}
		mapped, err := ctr.MappedPort(ctx, c.port)
		if err != nil {
			c.err = err
			return
		}
		c.addr = fmt.Sprintf("%s:%s", host, mapped.Port())
	})
	require.NoError(t, c.err)
	return c.addr
}

func adminDSN(addr string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, addr)
}

// createDatabase makes a throwaway database for one suite and drops it on cleanup.
func createDatabase(t *testing.T, addr string) config.DBConfig {
	t.Helper()
	name := "picker_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(addr))
	require.NoError(t, err)
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(addr))
		if err != nil {
			slog.Warn("drop test database: connect", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})

	host, port, _ := strings.Cut(addr, ":")
	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}
}

// migrationsDir resolves <repo>/migrations from this file's location so the
// suites work from any package directory.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// applyMigrations executes every *.sql file in name order.
func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(migrationsDir(), "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migrations found in %s", migrationsDir())
	slices.Sort(files)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "apply %s", filepath.Base(f))
	}
}

type environment struct {
	pool   *pgxpool.Pool
	redis  *redis.Client
	router *gin.Engine
	cfg    config.Config
}

// startApp boots the real fx graph against the containers. Only the config
// source is swapped out.
func startApp(t *testing.T) environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, postgres.Addr(t))
	cfg.Redis.Addr = redisServer.Addr(t)

	var env environment
	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewClock,
			bootstrap.NewPickerSettings,
			bootstrap.NewLocationPolicy,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.PostgresModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.CacheModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.pool, &env.redis, &env.router, &env.cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})

	applyMigrations(t, env.pool)
	require.NoError(t, env.redis.Ping(ctx).Err(), "redis ping")
	return env
}

// SharedSuite gives each e2e suite a running app, a fresh database and a
// flushed cache per subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := startApp(s.T())
	s.DB = env.pool
	s.Redis = env.redis
	s.Router = env.router
	s.Config = env.cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "flush redis")
}
