//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// sharedContainer starts at most once per test binary; every suite in the
// process gets its own database inside the same postgres.
type sharedContainer struct {
	once    sync.Once
	port    nat.Port
	timeout time.Duration
	request func() testcontainers.ContainerRequest

	container testcontainers.Container
	err       error
}

var (
	postgresContainer = &sharedContainer{
		port:    "5432/tcp",
		timeout: 3 * time.Minute,
		request: postgresRequest,
	}
	redisContainer = &sharedContainer{
		port:    "6379/tcp",
		timeout: 2 * time.Minute,
		request: redisRequest,
	}
)

func (s *sharedContainer) info(t *testing.T) ContainerInfo {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		req := s.request()
		s.container, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if s.err != nil {
			return
		}

		name := req.Name
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.container.Terminate(ctx); err != nil {
				slog.Warn("コンテナの終了に失敗しました", "container", name, "error", err.Error())
			}
		})
	})
	require.NoError(t, s.err, "コンテナの起動に失敗")

	ctx := context.Background()
	port, err := s.container.MappedPort(ctx, s.port)
	require.NoError(t, err, "ポートの取得に失敗")
	host, err := s.container.Host(ctx)
	require.NoError(t, err, "ホストの取得に失敗")

	return ContainerInfo{Host: host, Port: port}
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		Name:         "postgres-e2e",
		Labels:       map[string]string{"purpose": "e2e-tests"},
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データはRAM上、耐久性は不要
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "shared_buffers=256MB",
			// 同時チェックアウトのテストで接続を多く使う
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(time.Minute),
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		Name:         "redis-e2e",
		Labels:       map[string]string{"purpose": "e2e-tests"},
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
	}
}

func adminDSN(pg ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())
}
