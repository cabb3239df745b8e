//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"limited-drop-api/internal/infra/db"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
)

// createDatabase gives the calling suite a fresh database with the schema
// applied and reference settings seeded.
func createDatabase(t *testing.T, pg ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "drop_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 起動直後はCREATE DATABASEが失敗することがある
	err = retry(5, func() error {
		_, err := admin.Exec(ctx, "CREATE DATABASE "+name)
		return err
	})
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() { dropDatabase(pg, name) })

	cfg := config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	pool, _, err := db.Connect(cfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(ctx, pool), "マイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	return pool, cfg
}

func dropDatabase(pg ContainerInfo, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	if err != nil {
		slog.Warn("削除用の接続に失敗しました", "database", name, "error", err.Error())
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
		slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
	}
}

// applyMigrations runs every migrations/*.sql in name order. The atlas
// revision table is not needed here.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return err
		}
	}
	return nil
}

// go test runs with the package directory as cwd.
func migrationsDir() (string, error) {
	dir := "migrations"
	for range 4 {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		dir = filepath.Join("..", dir)
	}
	return "", os.ErrNotExist
}

func retry(attempts int, fn func() error) error {
	var err error
	for i := range attempts {
		if i > 0 {
			time.Sleep(min(time.Duration(i)*500*time.Millisecond, 3*time.Second))
			slog.Warn("再試行します", "attempt", i+1, "error", err.Error())
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
