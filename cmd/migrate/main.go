// Command migrate applies migrations/ to the database from the DB_* settings
// using the atlas CLI, which must be on PATH.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"limited-drop-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(*dir)))
	if err != nil {
		slog.Error("マイグレーションディレクトリの読み込みに失敗しました", "dir", *dir, "error", err)
		os.Exit(1)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), *bin)
	if err != nil {
		slog.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: *dryRun,
	})
	if err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("マイグレーション実行完了",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun)
}
