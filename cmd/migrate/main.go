package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"event-registration/internal/pkg/config"
	"event-registration/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "migration directory (must contain atlas.sum)")
		atlas   = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun  = flag.Bool("dry-run", false, "print pending migrations without applying them")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := migrate(ctx, logger, cfg, *dir, *atlas, *dryRun); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err, "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func migrate(ctx context.Context, logger *slog.Logger, cfg config.DBConfig, dir, atlasPath string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return errs.Wrap(err, "prepare atlas working dir")
	}
	defer func() {
		if cerr := workdir.Close(); cerr != nil {
			logger.Warn("atlas作業ディレクトリの削除に失敗しました", "error", cerr)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), atlasPath)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "migrate apply")
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション適用", "file", f.Name, "dry_run", dryRun)
	}
	logger.Info("マイグレーション完了",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
