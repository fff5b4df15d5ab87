// Command migrate applies the SQL files under migrations/ with the atlas CLI.
//
//	migrate [apply|status]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hotel-management/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "apply"
	}

	if err := run(cmd, *atlasBin, *timeout); err != nil {
		slog.Error("migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(cmd, atlasBin string, timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return fmt.Errorf("failed to init atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	url := cfg.DB.BuildDSN()
	switch cmd {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    url,
			DirURL: cfg.DB.MigrationDir,
		})
		if err != nil {
			return err
		}
		slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: cfg.DB.MigrationDir,
		})
		if err != nil {
			return err
		}
		slog.Info("migration status", "status", res.Status, "current", res.Current, "pending", len(res.Pending))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
