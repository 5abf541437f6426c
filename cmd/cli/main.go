// Admin entrypoint: store maintenance that runs while the POS itself is
// stopped. Usage:
//
//	cli [--env=path] backup
//	cli [--env=path] restore --path=backup_1725000000000.db
//	cli [--env=path] migrate
package main

import (
	"context"
	"os"
	"strings"

	"github.com/mobileshop/pos/internal/config"
	"github.com/mobileshop/pos/pkg/logger"
	"github.com/mobileshop/pos/pkg/sqlite"
)

func main() {
	err := config.Load(getEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	db, err := sqlite.Open(sqlite.Config{Path: config.Get().DatabasePath()}, false)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	switch command() {
	case "backup":
		path, err := db.Backup(ctx)
		if err != nil {
			logger.Error("backup failed", "error", err)
			os.Exit(1)
		}
		logger.Info("backup written", "path", path)
	case "restore":
		path := getArg("--path=")
		if path == "" {
			logger.Error("restore requires --path=<backup file>")
			os.Exit(1)
		}
		if err := db.Restore(ctx, path); err != nil {
			logger.Error("restore failed", "error", err)
			os.Exit(1)
		}
		logger.Info("store restored", "from", path)
	case "migrate":
		// Open already ran pending migrations.
		logger.Info("migrations applied", "store", config.Get().DatabasePath())
	default:
		logger.Error("unknown command; expected backup, restore or migrate")
		os.Exit(1)
	}
}

func command() string {
	for _, v := range os.Args[1:] {
		if !strings.HasPrefix(v, "--") {
			return v
		}
	}
	return "migrate"
}

func getArg(prefix string) string {
	for _, v := range os.Args {
		if strings.HasPrefix(v, prefix) {
			return strings.TrimPrefix(v, prefix)
		}
	}
	return ""
}

func getEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	if _, err := os.Open(".env"); err != nil {
		return ""
	}
	return ".env"
}
