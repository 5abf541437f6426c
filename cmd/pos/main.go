package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mobileshop/pos/internal/config"
	"github.com/mobileshop/pos/internal/pos"
	"github.com/mobileshop/pos/internal/repository"
	"github.com/mobileshop/pos/internal/services"
	"github.com/mobileshop/pos/pkg/logger"
	"github.com/mobileshop/pos/pkg/prom"
	"github.com/mobileshop/pos/pkg/sqlite"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	cfg := config.Get()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Error("failed to create data dir", "dir", cfg.DataDir, "error", err)
		return
	}

	dbDebug := cfg.AppDebug && cfg.AppEnv == "dev"
	// Failing to open or create the store file aborts launch; everything
	// after this point reports failures as result values.
	db, err := sqlite.Open(sqlite.Config{Path: cfg.DatabasePath()}, dbDebug)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.DatabasePath(), "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DebugMetricsAddr != "" {
		if err := prom.Create(cfg.AppEnv, cfg.PromNamespace); err != nil {
			logger.Error("failed to register metrics", "error", err)
		} else {
			go prom.ListenAndServe(cfg.DebugMetricsAddr, cfg.DebugMetricsURI)
		}
	}

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// services
	seedService := services.NewSeedService(userRepo, settingRepo)
	productService := services.NewProductService(productRepo, cfg.LowStockThreshold)
	customerService := services.NewCustomerService(customerRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	settingsService := services.NewSettingsService(settingRepo)
	saleService := services.NewSaleService(saleRepo, productRepo, db)
	reportService := services.NewReportService(reportRepo, expenseRepo, productRepo, cfg.LowStockThreshold)
	authService := services.NewAuthService(userRepo, cfg.SessionPath())
	scanService := pos.NewScanService(productRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := seedService.EnsureDefaults(ctx); err != nil {
		logger.Error("failed to seed defaults", "error", err)
		os.Exit(1)
	}

	if user, err := authService.Revalidate(ctx); err == nil {
		logger.Info("operator session restored", "username", user.Username)
	} else {
		logger.Info("no stored session, login required")
	}

	db.StartCheckpointLoop(ctx, cfg.PersistInterval)

	shopName, _ := settingsService.ShopName(ctx)
	logger.Info("pos ready",
		"shop", shopName,
		"store", cfg.DatabasePath(),
		"version", version, "commit", commit, "built", date,
	)

	registry := &services.Registry{
		Products:  productService,
		Customers: customerService,
		Expenses:  expenseService,
		Settings:  settingsService,
		Sales:     saleService,
		Reports:   reportService,
		Auth:      authService,
		Scans:     scanService,
		Store:     db,
	}
	registry.SetScanWindows(cfg.ScanDebounce, cfg.ScanQuiescent)
	_ = registry // handed to the presentation bridge

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Final checkpoint so the main file captures the last writes.
	if err := db.Checkpoint(context.Background()); err != nil {
		logger.Warn("final checkpoint failed", "error", err)
	}
	logger.Sync()
}

func argContainsEnvPath() string {
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
	return ""
}
