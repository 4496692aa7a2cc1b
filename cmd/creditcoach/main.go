package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/amandalowe/creditcoach/internal/catalog"
	"github.com/amandalowe/creditcoach/internal/cli"
	"github.com/amandalowe/creditcoach/internal/config"
	"github.com/amandalowe/creditcoach/internal/db"
	"github.com/amandalowe/creditcoach/internal/repository"
	"github.com/amandalowe/creditcoach/internal/scheduler"
	"github.com/amandalowe/creditcoach/internal/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if os.Getenv("CREDITCOACH_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logger.Debug("config resolved", "db", cfg.DBPath, "catalog", cfg.CatalogPath)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "version", cat.Version, "modules", cat.Len())

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()
	snapshots := repository.NewSQLiteSnapshotRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("CREDITCOACH_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	caps := scheduler.WeekCaps{
		MaxMinutes: cfg.Week.MaxMinutes,
		MaxModules: cfg.Week.MaxModules,
	}

	app := &cli.App{
		Plan:    service.NewPlanService(cat, caps, snapshots, observer),
		History: service.NewHistoryService(snapshots, observer),
		Catalog: service.NewCatalogService(cat),
		Config:  cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
