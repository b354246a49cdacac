package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nexusart/artplan/internal/cli"
	"github.com/nexusart/artplan/internal/config"
	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/nexusart/artplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := config.NewLogger(cfg)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Plans:       service.NewPlanService(planRepo, uow, observer),
		Teams:       service.NewTeamService(planRepo, uow),
		Activities:  service.NewActivityService(planRepo, uow),
		Allocations: service.NewAllocationService(planRepo, uow),
		Board:       service.NewBoardService(planRepo),
		Track:       service.NewTrackService(planRepo),
	}

	// Wizards and the live board only run against a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
