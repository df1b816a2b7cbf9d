package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/upkeep/internal/cli"
	"github.com/alexanderramin/upkeep/internal/db"
	"github.com/alexanderramin/upkeep/internal/mailer"
	"github.com/alexanderramin/upkeep/internal/notify"
	"github.com/alexanderramin/upkeep/internal/repository"
	"github.com/alexanderramin/upkeep/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.upkeep/upkeep.db
	dbPath := os.Getenv("UPKEEP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".upkeep", "upkeep.db")
	}

	// Acting identity for all commands. Single-user installs can leave the
	// default; shared databases set one ID per person.
	userID := os.Getenv("UPKEEP_USER")
	if userID == "" {
		userID = "local"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Email delivery: real provider client when configured, log-only otherwise.
	mailCfg := mailer.LoadConfig()
	var sender notify.EmailSender = mailer.NewLogSender(logger)
	if mailCfg.Enabled {
		var observer mailer.Observer = mailer.NoopObserver{}
		if mailCfg.LogSends {
			observer = mailer.NewLogObserver(os.Stderr)
		}
		sender = mailer.NewClient(mailCfg, observer)
	}

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo, historyRepo, profileRepo, uow),
		Profiles: service.NewProfileService(profileRepo),
		Summary:  service.NewSummaryService(taskRepo),
		Alerts:   notify.NewAlertEngine(taskRepo, notify.NewLogDispatcher(logger), logger, nil),
		Digest:   notify.NewBatchRunner(profileRepo, taskRepo, sender, logger, nil),
		DB:       database,
		UserID:   userID,
	}

	// Detect interactive terminal for the huh form flows.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
