package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/asifrahman/gradus/internal/assistant"
	"github.com/asifrahman/gradus/internal/cli"
	"github.com/asifrahman/gradus/internal/db"
	"github.com/asifrahman/gradus/internal/remote"
	"github.com/asifrahman/gradus/internal/repository"
	"github.com/asifrahman/gradus/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gradus/gradus.db
	dbPath := os.Getenv("GRADUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gradus", "gradus.db")
	}

	userID := os.Getenv("GRADUS_USER")
	if userID == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			userID = u.Username
		} else {
			userID = "default"
		}
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	semRepo := repository.NewSQLiteSemesterRepo(database)
	enrRepo := repository.NewSQLiteEnrollmentRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	dlRepo := repository.NewSQLiteDeadlineRepo(database)
	threadRepo := repository.NewSQLiteThreadRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("GRADUS_LOG_USECASES") == "true" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	threads := assistant.NewThreadStore(threadRepo)
	plannerSvc := service.NewPlannerService(prefsRepo, dlRepo, threads, observers...)
	prefsSvc := service.NewPreferencesService(prefsRepo, dlRepo)

	// Wire the chat backend (only when enabled)
	chatCfg := remote.LoadConfig()
	var chatClient remote.Client
	if chatCfg.Enabled {
		var observer remote.Observer = remote.NoopObserver{}
		if chatCfg.LogCalls {
			observer = remote.NewLogObserver(os.Stderr)
		}
		chatClient = remote.NewHTTPClient(chatCfg, observer)
	}

	app := &cli.App{
		Semesters: service.NewSemesterService(semRepo, enrRepo, uow, observers...),
		Courses:   service.NewEnrollmentService(semRepo, enrRepo, observers...),
		Compute:   service.NewComputeService(semRepo, enrRepo),
		Prefs:     prefsSvc,
		Planner:   plannerSvc,
		Chat:      assistant.NewEngine(threads, plannerSvc, prefsSvc, chatClient, chatCfg.Enabled),
		UserID:    userID,
	}

	// Detect interactive terminal for confirmations and the chat TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
