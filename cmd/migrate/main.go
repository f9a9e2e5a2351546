package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

const (
	cmdUp     = "up"
	cmdDown   = "down"
	cmdStatus = "status"
)

var errUsage = errors.New("usage: migrate [-steps n] up|down|status")

type options struct {
	command string
	steps   int
}

// parseArgs validates the command line before anything touches the database
func parseArgs(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(output)
	steps := fs.Int("steps", 1, "number of migrations to roll back with down")
	fs.Usage = func() {
		fmt.Fprintln(output, errUsage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errUsage
	}

	switch cmd := fs.Arg(0); cmd {
	case cmdUp, cmdStatus:
		return options{command: cmd}, nil
	case cmdDown:
		if *steps < 1 {
			return options{}, fmt.Errorf("-steps must be at least 1, got %d", *steps)
		}
		return options{command: cmd, steps: *steps}, nil
	default:
		fs.Usage()
		return options{}, fmt.Errorf("unknown command %q", cmd)
	}
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	code := run(cfg, opts, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run executes the command and returns the process exit code
func run(cfg *config.Config, opts options, logger *zap.Logger) int {
	db, err := database.NewDB(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return 1
	}
	defer database.CloseDB(db)

	driver := cfg.Database.Driver

	switch opts.command {
	case cmdUp:
		n, err := database.AutoMigrate(db, driver)
		if err != nil {
			logger.Error("Failed to apply migrations", zap.Error(err))
			return 1
		}
		logger.Info("✅ Applied migrations", zap.Int("count", n))

	case cmdDown:
		n, err := database.Rollback(db, driver, opts.steps)
		if err != nil {
			logger.Error("Failed to roll back migrations", zap.Error(err))
			return 1
		}
		logger.Info("↩️ Rolled back migrations", zap.Int("count", n))

	case cmdStatus:
		states, err := database.Status(db, driver)
		if err != nil {
			logger.Error("Failed to read migration status", zap.Error(err))
			return 1
		}
		for _, s := range states {
			applied := "pending"
			if s.AppliedAt != nil {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-50s %s\n", s.ID, applied)
		}
	}

	return 0
}
