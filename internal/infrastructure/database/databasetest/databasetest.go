// Package databasetest provides migrated SQLite databases for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

// New opens a fresh SQLite database in a temp directory, applies the
// production migrations and closes it when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: config.EnvironmentDevelopment},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			SQLitePath:     filepath.Join(t.TempDir(), "meetings.db"),
			ConnectTimeout: 5 * time.Second,
		},
	}

	db, err := database.NewDB(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Logger = logger.Discard

	if _, err := database.AutoMigrate(db, config.DriverSQLite); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}
