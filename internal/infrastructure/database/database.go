package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/johnquangdev/meeting-notes-analyzer/errors"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// NewDB opens a database connection using GORM for the configured driver.
// The first ping is retried with exponential backoff until DB_CONNECT_TIMEOUT
// so the service can start before the database is ready. A database that never
// answers yields an errors.AppError with code DB_CONNECTION_FAILED.
func NewDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	gormCfg := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableAutomaticPing: true,
	}

	db, err := gorm.Open(dialector(cfg), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Get generic database object to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if cfg.Database.Driver == config.DriverSQLite {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = cfg.Database.ConnectTimeout

	ping := func() error {
		return sqlDB.PingContext(ctx)
	}
	notify := func(err error, wait time.Duration) {
		log.Warn("⏳ Database not ready, retrying",
			zap.String("driver", cfg.Database.Driver),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.ErrDBConnectionFailed(err).WithDetail("driver", cfg.Database.Driver)
	}

	log.Info("✅ Database connected successfully", zap.String("driver", cfg.Database.Driver))

	return db, nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.Database.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.GetDatabaseDSN())
	}
	return postgres.Open(cfg.GetDatabaseDSN())
}

// MigrationSource returns the embedded sql-migrate source for a driver
func MigrationSource(driver string) (migrate.MigrationSource, string) {
	dialect := "postgres"
	if driver == config.DriverSQLite {
		dialect = "sqlite3"
	}
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations/" + dialect,
	}, dialect
}

// Migrate applies (direction Up) or rolls back (direction Down) the embedded migrations
func Migrate(db *gorm.DB, driver string, direction migrate.MigrationDirection) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	source, dialect := MigrationSource(driver)
	n, err := migrate.Exec(sqlDB, dialect, source, direction)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// Rollback undoes the most recent steps migrations
func Rollback(db *gorm.DB, driver string, steps int) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during rollback, error: %v", err)
	}

	source, dialect := MigrationSource(driver)
	n, err := migrate.ExecMax(sqlDB, dialect, source, migrate.Down, steps)
	if err != nil {
		return 0, fmt.Errorf("failed to roll back migration, error: %v", err)
	}
	return n, nil
}

// MigrationState is one known migration and when it was applied
type MigrationState struct {
	ID        string
	AppliedAt *time.Time
}

// Status lists every embedded migration with its applied time, if any
func Status(db *gorm.DB, driver string) ([]MigrationState, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get db connection during status, error: %v", err)
	}

	source, dialect := MigrationSource(driver)
	migrations, err := source.FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	records, err := migrate.GetMigrationRecords(sqlDB, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration records: %w", err)
	}

	applied := make(map[string]time.Time, len(records))
	for _, r := range records {
		applied[r.Id] = r.AppliedAt
	}

	states := make([]MigrationState, 0, len(migrations))
	for _, m := range migrations {
		state := MigrationState{ID: m.Id}
		if at, ok := applied[m.Id]; ok {
			state.AppliedAt = &at
		}
		states = append(states, state)
	}
	return states, nil
}

// AutoMigrate applies all pending migrations
func AutoMigrate(db *gorm.DB, driver string) (int, error) {
	return Migrate(db, driver, migrate.Up)
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
