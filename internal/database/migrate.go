package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

func prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from gorm: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	return sqlDB, nil
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := prepare(db)
	if err != nil {
		return err
	}
	if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Rollback reverts the most recent migration.
func Rollback(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := prepare(db)
	if err != nil {
		return err
	}
	if err := goose.DownContext(ctx, sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status prints the state of every migration through goose's logger.
func Status(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := prepare(db)
	if err != nil {
		return err
	}
	return goose.StatusContext(ctx, sqlDB, migrationsDir)
}
