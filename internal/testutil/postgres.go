//go:build integration

package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"ajira_backend/internal/config"
	"ajira_backend/internal/database"
)

// StartPostgres runs a disposable Postgres container with every migration applied.
// The returned cleanup terminates the container.
func StartPostgres(ctx context.Context) (*gorm.DB, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ajira_test"),
		postgres.WithUsername("ajira"),
		postgres.WithPassword("ajira"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	cleanup := func() {
		_ = container.Terminate(context.Background())
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	cfg := config.Default()
	cfg.Database.DSN = dsn

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		cleanup()
		return nil, nil, err
	}

	return db, func() {
		_ = database.Close(db)
		cleanup()
	}, nil
}

// Tx opens a transaction that is rolled back when the test ends.
func Tx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin transaction: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}
