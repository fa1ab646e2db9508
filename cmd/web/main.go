package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ajira_backend/internal/app"
	"ajira_backend/internal/config"
	"ajira_backend/internal/database"
	"ajira_backend/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "ajira",
		Short:         "AjiraGlobal job marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (defaults to $CONFIG_PATH or config/config.yaml)")

	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Server.Env)
	return cfg, nil
}

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if migrate {
				if err := withDB(ctx, cfg, database.Migrate); err != nil {
					return err
				}
			}
			return app.Run(ctx, cfg)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	steps := []struct {
		use, short string
		run        func(context.Context, *gorm.DB) error
	}{
		{"up", "Apply all pending migrations", database.Migrate},
		{"down", "Roll back the latest migration", database.Rollback},
		{"status", "Print migration status", database.Status},
	}
	for _, s := range steps {
		run := s.run
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return withDB(cmd.Context(), cfg, run)
			},
		})
	}
	return cmd
}

func withDB(ctx context.Context, cfg *config.Config, fn func(context.Context, *gorm.DB) error) error {
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(ctx, db)
}
