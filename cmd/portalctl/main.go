// Command portalctl runs maintenance tasks against the placement portal
// database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harish176/placement-portal/internal/bootstrap"
	"github.com/harish176/placement-portal/internal/config"
	"github.com/harish176/placement-portal/internal/db"
	"github.com/harish176/placement-portal/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Placement portal maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c",
		config.GetEnv("CONFIG_PATH", "configs/config.yaml"), "path to config.yaml")

	root.AddCommand(
		&cobra.Command{
			Use:   "ping-db",
			Short: "Check that MongoDB is reachable",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd, configPath, func(ctx context.Context, _ *config.Config, database *db.MongoDB, lgr zerolog.Logger) error {
					if err := database.Ping(ctx); err != nil {
						return fmt.Errorf("ping: %w", err)
					}
					lgr.Info().Msg("MongoDB is reachable")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "ensure-indexes",
			Short: "Create the collection indexes",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd, configPath, func(ctx context.Context, _ *config.Config, database *db.MongoDB, lgr zerolog.Logger) error {
					if err := database.EnsureIndexes(ctx); err != nil {
						return err
					}
					lgr.Info().Msg("Indexes ensured")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed-admin",
			Short: "Create the configured admin account if none exists",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd, configPath, func(ctx context.Context, cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) error {
					return bootstrap.SeedAdmin(ctx, cfg, database, lgr)
				})
			},
		},
	)
	return root
}

// withDatabase loads configuration, connects, runs fn and disconnects.
func withDatabase(cmd *cobra.Command, configPath string, fn func(context.Context, *config.Config, *db.MongoDB, zerolog.Logger) error) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	lgr := logger.WithFields(map[string]interface{}{
		"command":  cmd.Name(),
		"database": cfg.Database.Name,
	})

	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return err
	}
	defer func() { _ = database.Close(context.Background()) }()

	ctx, cancel := context.WithTimeout(parent, time.Minute)
	defer cancel()
	return fn(ctx, cfg, database, lgr)
}
