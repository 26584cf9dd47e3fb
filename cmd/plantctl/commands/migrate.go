package commands

import (
	"context"
	"database/sql"
	"fmt"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/sakif/plant-care/internal/config"
	"github.com/sakif/plant-care/internal/logging"
	"github.com/sakif/plant-care/internal/repository/migrations"
	"github.com/sakif/plant-care/internal/repository/postgres"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema",
	Long: `Apply or roll back the embedded PostgreSQL migrations.

SQLite databases create their schema when they are opened and need no
migration step.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back the latest migration
  status  - Show migration status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(cmd.Context(), func(ctx context.Context, db *sql.DB, cfg *config.Config) error {
			return migrations.Up(ctx, db, logging.New(cfg.Log))
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(cmd.Context(), func(ctx context.Context, db *sql.DB, cfg *config.Config) error {
			return migrations.Down(ctx, db, logging.New(cfg.Log))
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(cmd.Context(), func(ctx context.Context, db *sql.DB, _ *config.Config) error {
			statuses, err := migrations.Statuses(ctx, db)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tSTATE\tFILE")
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, state, s.Path)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

// withMigrationDB connects to PostgreSQL and hands fn a database/sql handle
// over the pool, which is what goose works with.
func withMigrationDB(ctx context.Context, fn func(context.Context, *sql.DB, *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations apply to PostgreSQL only, driver is %q", cfg.Database.Driver)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return fn(ctx, db, cfg)
}
