package commands

import (
	"github.com/spf13/cobra"

	"github.com/sakif/plant-care/internal/logging"
	"github.com/sakif/plant-care/internal/server"
)

var migrateFirst bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM.

Examples:
  plantctl serve                     # configuration from the environment
  plantctl serve --migrate           # apply PostgreSQL migrations first
  plantctl serve --config prod.yaml  # YAML file, env vars still override`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if migrateFirst {
			cfg.Database.AutoMigrate = true
		}

		logger := logging.New(cfg.Log)
		srv, err := server.Open(cmd.Context(), *cfg, logger)
		if err != nil {
			return err
		}
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateFirst, "migrate", false, "Apply pending PostgreSQL migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
