// Package commands implements the plantctl command line.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakif/plant-care/internal/config"
)

var (
	// Global flags
	configPath string
	dbURL      string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plantctl",
	Short: "plantctl - operate the plant-care API",
	Long: `plantctl runs the plant-care API server and manages its PostgreSQL schema.

Configuration comes from environment variables (DATABASE_URL, PORT,
AWS_ACCESS_KEY_ID, ...) and, optionally, a YAML file given with --config.
Run "plantctl config" to list every variable.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configCmd prints the recognised environment variables.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "List configuration environment variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (same as CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (overrides DATABASE_URL)")

	rootCmd.AddCommand(configCmd)
}

// loadConfig applies the global flags on top of the environment and loads
// the configuration the same way the server binary does.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
			return nil, err
		}
	}
	if dbURL != "" {
		if err := os.Setenv("DATABASE_URL", dbURL); err != nil {
			return nil, err
		}
	}
	return config.Load()
}
