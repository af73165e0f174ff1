// Package commands implements the admin CLI.
package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/config"
	"github.com/lapirenov/backend/internal/db"
)

func init() {
	RootCmd.AddCommand(GetSeedCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lapirenov",
	Short: "Lapirenov CLI - provisioning and seed tooling for the portfolio backend",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// .env is optional here too
		_ = godotenv.Load()
		return nil
	},
}

// openDB connects to the database using the environment configuration.
func openDB() (*gorm.DB, config.Config, error) {
	cfg := config.Load()
	database, err := db.New(db.Options{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		DBName:     cfg.DBName,
		SSLEnabled: cfg.SSLEnabled,
	})
	return database, cfg, err
}
