package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/medstats/internal/config"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "medload",
	Short: "Hospitalization extract → Postgres loader and analytics runner",
	Long:  "Normalizes a raw hospitalization extract (CSV or Parquet), loads the survivors into a small relational schema, and runs the fixed analytical query battery.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&configPath, "config", "", "YAML config file with connection options")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

// mergeConfigFile applies --config before a subcommand validates flags.
func mergeConfigFile() error {
	if configPath == "" {
		return nil
	}
	return cfg.LoadFromFile(configPath)
}
