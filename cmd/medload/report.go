package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/medstats/internal/db"
	"github.com/gyeh/medstats/internal/exitcode"
	"github.com/gyeh/medstats/internal/logging"
	"github.com/gyeh/medstats/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the analytical query battery against an already-loaded schema",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&cfg.FoldCancerHistoryCase, "fold-cancer-history-case", false, "Compare cancer_history case-insensitively")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := mergeConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file failed")
		os.Exit(exitcode.UsageError)
	}
	dsn, err := cfg.ResolveDSN()
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	tables, err := report.Run(ctx, pool, log, report.Options{
		FoldCancerHistoryCase: cfg.FoldCancerHistoryCase,
	})
	if err != nil {
		log.Error().Err(err).Msg("report failed")
		os.Exit(exitcode.QueryError)
	}
	report.RenderAll(os.Stdout, tables)
	return nil
}
