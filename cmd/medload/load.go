package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/medstats/internal/db"
	"github.com/gyeh/medstats/internal/exitcode"
	"github.com/gyeh/medstats/internal/load"
	"github.com/gyeh/medstats/internal/logging"
	"github.com/gyeh/medstats/internal/report"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run the full pipeline: provision, load, commit, report",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to extract file, CSV or Parquet (required)")
	f.BoolVar(&cfg.SkipReport, "skip-report", false, "Skip the analytical query battery after load")
	f.BoolVar(&cfg.FoldCancerHistoryCase, "fold-cancer-history-case", false, "Compare cancer_history case-insensitively in the report")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := mergeConfigFile(); err != nil {
		log.Error().Err(err).Msg("config file failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	dsn, _ := cfg.ResolveDSN()

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*load.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "extract":
				os.Exit(exitcode.ValidationError)
			case "provision":
				os.Exit(exitcode.ProvisionError)
			default:
				os.Exit(exitcode.LoadError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}

	fmt.Printf("Load complete: %d of %d raw rows persisted (%d dropped, %d bad dates, %d insert failures) in %.1fs\n",
		summary.RowsInserted, summary.RowsRead,
		summary.RowsDropped, summary.RowsDateRejected, summary.InsertFailures,
		summary.DurationTotal.Seconds())

	if !cfg.SkipReport {
		tables, err := report.Run(ctx, pool, log, report.Options{
			FoldCancerHistoryCase: cfg.FoldCancerHistoryCase,
		})
		if err != nil {
			log.Error().Err(err).Msg("report failed")
			os.Exit(exitcode.QueryError)
		}
		report.RenderAll(os.Stdout, tables)
	}

	if summary.InsertFailures > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
