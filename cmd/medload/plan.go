package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/medstats/internal/exitcode"
	"github.com/gyeh/medstats/internal/extract"
	"github.com/gyeh/medstats/internal/load"
	"github.com/gyeh/medstats/internal/logging"
	"github.com/gyeh/medstats/internal/model"
	"github.com/gyeh/medstats/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run normalization and validation stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to extract file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := extract.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open extract")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	raws, err := extract.ReadAll(reader)
	if err != nil {
		log.Error().Err(err).Msg("failed to read extract")
		os.Exit(exitcode.ValidationError)
	}

	summary := &model.LoadSummary{SourcePath: cfg.FilePath, RowsRead: int64(len(raws))}
	facts := load.Transform(log, raws, summary)

	fmt.Println("=== medload plan ===")
	fmt.Printf("File:        %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:     %s\n", sha)
	fmt.Printf("Size:        %d bytes\n", stat.Size())
	fmt.Printf("Format:      %s\n", reader.Format())
	fmt.Printf("Raw rows:    %d\n", summary.RowsRead)
	fmt.Println()
	fmt.Printf("Admissible:        %d\n", len(facts))
	fmt.Printf("Critical dropped:  %d\n", summary.RowsDropped)
	fmt.Printf("Invalid dates:     %d\n", summary.RowsDateRejected)
	fmt.Printf("Children defaults: %d\n", summary.ChildrenDefaults)

	return nil
}
