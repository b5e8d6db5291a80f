// Package load orchestrates the batch pipeline: extract, normalize, validate,
// provision, load, commit.
package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/medstats/internal/config"
	"github.com/gyeh/medstats/internal/db"
	"github.com/gyeh/medstats/internal/extract"
	"github.com/gyeh/medstats/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full pipeline: extract → transform → provision → load →
// commit. Per-row failures are recovered and reported on the summary;
// structural failures (extract open, provisioning, commit) return a
// PipelineError and abort the run.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	summary := &model.LoadSummary{
		RunID:      runID.String(),
		SourcePath: cfg.FilePath,
	}

	// Phase 1: Extract
	log.Info().Str("file", cfg.FilePath).Msg("reading extract")
	extractStart := time.Now()
	raws, err := readExtract(cfg.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: "extract", Err: err}
	}
	summary.RowsRead = int64(len(raws))
	summary.DurationExtract = time.Since(extractStart)

	// Phase 2: Normalize + validate (pure, no I/O)
	facts := Transform(log, raws, summary)
	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int("rows_admitted", len(facts)).
		Int64("rows_dropped", summary.RowsDropped).
		Int64("rows_date_rejected", summary.RowsDateRejected).
		Msg("transform complete")

	// Phase 3: Provision schema (destructive, fatal on failure)
	if err := db.Provision(ctx, pool, log); err != nil {
		return nil, &PipelineError{Phase: "provision", Err: err}
	}

	// Phase 4: Load facts and reference batches under one commit boundary
	loadStart := time.Now()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: fmt.Errorf("begin: %w", err)}
	}
	// No-op after a successful commit.
	defer tx.Rollback(ctx)

	InsertFacts(ctx, tx, log, facts, summary)

	if err := LoadReference(ctx, tx, log, summary); err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &PipelineError{Phase: "commit", Err: err}
	}
	summary.DurationLoad = time.Since(loadStart)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_inserted", summary.RowsInserted).
		Int64("insert_failures", summary.InsertFailures).
		Int64("names_loaded", summary.NamesLoaded).
		Int64("exams_loaded", summary.ExamsLoaded).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}

func readExtract(path string) ([]model.RawRecord, error) {
	reader, err := extract.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return extract.ReadAll(reader)
}
