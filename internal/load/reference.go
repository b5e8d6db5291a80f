package load

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/gyeh/medstats/internal/db"
	"github.com/gyeh/medstats/internal/model"
)

// LoadReference loads the two fixed lookup tables as atomic batches via COPY.
// The reference data is small and static, so there is no per-row isolation
// here: a duplicate key or type error fails the load.
func LoadReference(ctx context.Context, tx pgx.Tx, log zerolog.Logger, summary *model.LoadSummary) error {
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"customer_names"},
		model.NameColumns(),
		db.NamesSource(model.CustomerNames),
	)
	if err != nil {
		return fmt.Errorf("copy customer_names: %w", err)
	}
	summary.NamesLoaded = n

	n, err = tx.CopyFrom(ctx,
		pgx.Identifier{"medical_examinations"},
		model.ExamColumns(),
		db.ExamsSource(model.MedicalExaminations),
	)
	if err != nil {
		return fmt.Errorf("copy medical_examinations: %w", err)
	}
	summary.ExamsLoaded = n

	log.Info().
		Int64("names", summary.NamesLoaded).
		Int64("exams", summary.ExamsLoaded).
		Msg("reference tables loaded")

	return nil
}
