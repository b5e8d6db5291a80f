package load

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/gyeh/medstats/internal/model"
)

const insertFactSQL = `
INSERT INTO hospitalization_facts (
    customer_id, admission_date, children,
    charges, hospital_tier, city_tier, state_id
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

// InsertFacts persists admitted facts one at a time inside the outer
// transaction. Each insert runs in its own savepoint so a rejected row
// (type or constraint violation) rolls back alone: the failure is recorded
// with its customer_id and the remaining rows still load.
func InsertFacts(ctx context.Context, tx pgx.Tx, log zerolog.Logger, facts []model.Fact, summary *model.LoadSummary) {
	for i := range facts {
		fact := &facts[i]
		if err := insertFact(ctx, tx, fact); err != nil {
			summary.InsertFailures++
			summary.Failures = append(summary.Failures, model.RowFailure{
				Reason:     model.FailureInsert,
				CustomerID: fact.CustomerID,
				Detail:     err.Error(),
			})
			log.Warn().
				Int64("customer_id", fact.CustomerID).
				Err(err).
				Msg("fact insert failed")
			continue
		}
		summary.RowsInserted++
	}
}

func insertFact(ctx context.Context, tx pgx.Tx, fact *model.Fact) error {
	// Nested Begin opens a savepoint on the outer transaction.
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	if _, err := sp.Exec(ctx, insertFactSQL, fact.InsertValues()...); err != nil {
		sp.Rollback(ctx)
		return err
	}
	return sp.Commit(ctx)
}
