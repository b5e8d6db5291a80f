// Package report executes the fixed battery of analytical queries that runs
// after a successful load.
package report

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/medstats/internal/sql"
)

// Entry is one named read-only query in the catalog.
type Entry struct {
	Title string
	SQL   string
}

// Options selects between documented behavioral variants of the catalog.
type Options struct {
	// FoldCancerHistoryCase switches the cancer-history query from the
	// original's case-sensitive literal ('Yes', which never matches the
	// lowercase stored values) to a lower() comparison.
	FoldCancerHistoryCase bool
}

// Catalog returns the 16 queries in their fixed execution order.
func Catalog(opts Options) []Entry {
	cancerOrSurgeries := embedsql.CancerOrSurgeries
	if opts.FoldCancerHistoryCase {
		cancerOrSurgeries = embedsql.CancerOrSurgeriesFolded
	}
	return []Entry{
		{Title: "1. First 5 Rows", SQL: embedsql.FirstRows},
		{Title: "2. Average Charges", SQL: embedsql.AverageCharges},
		{Title: "3. Charges > 700", SQL: embedsql.ChargesOver700},
		{Title: "4. Names with BMI > 35", SQL: embedsql.NamesBMIOver35},
		{Title: "5. Major Surgeries >= 1", SQL: embedsql.MajorSurgeries},
		{Title: "6. Avg Charges by Tier (2000)", SQL: embedsql.AvgChargesByTier2000},
		{Title: "7. Smokers with Transplant", SQL: embedsql.SmokersWithTransplant},
		{Title: "8. Cancer History or 2+ Surgeries", SQL: cancerOrSurgeries},
		{Title: "9. Max Surgeries (Top 1)", SQL: embedsql.MaxSurgeries},
		{Title: "10. City Tier of Surgical Patients", SQL: embedsql.CityTierSurgical},
		{Title: "11. Avg BMI by City Tier (1995)", SQL: embedsql.AvgBMIByCityTier1995},
		{Title: "12. Health Issues & BMI > 30", SQL: embedsql.HealthIssuesBMIOver30},
		{Title: "13. Max Charges per Year", SQL: embedsql.MaxChargesPerYear},
		{Title: "14. Top 3 by Avg Yearly Charges", SQL: embedsql.Top3AvgYearlyCharges},
		{Title: "15. Top 10 by Total Charges with RANK", SQL: embedsql.Top10TotalChargesRank},
		{Title: "16. Year with Most Hospitalizations", SQL: embedsql.ModeYear},
	}
}

// ResultTable is a fully materialized query result. Columns are in the order
// the store returned them.
type ResultTable struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// Run executes every catalog query in order against the committed schema and
// materializes the results. Any query failure aborts the report: the catalog
// assumes the schema the loader just produced, so a failure here is
// structural, not per-row.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, opts Options) ([]ResultTable, error) {
	entries := Catalog(opts)
	results := make([]ResultTable, 0, len(entries))

	for _, e := range entries {
		table, err := runOne(ctx, pool, e)
		if err != nil {
			return nil, fmt.Errorf("catalog query %q: %w", e.Title, err)
		}
		log.Info().Str("query", e.Title).Int("rows", len(table.Rows)).Msg("catalog query complete")
		results = append(results, table)
	}

	return results, nil
}

func runOne(ctx context.Context, pool *pgxpool.Pool, e Entry) (ResultTable, error) {
	rows, err := pool.Query(ctx, e.SQL)
	if err != nil {
		return ResultTable{}, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	table := ResultTable{Title: e.Title, Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return ResultTable{}, err
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return ResultTable{}, err
	}

	return table, nil
}
