package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/medstats/internal/sql"
)

// Provision brings the three target tables into a known-empty state by
// running all embedded DDL files in filename order. Each file drops its table
// if present and recreates it, so every run starts from a clean schema at the
// cost of discarding prior history. Any failure here is fatal to the run.
func Provision(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	entries, err := fs.ReadDir(embedsql.DDL, "ddl")
	if err != nil {
		return fmt.Errorf("read ddl dir: %w", err)
	}

	// Sort by filename to ensure correct ordering.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		data, err := fs.ReadFile(embedsql.DDL, "ddl/"+name)
		if err != nil {
			return fmt.Errorf("read ddl %s: %w", name, err)
		}

		log.Info().Str("ddl", name).Msg("provisioning table")
		if _, err := pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute ddl %s: %w", name, err)
		}
	}

	log.Info().Int("count", len(entries)).Msg("schema provisioned")
	return nil
}
