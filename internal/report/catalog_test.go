package report_test

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/medstats/internal/config"
	"github.com/gyeh/medstats/internal/load"
	"github.com/gyeh/medstats/internal/logging"
	"github.com/gyeh/medstats/internal/report"
)

const (
	testPort     = 15433
	testDB       = "medreport"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			RuntimePath(filepath.Join(os.TempDir(), "medstats-pgtest-report")).
			StartTimeout(30*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// fixtureFacts is the known dataset behind every parity check below:
//
//	2323 Amit Kumar    2000-01-15 1000.00 t1 c1   2000-02-20 800.00 t1 c1
//	2322 Neha Sharma   2000-03-03  600.00 t2 c2
//	2321 Ravi Yadav    1995-05-28 2000.00 t3 c2
//	2320 Rina Gupta    1995-07-04  500.00 t2 c1
//	2319 Saurabh Singh 2005-09-23  430.00 t1 c1
var fixtureFacts = []string{
	"2323,2000,Jan,15,2,1000.00,1,1,5",
	"2323,2000,Feb,20,2,800.00,1,1,5",
	"2322,2000,Mar,3,0,600.00,2,2,9",
	"2321,1995,May,28,3,2000.00,3,2,12",
	"2320,1995,Jul,4,1,500.00,2,1,21",
	"2319,2005,Sep,23,0,430.00,1,1,3",
}

// setupLoadedDB provisions, loads the fixture dataset, and returns a pool.
func setupLoadedDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	content := "customer_id,year,month,date,children,charges,hospital_tier,city_tier,state_id\n"
	for _, r := range fixtureFacts {
		content += r + "\n"
	}
	path := filepath.Join(t.TempDir(), "fixture.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := &config.Config{FilePath: path}
	summary, err := load.Run(ctx, pool, logging.Setup("text"), cfg)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if summary.RowsInserted != int64(len(fixtureFacts)) {
		t.Fatalf("fixture load inserted %d rows, want %d", summary.RowsInserted, len(fixtureFacts))
	}
	return pool
}

func runCatalog(t *testing.T, pool *pgxpool.Pool, opts report.Options) map[string]report.ResultTable {
	t.Helper()
	tables, err := report.Run(context.Background(), pool, logging.Setup("text"), opts)
	if err != nil {
		t.Fatalf("report.Run: %v", err)
	}
	if len(tables) != 16 {
		t.Fatalf("catalog returned %d tables, want 16", len(tables))
	}
	byTitle := make(map[string]report.ResultTable, len(tables))
	for _, tab := range tables {
		byTitle[tab.Title] = tab
	}
	return byTitle
}

// asFloat unwraps the numeric types pgx hands back for aggregates.
func asFloat(t *testing.T, v any) float64 {
	t.Helper()
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	default:
		t.Fatalf("unexpected numeric type %T", v)
		return 0
	}
}

func TestCatalog_Parity(t *testing.T) {
	pool := setupLoadedDB(t)
	tables := runCatalog(t, pool, report.Options{})

	t.Run("first rows", func(t *testing.T) {
		tab := tables["1. First 5 Rows"]
		if len(tab.Rows) != 5 {
			t.Errorf("rows = %d, want 5", len(tab.Rows))
		}
		if len(tab.Columns) != 7 {
			t.Errorf("columns = %d, want 7", len(tab.Columns))
		}
		if tab.Columns[0] != "customer_id" || tab.Columns[1] != "admission_date" {
			t.Errorf("column order = %v", tab.Columns)
		}
	})

	t.Run("average charges", func(t *testing.T) {
		tab := tables["2. Average Charges"]
		if len(tab.Rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(tab.Rows))
		}
		got := asFloat(t, tab.Rows[0][0])
		want := 5330.0 / 6.0
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("avg_charges = %v, want %v", got, want)
		}
	})

	t.Run("charges over 700", func(t *testing.T) {
		tab := tables["3. Charges > 700"]
		if len(tab.Rows) != 3 {
			t.Errorf("rows = %d, want 3 (1000, 800, 2000)", len(tab.Rows))
		}
	})

	t.Run("names with bmi over 35", func(t *testing.T) {
		// BMI > 35: 2323 (36.5), 2321 (41.0), 2320 (38.4) owning 4 facts.
		tab := tables["4. Names with BMI > 35"]
		if len(tab.Rows) != 4 {
			t.Errorf("rows = %d, want 4", len(tab.Rows))
		}
	})

	t.Run("major surgeries", func(t *testing.T) {
		tab := tables["5. Major Surgeries >= 1"]
		if len(tab.Rows) != 3 {
			t.Errorf("rows = %d, want 3", len(tab.Rows))
		}
	})

	t.Run("avg charges by tier 2000", func(t *testing.T) {
		tab := tables["6. Avg Charges by Tier (2000)"]
		if len(tab.Rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(tab.Rows))
		}
		byTier := map[int32]float64{}
		for _, row := range tab.Rows {
			byTier[row[0].(int32)] = asFloat(t, row[1])
		}
		if math.Abs(byTier[1]-900.0) > 1e-6 {
			t.Errorf("tier 1 avg = %v, want 900", byTier[1])
		}
		if math.Abs(byTier[2]-600.0) > 1e-6 {
			t.Errorf("tier 2 avg = %v, want 600", byTier[2])
		}
	})

	t.Run("smokers with transplant", func(t *testing.T) {
		// Only 2321 is both smoker and transplant recipient; one fact.
		tab := tables["7. Smokers with Transplant"]
		if len(tab.Rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(tab.Rows))
		}
		if got := asFloat(t, tab.Rows[0][2]); got != 2000.00 {
			t.Errorf("charges = %v, want 2000.00", got)
		}
	})

	t.Run("cancer history case-sensitive", func(t *testing.T) {
		// The capitalized 'Yes' literal never matches the lowercase stored
		// values, so only the surgeries>=2 clause fires: 2321.
		tab := tables["8. Cancer History or 2+ Surgeries"]
		if len(tab.Rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(tab.Rows))
		}
		if tab.Rows[0][0] != "Ravi Yadav" {
			t.Errorf("name = %v, want Ravi Yadav", tab.Rows[0][0])
		}
	})

	t.Run("max surgeries", func(t *testing.T) {
		tab := tables["9. Max Surgeries (Top 1)"]
		if len(tab.Rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(tab.Rows))
		}
		if tab.Rows[0][1] != "Ravi Yadav" {
			t.Errorf("name = %v, want Ravi Yadav", tab.Rows[0][1])
		}
	})

	t.Run("city tier of surgical patients", func(t *testing.T) {
		tab := tables["10. City Tier of Surgical Patients"]
		if len(tab.Rows) != 4 {
			t.Errorf("rows = %d, want 4", len(tab.Rows))
		}
	})

	t.Run("avg bmi by city tier 1995", func(t *testing.T) {
		tab := tables["11. Avg BMI by City Tier (1995)"]
		if len(tab.Rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(tab.Rows))
		}
		byTier := map[int32]float64{}
		for _, row := range tab.Rows {
			byTier[row[0].(int32)] = asFloat(t, row[1])
		}
		if math.Abs(byTier[1]-38.4) > 1e-6 {
			t.Errorf("city 1 avg bmi = %v, want 38.4", byTier[1])
		}
		if math.Abs(byTier[2]-41.0) > 1e-6 {
			t.Errorf("city 2 avg bmi = %v, want 41.0", byTier[2])
		}
	})

	t.Run("health issues and bmi over 30", func(t *testing.T) {
		tab := tables["12. Health Issues & BMI > 30"]
		if len(tab.Rows) != 4 {
			t.Errorf("rows = %d, want 4", len(tab.Rows))
		}
	})

	t.Run("max charges per year", func(t *testing.T) {
		// One winning (year, name, city_tier) group per year.
		tab := tables["13. Max Charges per Year"]
		if len(tab.Rows) != 3 {
			t.Fatalf("rows = %d, want 3", len(tab.Rows))
		}
		maxByYear := map[int32]float64{}
		for _, row := range tab.Rows {
			maxByYear[row[0].(int32)] = asFloat(t, row[3])
		}
		if maxByYear[2000] != 1000.00 || maxByYear[1995] != 2000.00 || maxByYear[2005] != 430.00 {
			t.Errorf("max by year = %v", maxByYear)
		}
	})

	t.Run("top 3 by avg yearly charges", func(t *testing.T) {
		tab := tables["14. Top 3 by Avg Yearly Charges"]
		if len(tab.Rows) != 3 {
			t.Fatalf("rows = %d, want 3", len(tab.Rows))
		}
		// Yearly averages: Ravi 2000, Amit 900, Neha 600.
		wantNames := []string{"Ravi Yadav", "Amit Kumar", "Neha Sharma"}
		wantAvgs := []float64{2000.00, 900.00, 600.00}
		for i := range wantNames {
			if tab.Rows[i][0] != wantNames[i] {
				t.Errorf("row %d name = %v, want %s", i, tab.Rows[i][0], wantNames[i])
			}
			if got := asFloat(t, tab.Rows[i][1]); math.Abs(got-wantAvgs[i]) > 1e-6 {
				t.Errorf("row %d avg = %v, want %v", i, got, wantAvgs[i])
			}
		}
	})

	t.Run("top 10 total charges with rank", func(t *testing.T) {
		tab := tables["15. Top 10 by Total Charges with RANK"]
		if len(tab.Rows) != 5 {
			t.Fatalf("rows = %d, want 5", len(tab.Rows))
		}
		if tab.Rows[0][0] != "Ravi Yadav" || asFloat(t, tab.Rows[0][1]) != 2000.00 {
			t.Errorf("rank 1 = %v", tab.Rows[0])
		}
		if rank := tab.Rows[0][2].(int64); rank != 1 {
			t.Errorf("rank = %d, want 1", rank)
		}
		if tab.Rows[1][0] != "Amit Kumar" || asFloat(t, tab.Rows[1][1]) != 1800.00 {
			t.Errorf("rank 2 = %v", tab.Rows[1])
		}
	})

	t.Run("mode year", func(t *testing.T) {
		// Counts: 2000 has 3, 1995 has 2, 2005 has 1.
		tab := tables["16. Year with Most Hospitalizations"]
		if len(tab.Rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(tab.Rows))
		}
		if year := tab.Rows[0][0].(int32); year != 2000 {
			t.Errorf("year = %d, want 2000", year)
		}
		if n := tab.Rows[0][1].(int64); n != 3 {
			t.Errorf("count = %d, want 3", n)
		}
	})
}

func TestCatalog_CancerHistoryCaseFolded(t *testing.T) {
	pool := setupLoadedDB(t)
	tables := runCatalog(t, pool, report.Options{FoldCancerHistoryCase: true})

	// lower() comparison adds the cancer-history customers (2322, 2320) to
	// the surgeries>=2 match (2321).
	tab := tables["8. Cancer History or 2+ Surgeries"]
	if len(tab.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tab.Rows))
	}
	names := map[any]bool{}
	for _, row := range tab.Rows {
		names[row[0]] = true
	}
	for _, want := range []string{"Neha Sharma", "Ravi Yadav", "Rina Gupta"} {
		if !names[want] {
			t.Errorf("missing %s in %v", want, names)
		}
	}
}

func TestCatalog_ModeYearTie(t *testing.T) {
	pool := setupLoadedDB(t)
	ctx := context.Background()

	// Add one 1995 admission so 1995 and 2000 tie at three each.
	_, err := pool.Exec(ctx, `
		INSERT INTO hospitalization_facts (customer_id, admission_date, children,
			charges, hospital_tier, city_tier, state_id)
		VALUES (2319, '1995-11-11', 0, 300.00, 1, 1, 3)`)
	if err != nil {
		t.Fatalf("insert tie row: %v", err)
	}

	tables := runCatalog(t, pool, report.Options{})
	tab := tables["16. Year with Most Hospitalizations"]
	if len(tab.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 tied years", len(tab.Rows))
	}
	years := map[int32]bool{}
	for _, row := range tab.Rows {
		years[row[0].(int32)] = true
	}
	if !years[1995] || !years[2000] {
		t.Errorf("tied years = %v, want 1995 and 2000", years)
	}
}
