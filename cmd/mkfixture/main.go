// mkfixture writes a deterministic, deliberately noisy hospitalization
// extract CSV for tests and demos. Rows are generated in trait buckets so
// every normalization and rejection path has coverage: clean rows, free-text
// noise, missing children, missing criticals, and impossible calendar dates.
// Usage: go run ./cmd/mkfixture --out testdata/hospitalization_details.csv --rows 200
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var header = []string{
	"Customer ID", "year", "month", "date", "children",
	"charges", "Hospital tier", "City tier", "State ID",
}

func main() {
	out := flag.String("out", "testdata/hospitalization_details.csv", "output csv")
	rows := flag.Int("rows", 200, "total rows to generate")
	seed := flag.Int64("seed", 42, "rng seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	counts := map[string]int{}
	for i := 0; i < *rows; i++ {
		row, bucket := makeRow(rng, i)
		counts[bucket]++
		if err := w.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "write row: %v\n", err)
			os.Exit(1)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", *rows, *out)
	for _, b := range []string{"clean", "noisy", "no_children", "missing_critical", "bad_date"} {
		fmt.Printf("  %-17s %d\n", b, counts[b])
	}
}

// makeRow generates one extract row. Roughly 10% are unloadable on purpose.
func makeRow(rng *rand.Rand, i int) ([]string, string) {
	// Customer ids cluster around the fixed reference customers so joins
	// in the analytics produce rows.
	customerID := 2319 + rng.Intn(5)
	year := 1995 + rng.Intn(30)
	month := rng.Intn(12)
	day := 1 + rng.Intn(28)
	children := rng.Intn(4)
	charges := 100 + rng.Float64()*2000
	hospitalTier := 1 + rng.Intn(3)
	cityTier := 1 + rng.Intn(3)
	stateID := 1 + rng.Intn(29)

	clean := []string{
		strconv.Itoa(customerID),
		strconv.Itoa(year),
		monthNames[month][:3],
		strconv.Itoa(day),
		strconv.Itoa(children),
		fmt.Sprintf("%.2f", charges),
		strconv.Itoa(hospitalTier),
		strconv.Itoa(cityTier),
		strconv.Itoa(stateID),
	}

	switch pick := i % 10; {
	case pick < 5:
		return clean, "clean"
	case pick < 7:
		// Free-text noise that still normalizes.
		clean[0] = fmt.Sprintf("CUST-%d", customerID)
		clean[2] = monthNames[month]
		clean[5] = fmt.Sprintf("Rs. %.2f", charges)
		clean[6] = fmt.Sprintf("tier-%d", hospitalTier)
		clean[8] = fmt.Sprintf("State %d", stateID)
		return clean, "noisy"
	case pick < 8:
		// Children missing; persists with the 0 default.
		clean[4] = ""
		return clean, "no_children"
	case pick < 9:
		// A critical field unparsable; the whole row drops.
		clean[criticalToBlank(rng)] = "n/a"
		return clean, "missing_critical"
	default:
		// An impossible calendar date; rejected at date construction.
		clean[2] = "Feb"
		clean[3] = "30"
		return clean, "bad_date"
	}
}

// criticalToBlank picks a critical column index (never children, index 4).
func criticalToBlank(rng *rand.Rand) int {
	cols := []int{0, 1, 2, 3, 5, 6, 7, 8}
	return cols[rng.Intn(len(cols))]
}
