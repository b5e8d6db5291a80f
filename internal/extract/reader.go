// Package extract reads the raw hospitalization extract into RawRecords.
// Two on-disk formats are supported: the original CSV export and the same
// extract re-exported as Parquet with all-text columns. Both paths produce
// identical RawRecords so normalization is format-agnostic.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gyeh/medstats/internal/model"
)

// Reader streams RawRecords from an extract file.
type Reader interface {
	// Read fills rows with up to len(rows) records, returning the count and
	// io.EOF when the input is exhausted.
	Read(rows []model.RawRecord) (int, error)
	// Format identifies the on-disk format ("csv" or "parquet").
	Format() string
	Close() error
}

// Open picks a reader by file extension. Anything that is not .parquet is
// treated as CSV.
func Open(path string) (Reader, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return OpenParquet(path)
	}
	return OpenCSV(path)
}

// ReadAll drains a Reader into memory. The pipeline is single-pass batch, so
// the whole extract is held at once.
func ReadAll(r Reader) ([]model.RawRecord, error) {
	var all []model.RawRecord
	buf := make([]model.RawRecord, 256)
	for {
		n, err := r.Read(buf)
		all = append(all, buf[:n]...)
		if err != nil {
			if isEOF(err) {
				return all, nil
			}
			return nil, fmt.Errorf("read extract: %w", err)
		}
	}
}
