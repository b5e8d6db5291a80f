package extract

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gyeh/medstats/internal/model"
	"github.com/gyeh/medstats/internal/normalize"
)

// CSVReader streams RawRecords from a headered CSV extract.
type CSVReader struct {
	file    *os.File
	csv     *csv.Reader
	headers []string
	rowNum  int64
}

// OpenCSV opens the file, reads the header row, and canonicalizes the column
// names. Missing canonical columns are an error up front rather than a
// per-row surprise.
func OpenCSV(path string) (*CSVReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	cr := csv.NewReader(bufio.NewReaderSize(f, 256*1024))
	cr.FieldsPerRecord = -1 // ragged rows are the normalizer's problem, not a read error

	rawHeader, err := cr.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	headers := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		headers[i] = normalize.CanonicalHeader(h)
	}

	if err := validateHeaders(headers); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVReader{file: f, csv: cr, headers: headers}, nil
}

// validateHeaders checks that every canonical extract column is present.
func validateHeaders(headers []string) error {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[h] = true
	}
	var missing []string
	for _, col := range model.RawColumns {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	if missing != nil {
		return fmt.Errorf("extract missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Read fills rows with up to len(rows) records.
func (r *CSVReader) Read(rows []model.RawRecord) (int, error) {
	for i := range rows {
		fields, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return i, io.EOF
			}
			return i, fmt.Errorf("read csv row %d: %w", r.rowNum+1, err)
		}
		r.rowNum++

		rec := make(model.RawRecord, len(r.headers))
		for j, h := range r.headers {
			if j < len(fields) {
				rec[h] = fields[j]
			}
		}
		rows[i] = rec
	}
	return len(rows), nil
}

// RowNum returns the number of data rows read so far.
func (r *CSVReader) RowNum() int64 { return r.rowNum }

func (r *CSVReader) Format() string { return "csv" }

func (r *CSVReader) Close() error { return r.file.Close() }

func isEOF(err error) bool { return errors.Is(err, io.EOF) }
