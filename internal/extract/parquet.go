package extract

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/medstats/internal/model"
)

// ParquetReader streams RawRecords from an all-text Parquet export of the
// extract.
type ParquetReader struct {
	file   *os.File
	reader *parquet.GenericReader[model.RawRow]
}

// OpenParquet opens a Parquet file and returns a streaming reader.
func OpenParquet(path string) (*ParquetReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.RawRow](pf)
	return &ParquetReader{file: f, reader: r}, nil
}

// NumRows returns the total number of rows in the Parquet file metadata.
func (r *ParquetReader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read fills rows with up to len(rows) records.
func (r *ParquetReader) Read(rows []model.RawRecord) (int, error) {
	buf := make([]model.RawRow, len(rows))
	n, err := r.reader.Read(buf)
	for i := 0; i < n; i++ {
		rows[i] = buf[i].ToRawRecord()
	}
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

func (r *ParquetReader) Format() string { return "parquet" }

// Close releases all resources.
func (r *ParquetReader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
