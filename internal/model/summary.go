package model

import "time"

// FailureReason tags a recovered per-row failure.
type FailureReason string

const (
	// FailureValidation - a critical field normalized to the unparsable sentinel.
	FailureValidation FailureReason = "validation"
	// FailureDate - year/month/day do not form a real calendar date.
	FailureDate FailureReason = "date"
	// FailureInsert - the storage backend rejected the row.
	FailureInsert FailureReason = "insert"
)

// RowFailure records one recovered per-row failure. CustomerID is zero when
// the customer_id itself failed to parse.
type RowFailure struct {
	Reason     FailureReason
	RowNumber  int64
	CustomerID int64
	Detail     string
}

// LoadSummary captures metrics from a single pipeline run.
type LoadSummary struct {
	RunID            string
	SourcePath       string
	RowsRead         int64
	RowsDropped      int64 // critical field missing after normalization
	RowsDateRejected int64
	RowsInserted     int64
	InsertFailures   int64
	ChildrenDefaults int64 // rows persisted with the children=0 default
	NamesLoaded      int64
	ExamsLoaded      int64
	Failures         []RowFailure
	DurationExtract  time.Duration
	DurationLoad     time.Duration
	DurationTotal    time.Duration
}

// Attempted returns the number of rows that survived validation and were
// handed to the loader.
func (s *LoadSummary) Attempted() int64 {
	return s.RowsInserted + s.InsertFailures
}
