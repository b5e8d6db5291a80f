// Package validate decides which normalized records become persistable facts.
package validate

import (
	"fmt"
	"time"

	"github.com/gyeh/medstats/internal/model"
)

// criticalFields names the fields whose absence drops the entire row.
// children is deliberately absent: it defaults instead of dropping.
var criticalFields = []string{
	model.ColCustomerID,
	model.ColYear,
	model.ColMonth,
	model.ColDate,
	model.ColCharges,
	model.ColHospitalTier,
	model.ColCityTier,
	model.ColStateID,
}

// CriticalFields returns the field names checked by Admit, in extract order.
func CriticalFields() []string {
	return criticalFields
}

// MissingCritical returns the names of critical fields that carry the
// unparsable sentinel, or nil when the record is complete.
func MissingCritical(rec *model.Record) []string {
	var missing []string
	check := func(name string, absent bool) {
		if absent {
			missing = append(missing, name)
		}
	}
	check(model.ColCustomerID, rec.CustomerID == nil)
	check(model.ColYear, rec.Year == nil)
	check(model.ColMonth, rec.Month == nil)
	check(model.ColDate, rec.Day == nil)
	check(model.ColCharges, rec.Charges == nil)
	check(model.ColHospitalTier, rec.HospitalTier == nil)
	check(model.ColCityTier, rec.CityTier == nil)
	check(model.ColStateID, rec.StateID == nil)
	return missing
}

// AdmissionDate builds a calendar date from year/month/day components.
// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2), so the
// result is checked against the inputs and rejected on any drift.
func AdmissionDate(year, month, day int64) (time.Time, error) {
	t := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	if int64(t.Year()) != year || int64(t.Month()) != month || int64(t.Day()) != day {
		return time.Time{}, fmt.Errorf("no such calendar date: %d-%02d-%02d", year, month, day)
	}
	return t, nil
}

// Admit decides whether a normalized record becomes a Fact. It returns the
// typed fact, or a RowFailure describing why the row was excluded. Failures
// are values, never errors: a rejected row must not interrupt the batch.
func Admit(rec *model.Record, rowNum int64) (*model.Fact, *model.RowFailure) {
	if missing := MissingCritical(rec); missing != nil {
		f := &model.RowFailure{
			Reason:    model.FailureValidation,
			RowNumber: rowNum,
			Detail:    fmt.Sprintf("missing critical fields: %v", missing),
		}
		if rec.CustomerID != nil {
			f.CustomerID = *rec.CustomerID
		}
		return nil, f
	}

	date, err := AdmissionDate(*rec.Year, *rec.Month, *rec.Day)
	if err != nil {
		return nil, &model.RowFailure{
			Reason:     model.FailureDate,
			RowNumber:  rowNum,
			CustomerID: *rec.CustomerID,
			Detail:     err.Error(),
		}
	}

	return &model.Fact{
		CustomerID:    *rec.CustomerID,
		AdmissionDate: date,
		Children:      rec.Children,
		Charges:       *rec.Charges,
		HospitalTier:  *rec.HospitalTier,
		CityTier:      *rec.CityTier,
		StateID:       *rec.StateID,
	}, nil
}
