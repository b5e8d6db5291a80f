package model

import "time"

// Fact is a single admitted hospitalization event, typed for storage.
// All seven fields are non-null by construction; a Fact only exists for rows
// that passed validation and date construction.
type Fact struct {
	CustomerID    int64
	AdmissionDate time.Time
	Children      int64
	Charges       float64
	HospitalTier  int64
	CityTier      int64
	StateID       int64
}

// FactColumns returns the ordered column names for inserts into
// hospitalization_facts.
func FactColumns() []string {
	return []string{
		"customer_id",
		"admission_date",
		"children",
		"charges",
		"hospital_tier",
		"city_tier",
		"state_id",
	}
}

// InsertValues returns the fact values in the same order as FactColumns().
func (f *Fact) InsertValues() []any {
	return []any{
		f.CustomerID,
		f.AdmissionDate,
		f.Children,
		f.Charges,
		f.HospitalTier,
		f.CityTier,
		f.StateID,
	}
}
