package model

// RawRecord is one row of the raw extract: canonical column name -> raw text.
// Column names are canonicalized by normalize.CanonicalHeader before the record
// is built, so lookups here always use the lowercase_underscore form.
type RawRecord map[string]string

// Canonical raw extract column names. "date" is renamed to "day" after
// coercion; RawRecord still carries it under ColDate.
const (
	ColCustomerID   = "customer_id"
	ColYear         = "year"
	ColMonth        = "month"
	ColDate         = "date"
	ColChildren     = "children"
	ColCharges      = "charges"
	ColHospitalTier = "hospital_tier"
	ColCityTier     = "city_tier"
	ColStateID      = "state_id"
)

// RawColumns lists the canonical extract columns in source order.
var RawColumns = []string{
	ColCustomerID,
	ColYear,
	ColMonth,
	ColDate,
	ColChildren,
	ColCharges,
	ColHospitalTier,
	ColCityTier,
	ColStateID,
}

// Record is the normalized form of a RawRecord. Nil means the field did not
// parse (the unparsable sentinel); Children is the one field that defaults
// instead of failing, so it is never nil-like.
type Record struct {
	CustomerID   *int64
	Year         *int64
	Month        *int64
	Day          *int64
	Children     int64
	Charges      *float64
	HospitalTier *int64
	CityTier     *int64
	StateID      *int64
}

// RawRow mirrors an extract exported as Parquet: every column is kept as raw
// text so the same normalization path applies to both input formats.
type RawRow struct {
	CustomerID   string `parquet:"customer_id,optional"`
	Year         string `parquet:"year,optional"`
	Month        string `parquet:"month,optional"`
	Date         string `parquet:"date,optional"`
	Children     string `parquet:"children,optional"`
	Charges      string `parquet:"charges,optional"`
	HospitalTier string `parquet:"hospital_tier,optional"`
	CityTier     string `parquet:"city_tier,optional"`
	StateID      string `parquet:"state_id,optional"`
}

// ToRawRecord converts a Parquet-read RawRow into the map form the
// normalizer consumes.
func (r *RawRow) ToRawRecord() RawRecord {
	return RawRecord{
		ColCustomerID:   r.CustomerID,
		ColYear:         r.Year,
		ColMonth:        r.Month,
		ColDate:         r.Date,
		ColChildren:     r.Children,
		ColCharges:      r.Charges,
		ColHospitalTier: r.HospitalTier,
		ColCityTier:     r.CityTier,
		ColStateID:      r.StateID,
	}
}
