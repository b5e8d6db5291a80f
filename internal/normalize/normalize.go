package normalize

import (
	"github.com/gyeh/medstats/internal/model"
)

// ToRecord runs every field of a RawRecord through its coercion rule and
// returns the normalized result. Fields that fail to coerce carry the nil
// sentinel; no rule raises, so ToRecord always returns a Record. Admissibility
// is decided later by the validator.
func ToRecord(raw model.RawRecord) *model.Record {
	return &model.Record{
		CustomerID:   DigitRun(raw[model.ColCustomerID]),
		Year:         Int(raw[model.ColYear]),
		Month:        Month(raw[model.ColMonth]),
		Day:          Int(raw[model.ColDate]),
		Children:     Children(raw[model.ColChildren]),
		Charges:      Charges(raw[model.ColCharges]),
		HospitalTier: DigitRun(raw[model.ColHospitalTier]),
		CityTier:     DigitRun(raw[model.ColCityTier]),
		StateID:      DigitRun(raw[model.ColStateID]),
	}
}
