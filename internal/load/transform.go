package load

import (
	"github.com/rs/zerolog"

	"github.com/gyeh/medstats/internal/model"
	"github.com/gyeh/medstats/internal/normalize"
	"github.com/gyeh/medstats/internal/validate"
)

// Transform normalizes every raw row and keeps the ones the validator admits.
// Rejections are accumulated on the summary as values; rows dropped for a
// missing critical field are silent apart from the count, while date
// rejections are logged with the offending customer_id.
func Transform(log zerolog.Logger, raws []model.RawRecord, summary *model.LoadSummary) []model.Fact {
	facts := make([]model.Fact, 0, len(raws))

	for i, raw := range raws {
		rowNum := int64(i + 1)
		rec := normalize.ToRecord(raw)

		fact, fail := validate.Admit(rec, rowNum)
		if fail != nil {
			summary.Failures = append(summary.Failures, *fail)
			switch fail.Reason {
			case model.FailureValidation:
				summary.RowsDropped++
			case model.FailureDate:
				summary.RowsDateRejected++
				log.Warn().
					Int64("customer_id", fail.CustomerID).
					Int64("row", fail.RowNumber).
					Str("detail", fail.Detail).
					Msg("row rejected: invalid admission date")
			}
			continue
		}

		if normalize.DigitRun(raw[model.ColChildren]) == nil {
			summary.ChildrenDefaults++
		}
		facts = append(facts, *fact)
	}

	return facts
}
