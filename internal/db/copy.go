package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/medstats/internal/model"
)

// NamesSource returns a CopyFromSource over the fixed customer_names batch.
func NamesSource(rows []model.CustomerName) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		return rows[i].CopyValues(), nil
	})
}

// ExamsSource returns a CopyFromSource over the fixed medical_examinations batch.
func ExamsSource(rows []model.MedicalExamination) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		return rows[i].CopyValues(), nil
	})
}
