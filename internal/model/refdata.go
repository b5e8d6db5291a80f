package model

// CustomerName maps a customer to their display name. Fixed reference data,
// not derived from the raw extract.
type CustomerName struct {
	CustomerID int64
	Name       string
}

// MedicalExamination holds the fixed examination record for a customer.
// The yes/no fields are stored as lowercase text, matching the source data.
type MedicalExamination struct {
	CustomerID             int64
	BMI                    float64
	Smoker                 string
	AnyTransplant          string
	CancerHistory          string
	NumberOfMajorSurgeries int64
	HealthIssues           string
}

// CustomerNames is the fixed reference batch inserted verbatim on each run.
var CustomerNames = []CustomerName{
	{CustomerID: 2323, Name: "Amit Kumar"},
	{CustomerID: 2322, Name: "Neha Sharma"},
	{CustomerID: 2321, Name: "Ravi Yadav"},
	{CustomerID: 2320, Name: "Rina Gupta"},
	{CustomerID: 2319, Name: "Saurabh Singh"},
}

// MedicalExaminations matches CustomerNames key-for-key.
var MedicalExaminations = []MedicalExamination{
	{CustomerID: 2323, BMI: 36.5, Smoker: "yes", AnyTransplant: "no", CancerHistory: "no", NumberOfMajorSurgeries: 1, HealthIssues: "yes"},
	{CustomerID: 2322, BMI: 29.2, Smoker: "no", AnyTransplant: "no", CancerHistory: "yes", NumberOfMajorSurgeries: 0, HealthIssues: "no"},
	{CustomerID: 2321, BMI: 41.0, Smoker: "yes", AnyTransplant: "yes", CancerHistory: "no", NumberOfMajorSurgeries: 2, HealthIssues: "yes"},
	{CustomerID: 2320, BMI: 38.4, Smoker: "no", AnyTransplant: "no", CancerHistory: "yes", NumberOfMajorSurgeries: 1, HealthIssues: "yes"},
	{CustomerID: 2319, BMI: 27.3, Smoker: "yes", AnyTransplant: "no", CancerHistory: "no", NumberOfMajorSurgeries: 0, HealthIssues: "no"},
}

// NameColumns returns the ordered column names for COPY into customer_names.
func NameColumns() []string {
	return []string{"customer_id", "name"}
}

// CopyValues returns the row values in the same order as NameColumns().
func (c *CustomerName) CopyValues() []any {
	return []any{c.CustomerID, c.Name}
}

// ExamColumns returns the ordered column names for COPY into
// medical_examinations.
func ExamColumns() []string {
	return []string{
		"customer_id",
		"bmi",
		"smoker",
		"any_transplant",
		"cancer_history",
		"numberofmajorsurgeries",
		"health_issues",
	}
}

// CopyValues returns the row values in the same order as ExamColumns().
func (m *MedicalExamination) CopyValues() []any {
	return []any{
		m.CustomerID,
		m.BMI,
		m.Smoker,
		m.AnyTransplant,
		m.CancerHistory,
		m.NumberOfMajorSurgeries,
		m.HealthIssues,
	}
}
