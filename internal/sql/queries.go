// Package sql holds the embedded DDL and analytical query texts.
package sql

import (
	"embed"
)

// DDL contains the destructive drop-and-recreate statements for the three
// target tables, applied in filename order.
//
//go:embed ddl
var DDL embed.FS

//go:embed queries/q01_first_rows.sql
var FirstRows string

//go:embed queries/q02_average_charges.sql
var AverageCharges string

//go:embed queries/q03_charges_over_700.sql
var ChargesOver700 string

//go:embed queries/q04_names_bmi_over_35.sql
var NamesBMIOver35 string

//go:embed queries/q05_major_surgeries.sql
var MajorSurgeries string

//go:embed queries/q06_avg_charges_by_tier_2000.sql
var AvgChargesByTier2000 string

//go:embed queries/q07_smokers_with_transplant.sql
var SmokersWithTransplant string

//go:embed queries/q08_cancer_or_surgeries.sql
var CancerOrSurgeries string

// CancerOrSurgeriesFolded is the case-insensitive variant of CancerOrSurgeries.
// The original comparison uses the capitalized literal 'Yes' against
// lowercase stored values; which behavior runs is a configuration choice.
//
//go:embed queries/q08_cancer_or_surgeries_ci.sql
var CancerOrSurgeriesFolded string

//go:embed queries/q09_max_surgeries.sql
var MaxSurgeries string

//go:embed queries/q10_city_tier_surgical.sql
var CityTierSurgical string

//go:embed queries/q11_avg_bmi_by_city_tier_1995.sql
var AvgBMIByCityTier1995 string

//go:embed queries/q12_health_issues_bmi_over_30.sql
var HealthIssuesBMIOver30 string

//go:embed queries/q13_max_charges_per_year.sql
var MaxChargesPerYear string

//go:embed queries/q14_top3_avg_yearly_charges.sql
var Top3AvgYearlyCharges string

//go:embed queries/q15_top10_total_charges_rank.sql
var Top10TotalChargesRank string

//go:embed queries/q16_mode_year.sql
var ModeYear string
