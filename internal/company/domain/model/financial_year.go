package model

import "time"

// FinancialYear is one fiscal-year record of a company. Dates are stored as
// structured values; presentation formatting happens at the HTTP layer.
type FinancialYear struct {
	CompanyName string    `json:"company_name" bson:"company_name"`
	YearNo      int       `json:"year_no" bson:"year_no"`
	StartOfYear time.Time `json:"start_of_year" bson:"start_of_year"`
	EndOfYear   time.Time `json:"end_of_year" bson:"end_of_year"`
	FY          string    `json:"fy" bson:"fy"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
