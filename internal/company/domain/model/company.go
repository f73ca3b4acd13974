package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company represents a registered company with its embedded financial years.
// Financial years live inside the company document so that reads and appends
// operate on the same storage.
type Company struct {
	ID             string             `json:"id" bson:"-"`
	ObjectID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	CoaType        string             `json:"coa_type" bson:"coa_type"`
	Logo           string             `json:"logo" bson:"logo"`
	FinancialYears []FinancialYear    `json:"financial_years" bson:"financial_years"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
