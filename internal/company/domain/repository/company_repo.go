package repository

import (
	"context"
	"io"

	"fincore/internal/company/domain/model"
)

// CompanyRepository defines the persistence contract for company records and
// their embedded financial years.
type CompanyRepository interface {
	// CreateCompany persists a new company. The underlying store enforces
	// name uniqueness; a duplicate name surfaces as usecase.ErrCompanyNameTaken.
	CreateCompany(ctx context.Context, company *model.Company) error

	// GetCompanyByName retrieves a company by name, returning
	// usecase.ErrCompanyNotFound when no company with that name exists.
	GetCompanyByName(ctx context.Context, name string) (*model.Company, error)

	// ListCompanies returns every company record.
	ListCompanies(ctx context.Context) ([]*model.Company, error)

	// AppendFinancialYear atomically appends a financial year to the named
	// company's embedded array, returning usecase.ErrCompanyNotFound when the
	// company is absent.
	AppendFinancialYear(ctx context.Context, companyName string, year model.FinancialYear) error
}

// AssetStore defines the contract for durable storage of uploaded binary
// assets. Stored assets are never overwritten or deleted.
type AssetStore interface {
	// Store writes the content under a collision-resistant name derived from
	// a fresh unique identifier plus the original filename's extension, and
	// returns the stored filename.
	Store(ctx context.Context, content io.Reader, originalFilename string) (string, error)
}
