package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"fincore/internal/company/domain/model"
	"fincore/internal/company/domain/repository"

	"go.uber.org/zap"
)

var (
	ErrCompanyNameTaken    = errors.New("company name already exists")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrExtensionNotAllowed = errors.New("logo file extension is not allowed")
)

// CompanyUsecaseInterface defines the contract for company and financial-year
// use cases.
type CompanyUsecaseInterface interface {
	ListCompanies(ctx context.Context) ([]*model.Company, error)
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (*model.Company, error)
	AddFinancialYear(ctx context.Context, req AddFinancialYearRequest) (*model.FinancialYear, error)
	ListFinancialYears(ctx context.Context, companyName string) ([]model.FinancialYear, error)
}

// CreateCompanyRequest carries the fields of a company-creation call. Logo is
// the uploaded file's content; LogoFilename its client-supplied original name,
// used only for the extension.
type CreateCompanyRequest struct {
	Name         string
	CoaType      string
	Logo         io.Reader
	LogoFilename string
}

// AddFinancialYearRequest carries the fields of a financial-year append.
// YearNo is accepted for wire compatibility but always recomputed server-side
// from the company's current number of years.
type AddFinancialYearRequest struct {
	CompanyName string
	StartOfYear time.Time
	EndOfYear   time.Time
	YearNo      int
	FY          string
}

// CompanyUsecase implements the company registry and financial-year ledger.
type CompanyUsecase struct {
	repo   repository.CompanyRepository
	assets repository.AssetStore
	log    *zap.Logger
}

// NewCompanyUsecase creates a new instance of CompanyUsecase.
func NewCompanyUsecase(repo repository.CompanyRepository, assets repository.AssetStore, log *zap.Logger) *CompanyUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompanyUsecase{
		repo:   repo,
		assets: assets,
		log:    log,
	}
}

// ListCompanies returns every company record.
func (uc *CompanyUsecase) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	companies, err := uc.repo.ListCompanies(ctx)
	if err != nil {
		uc.log.Error("failed to list companies", zap.Error(err))
		return nil, err
	}
	return companies, nil
}

// CreateCompany stores the uploaded logo and persists a new company record.
// The name is checked before the logo is written so a rejected create leaves
// no orphaned file; the unique index on name remains the authoritative guard.
func (uc *CompanyUsecase) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*model.Company, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("company name is required")
	}

	if _, err := uc.repo.GetCompanyByName(ctx, req.Name); err == nil {
		return nil, ErrCompanyNameTaken
	} else if !errors.Is(err, ErrCompanyNotFound) {
		return nil, err
	}

	logoFilename, err := uc.assets.Store(ctx, req.Logo, req.LogoFilename)
	if err != nil {
		uc.log.Error("failed to store company logo",
			zap.String("company", req.Name),
			zap.String("original_filename", req.LogoFilename),
			zap.Error(err))
		return nil, err
	}

	company := &model.Company{
		Name:           req.Name,
		CoaType:        req.CoaType,
		Logo:           logoFilename,
		FinancialYears: []model.FinancialYear{},
	}

	if err := uc.repo.CreateCompany(ctx, company); err != nil {
		// The logo written above is left on disk; there is no compensating
		// cleanup for a failed insert.
		uc.log.Error("failed to create company",
			zap.String("company", req.Name),
			zap.String("logo", logoFilename),
			zap.Error(err))
		return nil, err
	}

	uc.log.Info("company created",
		zap.String("company", company.Name),
		zap.String("logo", company.Logo))

	return company, nil
}

// AddFinancialYear appends a fiscal-year record to the named company.
// The year number is one past the company's current count. It is read just
// before the atomic append, so two concurrent appends to the same company may
// compute the same number.
func (uc *CompanyUsecase) AddFinancialYear(ctx context.Context, req AddFinancialYearRequest) (*model.FinancialYear, error) {
	company, err := uc.repo.GetCompanyByName(ctx, req.CompanyName)
	if err != nil {
		return nil, err
	}

	year := model.FinancialYear{
		CompanyName: company.Name,
		YearNo:      len(company.FinancialYears) + 1,
		StartOfYear: req.StartOfYear,
		EndOfYear:   req.EndOfYear,
		FY:          req.FY,
		CreatedAt:   time.Now(),
	}

	if err := uc.repo.AppendFinancialYear(ctx, company.Name, year); err != nil {
		uc.log.Error("failed to append financial year",
			zap.String("company", company.Name),
			zap.Int("year_no", year.YearNo),
			zap.Error(err))
		return nil, err
	}

	uc.log.Info("financial year added",
		zap.String("company", company.Name),
		zap.Int("year_no", year.YearNo),
		zap.String("fy", year.FY))

	return &year, nil
}

// ListFinancialYears returns the named company's fiscal years in append order.
// A company with no years yields an empty slice, not an error.
func (uc *CompanyUsecase) ListFinancialYears(ctx context.Context, companyName string) ([]model.FinancialYear, error) {
	company, err := uc.repo.GetCompanyByName(ctx, companyName)
	if err != nil {
		return nil, err
	}

	if company.FinancialYears == nil {
		return []model.FinancialYear{}, nil
	}
	return company.FinancialYears, nil
}
