package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"fincore/internal/company/domain/model"
	"fincore/internal/company/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Mock repository
type mockCompanyRepository struct {
	mock.Mock
}

func (m *mockCompanyRepository) CreateCompany(ctx context.Context, company *model.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *mockCompanyRepository) GetCompanyByName(ctx context.Context, name string) (*model.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *mockCompanyRepository) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Company), args.Error(1)
}

func (m *mockCompanyRepository) AppendFinancialYear(ctx context.Context, companyName string, year model.FinancialYear) error {
	args := m.Called(ctx, companyName, year)
	return args.Error(0)
}

// Mock asset store
type mockAssetStore struct {
	mock.Mock
}

func (m *mockAssetStore) Store(ctx context.Context, content io.Reader, originalFilename string) (string, error) {
	args := m.Called(ctx, content, originalFilename)
	return args.String(0), args.Error(1)
}

type CompanyUsecaseTestSuite struct {
	suite.Suite
	mockRepo   *mockCompanyRepository
	mockAssets *mockAssetStore
	usecase    *usecase.CompanyUsecase
}

func (suite *CompanyUsecaseTestSuite) SetupTest() {
	suite.mockRepo = &mockCompanyRepository{}
	suite.mockAssets = &mockAssetStore{}
	suite.usecase = usecase.NewCompanyUsecase(suite.mockRepo, suite.mockAssets, nil)
}

func (suite *CompanyUsecaseTestSuite) TestCreateCompany_Success() {
	ctx := context.Background()
	logo := strings.NewReader("png bytes")

	suite.mockRepo.On("GetCompanyByName", ctx, "Acme").Return(nil, usecase.ErrCompanyNotFound)
	suite.mockAssets.On("Store", ctx, logo, "logo.png").Return("generated-id.png", nil)
	suite.mockRepo.On("CreateCompany", ctx, mock.MatchedBy(func(company *model.Company) bool {
		return company.Name == "Acme" &&
			company.CoaType == "standard" &&
			company.Logo == "generated-id.png" &&
			company.FinancialYears != nil && len(company.FinancialYears) == 0
	})).Return(nil)

	company, err := suite.usecase.CreateCompany(ctx, usecase.CreateCompanyRequest{
		Name:         "Acme",
		CoaType:      "standard",
		Logo:         logo,
		LogoFilename: "logo.png",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme", company.Name)
	assert.Equal(suite.T(), "generated-id.png", company.Logo)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAssets.AssertExpectations(suite.T())
}

func (suite *CompanyUsecaseTestSuite) TestCreateCompany_DuplicateName() {
	ctx := context.Background()
	existing := &model.Company{Name: "Acme"}

	suite.mockRepo.On("GetCompanyByName", ctx, "Acme").Return(existing, nil)

	company, err := suite.usecase.CreateCompany(ctx, usecase.CreateCompanyRequest{
		Name:         "Acme",
		CoaType:      "standard",
		Logo:         strings.NewReader("png bytes"),
		LogoFilename: "logo.png",
	})

	assert.Nil(suite.T(), company)
	assert.ErrorIs(suite.T(), err, usecase.ErrCompanyNameTaken)
	// The duplicate is rejected before the file is written, so no orphaned
	// asset is left behind.
	suite.mockAssets.AssertNotCalled(suite.T(), "Store", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyUsecaseTestSuite) TestCreateCompany_MissingName() {
	company, err := suite.usecase.CreateCompany(context.Background(), usecase.CreateCompanyRequest{
		CoaType:      "standard",
		Logo:         strings.NewReader("png bytes"),
		LogoFilename: "logo.png",
	})

	assert.Nil(suite.T(), company)
	assert.Error(suite.T(), err)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetCompanyByName", mock.Anything, mock.Anything)
}

func (suite *CompanyUsecaseTestSuite) TestListCompanies() {
	ctx := context.Background()
	companies := []*model.Company{
		{ID: "1", Name: "Acme"},
		{ID: "2", Name: "Globex"},
	}
	suite.mockRepo.On("ListCompanies", ctx).Return(companies, nil)

	got, err := suite.usecase.ListCompanies(ctx)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *CompanyUsecaseTestSuite) TestAddFinancialYear_FirstYear() {
	ctx := context.Background()
	company := &model.Company{Name: "Acme", FinancialYears: []model.FinancialYear{}}
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetCompanyByName", ctx, "Acme").Return(company, nil)
	suite.mockRepo.On("AppendFinancialYear", ctx, "Acme", mock.MatchedBy(func(year model.FinancialYear) bool {
		return year.YearNo == 1 && year.CompanyName == "Acme" &&
			year.StartOfYear.Equal(start) && year.EndOfYear.Equal(end) && year.FY == "FY24-25"
	})).Return(nil)

	year, err := suite.usecase.AddFinancialYear(ctx, usecase.AddFinancialYearRequest{
		CompanyName: "Acme",
		StartOfYear: start,
		EndOfYear:   end,
		FY:          "FY24-25",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, year.YearNo)
}

func (suite *CompanyUsecaseTestSuite) TestAddFinancialYear_SecondYear() {
	ctx := context.Background()
	company := &model.Company{
		Name:           "Acme",
		FinancialYears: []model.FinancialYear{{CompanyName: "Acme", YearNo: 1}},
	}

	suite.mockRepo.On("GetCompanyByName", ctx, "Acme").Return(company, nil)
	suite.mockRepo.On("AppendFinancialYear", ctx, "Acme", mock.MatchedBy(func(year model.FinancialYear) bool {
		return year.YearNo == 2
	})).Return(nil)

	year, err := suite.usecase.AddFinancialYear(ctx, usecase.AddFinancialYearRequest{
		CompanyName: "Acme",
		StartOfYear: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndOfYear:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		FY:          "FY25-26",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, year.YearNo)
}

func (suite *CompanyUsecaseTestSuite) TestAddFinancialYear_ClientYearNoIgnored() {
	ctx := context.Background()
	company := &model.Company{Name: "Acme", FinancialYears: []model.FinancialYear{}}

	suite.mockRepo.On("GetCompanyByName", ctx, "Acme").Return(company, nil)
	suite.mockRepo.On("AppendFinancialYear", ctx, "Acme", mock.MatchedBy(func(year model.FinancialYear) bool {
		return year.YearNo == 1
	})).Return(nil)

	year, err := suite.usecase.AddFinancialYear(ctx, usecase.AddFinancialYearRequest{
		CompanyName: "Acme",
		StartOfYear: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndOfYear:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		YearNo:      42,
		FY:          "FY24-25",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, year.YearNo)
}

func (suite *CompanyUsecaseTestSuite) TestAddFinancialYear_CompanyNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("GetCompanyByName", ctx, "Ghost Corp").Return(nil, usecase.ErrCompanyNotFound)

	year, err := suite.usecase.AddFinancialYear(ctx, usecase.AddFinancialYearRequest{
		CompanyName: "Ghost Corp",
		StartOfYear: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndOfYear:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		FY:          "FY24-25",
	})

	assert.Nil(suite.T(), year)
	assert.ErrorIs(suite.T(), err, usecase.ErrCompanyNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendFinancialYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyUsecaseTestSuite) TestListFinancialYears_Empty() {
	ctx := context.Background()
	company := &model.Company{Name: "Acme", FinancialYears: nil}
	suite.mockRepo.On("GetCompanyByName", ctx, "Acme").Return(company, nil)

	years, err := suite.usecase.ListFinancialYears(ctx, "Acme")

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), years)
	assert.Empty(suite.T(), years)
}

func (suite *CompanyUsecaseTestSuite) TestListFinancialYears_CompanyNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("GetCompanyByName", ctx, "Ghost Corp").Return(nil, usecase.ErrCompanyNotFound)

	years, err := suite.usecase.ListFinancialYears(ctx, "Ghost Corp")

	assert.Nil(suite.T(), years)
	assert.ErrorIs(suite.T(), err, usecase.ErrCompanyNotFound)
}

func TestCompanyUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyUsecaseTestSuite))
}
