package http

import (
	"errors"
	"net/url"
	"time"

	"fincore/internal/company/domain/model"
	"fincore/internal/company/usecase"
	apperrors "fincore/internal/shared/errors"
	"fincore/internal/shared/logger"
	"fincore/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// presentationDateLayout renders calendar dates as DD/MM/YYYY in responses.
// Storage keeps the structured value; only the wire format is lossy.
const presentationDateLayout = "02/01/2006"

// requestDateLayout is the ISO calendar date accepted in requests.
const requestDateLayout = "2006-01-02"

// CompanyHTTPHandler handles HTTP requests for companies and financial years
type CompanyHTTPHandler struct {
	usecase usecase.CompanyUsecaseInterface
	log     logger.Logger
}

// NewCompanyHTTPHandler creates a new company HTTP handler
func NewCompanyHTTPHandler(uc usecase.CompanyUsecaseInterface, log logger.Logger) *CompanyHTTPHandler {
	if log == nil {
		log = logger.NewLogger()
	}
	return &CompanyHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("company_http"),
	}
}

// SetupCompanyRoutes sets up company and financial-year routes
func (h *CompanyHTTPHandler) SetupCompanyRoutes(router fiber.Router) {
	router.Get("/companies", h.ListCompanies)
	router.Post("/companies", h.CreateCompany)
	router.Post("/financial-years", h.AddFinancialYear)
	router.Get("/financial-years/:company_name", h.ListFinancialYears)
}

// financialYearResponse is the wire form of a financial year
type financialYearResponse struct {
	CompanyName string `json:"company_name"`
	YearNo      int    `json:"year_no"`
	StartOfYear string `json:"start_of_year"`
	EndOfYear   string `json:"end_of_year"`
	FY          string `json:"fy"`
}

// companyResponse is the wire form of a company
type companyResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	CoaType        string                  `json:"coa_type"`
	Logo           string                  `json:"logo"`
	FinancialYears []financialYearResponse `json:"financial_years"`
}

func toFinancialYearResponse(year model.FinancialYear) financialYearResponse {
	return financialYearResponse{
		CompanyName: year.CompanyName,
		YearNo:      year.YearNo,
		StartOfYear: year.StartOfYear.Format(presentationDateLayout),
		EndOfYear:   year.EndOfYear.Format(presentationDateLayout),
		FY:          year.FY,
	}
}

func toCompanyResponse(company *model.Company) companyResponse {
	years := make([]financialYearResponse, 0, len(company.FinancialYears))
	for _, year := range company.FinancialYears {
		years = append(years, toFinancialYearResponse(year))
	}
	return companyResponse{
		ID:             company.ID,
		Name:           company.Name,
		CoaType:        company.CoaType,
		Logo:           company.Logo,
		FinancialYears: years,
	}
}

// ListCompanies handles listing every company
func (h *CompanyHTTPHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.usecase.ListCompanies(c.Context())
	if err != nil {
		h.log.WithContext(c.Context()).Errorf("listing companies failed: %v", err)
		appErr := apperrors.WrapError(err, "failed to list companies").WithComponent("company_http")
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	response := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		response = append(response, toCompanyResponse(company))
	}

	return c.JSON(response)
}

// CreateCompany handles company creation from a multipart form with a logo file
func (h *CompanyHTTPHandler) CreateCompany(c *fiber.Ctx) error {
	name := c.FormValue("name")
	coaType := c.FormValue("coa_type")
	if name == "" || coaType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and coa_type are required",
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "logo file is required",
		})
	}

	logo, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read logo file",
		})
	}
	defer logo.Close()

	ctx := utils.WithCompanyName(c.Context(), name)
	company, err := h.usecase.CreateCompany(ctx, usecase.CreateCompanyRequest{
		Name:         name,
		CoaType:      coaType,
		Logo:         logo,
		LogoFilename: fileHeader.Filename,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCompanyNameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Company name already exists",
			})
		case errors.Is(err, usecase.ErrExtensionNotAllowed):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Logo file type is not allowed",
			})
		default:
			h.log.WithContext(ctx).Errorf("company creation failed: %v", err)
			appErr := apperrors.WrapError(err, "failed to create company").WithComponent("company_http")
			return c.Status(appErr.HTTPCode).JSON(fiber.Map{
				"error": appErr.Message,
			})
		}
	}

	return c.JSON(toCompanyResponse(company))
}

// addFinancialYearRequest is the wire form of a financial-year append.
// YearNo is accepted but recomputed server-side.
type addFinancialYearRequest struct {
	CompanyName string `json:"company_name"`
	StartOfYear string `json:"start_of_year"`
	EndOfYear   string `json:"end_of_year"`
	YearNo      int    `json:"year_no"`
	FY          string `json:"fy"`
}

// AddFinancialYear handles appending a fiscal year to a company
func (h *CompanyHTTPHandler) AddFinancialYear(c *fiber.Ctx) error {
	var req addFinancialYearRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company_name is required",
		})
	}

	startOfYear, err := time.Parse(requestDateLayout, req.StartOfYear)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "start_of_year must be a YYYY-MM-DD date",
		})
	}
	endOfYear, err := time.Parse(requestDateLayout, req.EndOfYear)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end_of_year must be a YYYY-MM-DD date",
		})
	}

	ctx := utils.WithCompanyName(c.Context(), req.CompanyName)
	if _, err := h.usecase.AddFinancialYear(ctx, usecase.AddFinancialYearRequest{
		CompanyName: req.CompanyName,
		StartOfYear: startOfYear,
		EndOfYear:   endOfYear,
		YearNo:      req.YearNo,
		FY:          req.FY,
	}); err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Company not found",
			})
		}
		h.log.WithContext(ctx).Errorf("adding financial year failed: %v", err)
		appErr := apperrors.WrapError(err, "failed to add financial year").WithComponent("company_http")
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Financial year added successfully",
	})
}

// ListFinancialYears handles listing a company's fiscal years
func (h *CompanyHTTPHandler) ListFinancialYears(c *fiber.Ctx) error {
	companyName := c.Params("company_name")
	if decoded, err := url.PathUnescape(companyName); err == nil {
		companyName = decoded
	}
	if companyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company_name is required",
		})
	}

	ctx := utils.WithCompanyName(c.Context(), companyName)
	years, err := h.usecase.ListFinancialYears(ctx, companyName)
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Company not found",
			})
		}
		h.log.WithContext(ctx).Errorf("listing financial years failed: %v", err)
		appErr := apperrors.WrapError(err, "failed to list financial years").WithComponent("company_http")
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	response := make([]financialYearResponse, 0, len(years))
	for _, year := range years {
		response = append(response, toFinancialYearResponse(year))
	}

	return c.JSON(response)
}
