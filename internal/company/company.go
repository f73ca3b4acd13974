package company

import (
	"fmt"

	companyhttp "fincore/internal/company/adapter/http"
	"fincore/internal/company/adapter/persistence/mongodb"
	"fincore/internal/company/adapter/storage"
	"fincore/internal/company/config"
	"fincore/internal/company/domain/repository"
	"fincore/internal/company/usecase"
	"fincore/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CompanyModule represents the complete company and financial-year module
type CompanyModule struct {
	repository repository.CompanyRepository
	assets     repository.AssetStore
	usecase    usecase.CompanyUsecaseInterface
	handler    *companyhttp.CompanyHTTPHandler
	config     *config.Config
}

// NewCompanyModule creates a new company module instance
func NewCompanyModule(db *mongo.Database, cfg *config.Config, zapLog *zap.Logger, log logger.Logger) (*CompanyModule, error) {
	companyRepo, err := mongodb.NewMongoCompanyRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create company repository: %w", err)
	}

	assetStore, err := storage.NewLocalAssetStore(cfg.UploadDir, cfg.AllowedLogoExtensions)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset store: %w", err)
	}

	companyUsecase := usecase.NewCompanyUsecase(companyRepo, assetStore, zapLog)
	handler := companyhttp.NewCompanyHTTPHandler(companyUsecase, log)

	return &CompanyModule{
		repository: companyRepo,
		assets:     assetStore,
		usecase:    companyUsecase,
		handler:    handler,
		config:     cfg,
	}, nil
}

// RegisterRoutes registers company routes with the provided router
func (cm *CompanyModule) RegisterRoutes(router fiber.Router) {
	cm.handler.SetupCompanyRoutes(router)
}

// GetUsecase returns the company usecase for external access
func (cm *CompanyModule) GetUsecase() usecase.CompanyUsecaseInterface {
	return cm.usecase
}

// Stop performs cleanup when the module is shut down
func (cm *CompanyModule) Stop() error {
	return nil
}
