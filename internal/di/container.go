package di

import (
	"context"
	"fmt"
	"sync"

	"fincore/internal/auth"
	authconfig "fincore/internal/auth/config"
	"fincore/internal/company"
	companyconfig "fincore/internal/company/config"
	"fincore/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container represents a dependency injection container with proper lifecycle management
type Container struct {
	mu sync.RWMutex
	// Module instances
	AuthModule    *auth.AuthModule
	CompanyModule *company.CompanyModule
	// Database connections
	MongoDB *mongo.Database
	// Configuration
	AuthConfig    *authconfig.Config
	CompanyConfig *companyconfig.Config
	// Loggers
	Logger    logger.Logger
	ZapLogger *zap.Logger
}

// NewContainer creates a new DI container
func NewContainer() *Container {
	return &Container{}
}

// InitializeAuth initializes the authentication module
func (c *Container) InitializeAuth(mongoDB *mongo.Database, cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.AuthConfig = cfg

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}

	authModule, err := auth.NewAuthModule(mongoDB, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeCompany initializes the company and financial-year module
func (c *Container) InitializeCompany(cfg *companyconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before the company module")
	}

	c.CompanyConfig = cfg

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}
	if c.ZapLogger == nil {
		zapLogger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to create zap logger: %w", err)
		}
		c.ZapLogger = zapLogger
	}

	companyModule, err := company.NewCompanyModule(c.MongoDB, cfg, c.ZapLogger, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create company module: %w", err)
	}

	c.CompanyModule = companyModule
	return nil
}

// GetAuthModule returns the auth module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetCompanyModule returns the company module instance
func (c *Container) GetCompanyModule() *company.CompanyModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CompanyModule
}

// HealthCheck performs health check on all registered services
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB != nil {
		if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	return nil
}

// Close shuts down modules and flushes loggers
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil {
			return fmt.Errorf("failed to stop auth module: %w", err)
		}
	}
	if c.CompanyModule != nil {
		if err := c.CompanyModule.Stop(); err != nil {
			return fmt.Errorf("failed to stop company module: %w", err)
		}
	}
	if c.ZapLogger != nil {
		// Sync can fail on stdout; nothing actionable.
		_ = c.ZapLogger.Sync()
	}

	return nil
}
