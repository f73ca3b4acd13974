package http

import (
	"errors"

	"fincore/internal/auth/usecase"
	apperrors "fincore/internal/shared/errors"
	"fincore/internal/shared/logger"
	"fincore/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for authentication
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
	log     logger.Logger
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface, log logger.Logger) *AuthHTTPHandler {
	if log == nil {
		log = logger.NewLogger()
	}
	return &AuthHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("auth_http"),
	}
}

// SetupAuthRoutes sets up authentication routes
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router) {
	router.Post("/register", h.Register)
	router.Post("/login", h.Login)
}

// Register handles user registration
func (h *AuthHTTPHandler) Register(c *fiber.Ctx) error {
	var req usecase.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := utils.WithUserEmail(c.Context(), req.Email)
	if err := h.usecase.Register(ctx, req); err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		if errors.Is(err, usecase.ErrInvalidEmailFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.log.WithContext(ctx).Errorf("registration failed: %v", err)
		appErr := apperrors.WrapError(err, "registration failed").WithComponent("auth_http")
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Registration successful",
	})
}

// Login handles user login
func (h *AuthHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := utils.WithUserEmail(c.Context(), req.Email)
	user, err := h.usecase.Login(ctx, req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}
		h.log.WithContext(ctx).Errorf("login failed: %v", err)
		appErr := apperrors.WrapError(err, "login failed").WithComponent("auth_http")
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"email":   user.Email,
	})
}
