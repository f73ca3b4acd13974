package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"fincore/internal/auth/config"
	"fincore/internal/auth/domain/model"
	"fincore/internal/auth/domain/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUsecaseInterface defines the contract for authentication use cases.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*model.User, error)
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUsecase implements the authentication logic.
type AuthUsecase struct {
	repo   repository.AuthRepository
	config *config.Config
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(repo repository.AuthRepository, cfg *config.Config) *AuthUsecase {
	return &AuthUsecase{
		repo:   repo,
		config: cfg,
	}
}

// validateEmail validates email format
func (uc *AuthUsecase) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// Register creates a new user with a bcrypt password hash.
// No user identifier is returned to the caller; registration is confirmed
// by the absence of an error.
func (uc *AuthUsecase) Register(ctx context.Context, req RegisterRequest) error {
	if err := uc.validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}

	// Pre-check for readability of the common failure; the unique index on
	// email is the authoritative guard against concurrent registrations.
	if _, err := uc.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	cost := bcrypt.DefaultCost
	if uc.config != nil && uc.config.BcryptCost != 0 {
		cost = uc.config.BcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	return uc.repo.CreateUser(ctx, user)
}

// Login verifies the supplied credentials and returns the matching user.
// An unknown email and a wrong password are indistinguishable to the caller.
func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
