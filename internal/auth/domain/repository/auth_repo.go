package repository

import (
	"context"

	"fincore/internal/auth/domain/model"
)

// AuthRepository defines the persistence contract for user records.
type AuthRepository interface {
	// CreateUser persists a new user. The underlying store enforces email
	// uniqueness; a duplicate email surfaces as usecase.ErrEmailTaken.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByEmail retrieves a user by email, returning
	// usecase.ErrUserNotFound when no user with that email exists.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
