package utils

import (
	"context"
	"errors"

	"fincore/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrRequestIDNotFound    = errors.New("requestID not found in context")
	ErrRequestIDNotString   = errors.New("requestID in context is not a string")
	ErrUserEmailNotFound    = errors.New("userEmail not found in context")
	ErrUserEmailNotString   = errors.New("userEmail in context is not a string")
	ErrCompanyNameNotFound  = errors.New("companyName not found in context")
	ErrCompanyNameNotString = errors.New("companyName in context is not a string")
)

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// GetRequestIDFromContext retrieves the request ID from the context.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}

// WithUserEmail returns a copy of ctx carrying the user's email.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, contextkeys.UserEmailKey, email)
}

// GetUserEmailFromContext retrieves the user's email from the context.
func GetUserEmailFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.UserEmailKey)
	if val == nil {
		return "", ErrUserEmailNotFound
	}
	email, ok := val.(string)
	if !ok {
		return "", ErrUserEmailNotString
	}
	return email, nil
}

// WithCompanyName returns a copy of ctx carrying the company name.
func WithCompanyName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextkeys.CompanyNameKey, name)
}

// GetCompanyNameFromContext retrieves the company name from the context.
func GetCompanyNameFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.CompanyNameKey)
	if val == nil {
		return "", ErrCompanyNameNotFound
	}
	name, ok := val.(string)
	if !ok {
		return "", ErrCompanyNameNotString
	}
	return name, nil
}
