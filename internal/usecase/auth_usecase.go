// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput identifies the user after a successful registration or login.
type AuthOutput struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// AuthUsecase defines the interface for account registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an account with a freshly hashed password.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and upgrades the stored hash when it is outdated.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
