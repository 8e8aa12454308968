// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterDoctorInput defines the data required to register a new doctor.
type RegisterDoctorInput struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Specialty     string `json:"specialty"`
	Phone         string `json:"phone"`
	Password      string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a doctor to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created doctor's basic information.
type RegisterOutput struct {
	Doctor *entity.Doctor
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string         `json:"access_token"`
	Doctor      *entity.Doctor `json:"doctor"`
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterDoctorInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
