// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDoctorNotFound is a domain-specific error returned when a doctor is not found.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorRepository defines the standard operations for doctor persistence.
// Lookup methods see every row, deactivated doctors included; uniqueness checks
// must span inactive accounts.
type DoctorRepository interface {
	// FindByID retrieves a single doctor by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)

	// FindByEmail retrieves a single doctor by email, regardless of active state.
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)

	// FindByLicenseNumber retrieves a single doctor by license number, regardless of active state.
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Doctor, error)

	// FindCredentialByEmail retrieves a doctor together with their password hash.
	// Only the login path may use this.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.DoctorCredential, error)

	// ListActive retrieves all doctors whose active flag is set.
	ListActive(ctx context.Context) ([]*entity.Doctor, error)

	// Create persists a new doctor with the given password hash.
	Create(ctx context.Context, doctor *entity.Doctor, passwordHash string) error

	// Update modifies an existing doctor's identity fields.
	Update(ctx context.Context, doctor *entity.Doctor) error

	// UpdatePasswordHash replaces the stored secret hash for a doctor.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Deactivate clears the active flag. The row and its patients are retained.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
