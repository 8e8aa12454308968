package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is a domain-specific error returned when a patient is not found.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the standard operations for patient persistence.
type PatientRepository interface {
	// FindByID retrieves a single patient by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// ListByDoctorID retrieves all patients owned by the given doctor.
	ListByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error)

	// ListAll retrieves every patient. Reserved for callers with the admin capability.
	ListAll(ctx context.Context) ([]*entity.Patient, error)

	// Create persists a new patient entity to the storage.
	Create(ctx context.Context, patient *entity.Patient) error

	// Update modifies an existing patient entity in the storage.
	Update(ctx context.Context, patient *entity.Patient) error

	// Delete removes a patient permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
