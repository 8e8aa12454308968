package usecase

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePatientInput defines the data required to create a patient record.
// DateOfBirth uses the YYYY-MM-DD wire format. DoctorID optionally assigns
// ownership to another doctor; when nil the caller becomes the owner.
type CreatePatientInput struct {
	FirstName        string     `json:"first_name" validate:"required"`
	LastName         string     `json:"last_name" validate:"required"`
	DateOfBirth      string     `json:"date_of_birth" validate:"required"`
	Gender           string     `json:"gender"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email" validate:"omitempty,email"`
	Address          string     `json:"address"`
	EmergencyContact string     `json:"emergency_contact"`
	BloodType        string     `json:"blood_type"`
	Allergies        string     `json:"allergies"`
	DoctorID         *uuid.UUID `json:"doctor_id"`
}

// UpdatePatientInput defines the mutable patient fields. Nil pointers mean
// "leave unchanged".
type UpdatePatientInput struct {
	FirstName        *string    `json:"first_name"`
	LastName         *string    `json:"last_name"`
	DateOfBirth      *string    `json:"date_of_birth"`
	Gender           *string    `json:"gender"`
	Phone            *string    `json:"phone"`
	Email            *string    `json:"email" validate:"omitempty,email"`
	Address          *string    `json:"address"`
	EmergencyContact *string    `json:"emergency_contact"`
	BloodType        *string    `json:"blood_type"`
	Allergies        *string    `json:"allergies"`
	DoctorID         *uuid.UUID `json:"doctor_id"`
}

// PatientUsecase defines the interface for patient-related business operations.
// All reads and writes are scoped by ownership: a doctor only sees their own
// patients, while admins see every record.
type PatientUsecase interface {
	// List returns the actor's patients, or every patient for admins.
	List(ctx context.Context, actor *entity.Doctor) ([]*entity.Patient, error)

	// Get returns a single patient. Missing records yield not-found; records
	// owned by another doctor yield forbidden.
	Get(ctx context.Context, actor *entity.Doctor, id uuid.UUID) (*entity.Patient, error)

	// Create persists a new patient after verifying the owning doctor exists.
	Create(ctx context.Context, actor *entity.Doctor, input *CreatePatientInput) (*entity.Patient, error)

	// Update applies a partial update under the same ownership rules as Get.
	Update(ctx context.Context, actor *entity.Doctor, id uuid.UUID, input *UpdatePatientInput) (*entity.Patient, error)

	// Delete removes a patient permanently under the same ownership rules as Get.
	Delete(ctx context.Context, actor *entity.Doctor, id uuid.UUID) error
}
