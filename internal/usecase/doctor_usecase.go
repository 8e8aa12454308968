package usecase

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateDoctorInput defines the mutable doctor fields. Nil pointers mean
// "leave unchanged", so partial updates never clobber existing values.
type UpdateDoctorInput struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	LicenseNumber *string `json:"license_number"`
	Specialty     *string `json:"specialty"`
	Phone         *string `json:"phone"`
	Password      *string `json:"password" validate:"omitempty,min=8"`
}

// DoctorUsecase defines the interface for doctor-related business operations.
// Every method receives the authenticated actor so authorization decisions
// stay inside the usecase layer.
type DoctorUsecase interface {
	// List returns all active doctors.
	List(ctx context.Context) ([]*entity.Doctor, error)

	// Get returns a single doctor by ID, deactivated rows included.
	Get(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)

	// Update applies a partial update. A doctor may update themselves;
	// admins may update anyone.
	Update(ctx context.Context, actor *entity.Doctor, id uuid.UUID, input *UpdateDoctorInput) (*entity.Doctor, error)

	// Deactivate soft-deletes a doctor. Admin only. Patients keep their
	// doctor_id reference.
	Deactivate(ctx context.Context, actor *entity.Doctor, id uuid.UUID) error
}
