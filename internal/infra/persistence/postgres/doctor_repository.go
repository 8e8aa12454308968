package postgres

import (
	"context"
	"strings"
	"time"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// doctorRepository implements the domain.DoctorRepository interface using GORM.
type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository is the constructor for doctorRepository.
// It returns the repository as a domain.DoctorRepository interface, adhering to dependency inversion.
func NewDoctorRepository(db *gorm.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

// FindByID retrieves a single doctor by their unique ID, deactivated rows included.
func (repo *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctorM model.DoctorModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&doctorM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toDoctorDomain(&doctorM), nil
}

// FindByEmail retrieves a single doctor by email address, regardless of active state.
func (repo *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	var doctorM model.DoctorModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&doctorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor by email")
	}

	return toDoctorDomain(&doctorM), nil
}

// FindByLicenseNumber retrieves a single doctor by license number, regardless of active state.
func (repo *doctorRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Doctor, error) {
	var doctorM model.DoctorModel
	if err := repo.db.WithContext(ctx).
		Where("license_number = ?", licenseNumber).
		First(&doctorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor by license number")
	}

	return toDoctorDomain(&doctorM), nil
}

// FindCredentialByEmail retrieves a doctor together with their stored password hash.
func (repo *doctorRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.DoctorCredential, error) {
	var doctorM model.DoctorModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&doctorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, errors.Wrap(err, "failed to find doctor credential by email")
	}

	return &entity.DoctorCredential{
		Doctor:       *toDoctorDomain(&doctorM),
		PasswordHash: doctorM.PasswordHash,
	}, nil
}

// ListActive retrieves all doctors whose active flag is set, ordered by creation time.
func (repo *doctorRepository) ListActive(ctx context.Context) ([]*entity.Doctor, error) {
	var doctorMs []model.DoctorModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at").
		Find(&doctorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active doctors")
	}

	doctors := make([]*entity.Doctor, 0, len(doctorMs))
	for i := range doctorMs {
		doctors = append(doctors, toDoctorDomain(&doctorMs[i]))
	}

	return doctors, nil
}

// Create persists a new doctor together with the given password hash.
func (repo *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor, passwordHash string) error {
	doctorM := fromDoctorDomain(doctor)
	doctorM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(doctorM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return mapDoctorUniqueViolation(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required doctor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create doctor")
	}

	// Update the doctor entity with the generated ID and timestamps
	doctor.ID = doctorM.ID
	doctor.IsActive = doctorM.IsActive
	doctor.CreatedAt = doctorM.CreatedAt
	doctor.UpdatedAt = doctorM.UpdatedAt

	return nil
}

// Update modifies an existing doctor's identity fields. The password hash is
// untouched. The entity's UpdatedAt is set to the value written, so callers
// can return it without re-reading the row.
func (repo *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	now := time.Now().UTC()
	updates := map[string]any{
		"first_name":     doctor.FirstName,
		"last_name":      doctor.LastName,
		"email":          doctor.Email,
		"license_number": doctor.LicenseNumber,
		"specialty":      doctor.Specialty,
		"phone":          doctor.Phone,
		"updated_at":     now,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DoctorModel{}).
		Where("id = ?", doctor.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return mapDoctorUniqueViolation(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update doctor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDoctorNotFound
	}

	doctor.UpdatedAt = now

	return nil
}

// UpdatePasswordHash replaces the stored secret hash for a doctor.
func (repo *doctorRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DoctorModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update doctor password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDoctorNotFound
	}

	return nil
}

// Deactivate clears the active flag. The row and its patients are retained.
func (repo *doctorRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DoctorModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate doctor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDoctorNotFound
	}

	return nil
}

// mapDoctorUniqueViolation picks the duplicate error matching the violated
// constraint. Both email and license number carry unique indexes, so the
// constraint name decides which field collided.
func mapDoctorUniqueViolation(err error) error {
	if strings.Contains(violatedConstraintName(err), "license") {
		return domainerrors.ErrDuplicateLicense.WrapMessage("license number already registered")
	}

	return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toDoctorDomain converts a GORM DoctorModel to a domain Doctor entity.
// The password hash is deliberately dropped here; the login path reads it
// through FindCredentialByEmail instead.
func toDoctorDomain(data *model.DoctorModel) *entity.Doctor {
	if data == nil {
		return nil
	}

	return &entity.Doctor{
		ID:            data.ID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		LicenseNumber: data.LicenseNumber,
		Specialty:     data.Specialty,
		Phone:         data.Phone,
		IsActive:      data.IsActive,
		IsAdmin:       data.IsAdmin,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDoctorDomain converts a domain Doctor entity to a GORM DoctorModel for persistence.
func fromDoctorDomain(data *entity.Doctor) *model.DoctorModel {
	if data == nil {
		return nil
	}

	return &model.DoctorModel{
		ID:            data.ID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		LicenseNumber: data.LicenseNumber,
		Specialty:     data.Specialty,
		Phone:         data.Phone,
		IsActive:      data.IsActive,
		IsAdmin:       data.IsAdmin,
	}
}
