package postgres

import (
	"context"
	"time"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the domain.PatientRepository interface using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

// FindByID retrieves a single patient by their unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by id")
	}

	return toPatientDomain(&patientM), nil
}

// ListByDoctorID retrieves all patients owned by the given doctor, ordered by creation time.
func (repo *patientRepository) ListByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error) {
	var patientMs []model.PatientModel
	if err := repo.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at").
		Find(&patientMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list patients by doctor")
	}

	return toPatientDomainSlice(patientMs), nil
}

// ListAll retrieves every patient, ordered by creation time.
func (repo *patientRepository) ListAll(ctx context.Context) ([]*entity.Patient, error) {
	var patientMs []model.PatientModel
	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&patientMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return toPatientDomainSlice(patientMs), nil
}

// Create persists a new patient entity to the database.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDoctorNotFound.WrapMessage("patient references a missing doctor")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Update modifies an existing patient entity in the database. The entity's
// UpdatedAt is set to the value written, so callers can return it without
// re-reading the row.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", patient.ID).
		Updates(map[string]any{
			"first_name":        patientM.FirstName,
			"last_name":         patientM.LastName,
			"date_of_birth":     patientM.DateOfBirth,
			"gender":            patientM.Gender,
			"phone":             patientM.Phone,
			"email":             patientM.Email,
			"address":           patientM.Address,
			"emergency_contact": patientM.EmergencyContact,
			"blood_type":        patientM.BloodType,
			"allergies":         patientM.Allergies,
			"doctor_id":         patientM.DoctorID,
			"updated_at":        now,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDoctorNotFound.WrapMessage("patient references a missing doctor")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	patient.UpdatedAt = now

	return nil
}

// Delete removes a patient permanently.
func (repo *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PatientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPatientDomain converts a GORM PatientModel to a domain Patient entity.
func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		Phone:            data.Phone,
		Email:            data.Email,
		Address:          data.Address,
		EmergencyContact: data.EmergencyContact,
		BloodType:        data.BloodType,
		Allergies:        data.Allergies,
		DoctorID:         data.DoctorID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toPatientDomainSlice(data []model.PatientModel) []*entity.Patient {
	patients := make([]*entity.Patient, 0, len(data))
	for i := range data {
		patients = append(patients, toPatientDomain(&data[i]))
	}

	return patients
}

// fromPatientDomain converts a domain Patient entity to a GORM PatientModel for persistence.
func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		DateOfBirth:      data.DateOfBirth,
		Gender:           data.Gender,
		Phone:            data.Phone,
		Email:            data.Email,
		Address:          data.Address,
		EmergencyContact: data.EmergencyContact,
		BloodType:        data.BloodType,
		Allergies:        data.Allergies,
		DoctorID:         data.DoctorID,
	}
}
