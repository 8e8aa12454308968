package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	txManager   repository.TransactionManager
	patientRepo repository.PatientRepository
	logger      *slog.Logger
}

// PatientServiceParams holds dependencies for patientService, injected by Fx.
type PatientServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PatientRepo repository.PatientRepository
	Logger      *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(params PatientServiceParams) usecase.PatientUsecase {
	return &patientService{
		txManager:   params.TxManager,
		patientRepo: params.PatientRepo,
		logger:      params.Logger,
	}
}

func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the actor's patients, or every patient for admins.
func (srv *patientService) List(ctx context.Context, actor *entity.Doctor) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	var err error

	// Single query operation - use direct repository instance
	if actor.IsAdmin {
		patients, err = srv.patientRepo.ListAll(ctx)
	} else {
		patients, err = srv.patientRepo.ListByDoctorID(ctx, actor.ID)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to list patients", slog.Any("actorID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list patients")
	}

	return patients, nil
}

// Get returns a single patient under the ownership rules: a record that does
// not exist yields not-found, while a record owned by another doctor yields
// forbidden. Existence is checked first so the two cases never swap.
func (srv *patientService) Get(ctx context.Context, actor *entity.Doctor, id uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.findAuthorizedPatient(ctx, srv.patientRepo, actor, id)
	if err != nil {
		return nil, err
	}

	return patient, nil
}

// Create persists a new patient record. The owning doctor defaults to the
// caller unless the input names another doctor; either way the owner's row
// must exist at insert time, verified inside the same transaction.
func (srv *patientService) Create(ctx context.Context, actor *entity.Doctor, input *usecase.CreatePatientInput) (*entity.Patient, error) {
	dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	ownerID := actor.ID
	if input.DoctorID != nil {
		ownerID = *input.DoctorID
	}

	newPatient := &entity.Patient{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		DateOfBirth:      dateOfBirth,
		Gender:           input.Gender,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		BloodType:        input.BloodType,
		Allergies:        input.Allergies,
		DoctorID:         ownerID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.verifyOwningDoctor(ctx, repoFactory, ownerID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.PatientRepo().Create(ctx, newPatient), "failed to create patient")
	})

	if err != nil {
		srv.log(ctx).Warn("Patient creation failed", slog.Any("actorID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Patient created", slog.Any("patientID", newPatient.ID), slog.Any("doctorID", ownerID))

	return newPatient, nil
}

// Update applies a partial update under the same ownership rules as Get.
// Reassigning ownership re-verifies the new doctor inside the transaction.
func (srv *patientService) Update(ctx context.Context, actor *entity.Doctor, id uuid.UUID, input *usecase.UpdatePatientInput) (*entity.Patient, error) {
	var updatedPatient *entity.Patient
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()

		patient, err := srv.findAuthorizedPatient(ctx, patientRepo, actor, id)
		if err != nil {
			return err
		}

		if err := applyPatientUpdate(patient, input); err != nil {
			return err
		}

		if input.DoctorID != nil {
			if err := srv.verifyOwningDoctor(ctx, repoFactory, *input.DoctorID); err != nil {
				return err
			}
		}

		if err := patientRepo.Update(ctx, patient); err != nil {
			return errors.Wrap(err, "failed to update patient")
		}

		updatedPatient = patient

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Patient update failed", slog.Any("patientID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Patient updated", slog.Any("patientID", id))

	return updatedPatient, nil
}

// Delete removes a patient permanently under the same ownership rules as Get.
func (srv *patientService) Delete(ctx context.Context, actor *entity.Doctor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()

		if _, err := srv.findAuthorizedPatient(ctx, patientRepo, actor, id); err != nil {
			return err
		}

		return errors.Wrap(patientRepo.Delete(ctx, id), "failed to delete patient")
	})

	if err != nil {
		srv.log(ctx).Warn("Patient deletion failed", slog.Any("patientID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Patient deleted", slog.Any("patientID", id))

	return nil
}

// findAuthorizedPatient loads a patient and enforces ownership. Existence is
// decided before ownership, so an unowned record is reported as forbidden
// rather than hidden as not-found.
func (srv *patientService) findAuthorizedPatient(ctx context.Context, patientRepo repository.PatientRepository, actor *entity.Doctor, id uuid.UUID) (*entity.Patient, error) {
	patient, err := patientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "patient lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find patient")
	}

	if patient.DoctorID != actor.ID && !actor.IsAdmin {
		srv.log(ctx).Warn("Patient access denied", slog.Any("actorID", actor.ID), slog.Any("patientID", id))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "patient access denied")
	}

	return patient, nil
}

// verifyOwningDoctor confirms the owning doctor row exists. Deactivated
// doctors still satisfy the reference.
func (srv *patientService) verifyOwningDoctor(ctx context.Context, repoFactory repository.RepositoryFactory, doctorID uuid.UUID) error {
	if _, err := repoFactory.DoctorRepo().FindByID(ctx, doctorID); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return errors.Wrap(domainerrors.ErrDoctorNotFound, "owning doctor lookup failed")
		}

		return errors.Wrap(err, "failed to verify owning doctor")
	}

	return nil
}

// applyPatientUpdate copies the non-nil input fields onto the patient entity.
func applyPatientUpdate(patient *entity.Patient, input *usecase.UpdatePatientInput) error {
	if input.DateOfBirth != nil {
		dateOfBirth, err := parseDateOfBirth(*input.DateOfBirth)
		if err != nil {
			return err
		}
		patient.DateOfBirth = dateOfBirth
	}

	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = *input.LastName
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.Phone != nil {
		patient.Phone = *input.Phone
	}
	if input.Email != nil {
		patient.Email = *input.Email
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.EmergencyContact != nil {
		patient.EmergencyContact = *input.EmergencyContact
	}
	if input.BloodType != nil {
		patient.BloodType = *input.BloodType
	}
	if input.Allergies != nil {
		patient.Allergies = *input.Allergies
	}
	if input.DoctorID != nil {
		patient.DoctorID = *input.DoctorID
	}

	return nil
}

// parseDateOfBirth parses the YYYY-MM-DD wire format.
func parseDateOfBirth(value string) (time.Time, error) {
	dateOfBirth, err := time.Parse(entity.DateOfBirthLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "date_of_birth must use the YYYY-MM-DD format")
	}

	return dateOfBirth, nil
}
