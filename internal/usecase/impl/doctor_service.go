package impl

import (
	"context"
	"log/slog"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// doctorService implements the DoctorUsecase interface.
type doctorService struct {
	txManager  repository.TransactionManager
	doctorRepo repository.DoctorRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// DoctorServiceParams holds dependencies for doctorService, injected by Fx.
type DoctorServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DoctorRepo repository.DoctorRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewDoctorService is the constructor for doctorService.
func NewDoctorService(params DoctorServiceParams) usecase.DoctorUsecase {
	return &doctorService{
		txManager:  params.TxManager,
		doctorRepo: params.DoctorRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *doctorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all active doctors.
func (srv *doctorService) List(ctx context.Context) ([]*entity.Doctor, error) {
	// Single query operation - use direct repository instance
	doctors, err := srv.doctorRepo.ListActive(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list doctors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list doctors")
	}

	return doctors, nil
}

// Get returns a single doctor by ID, deactivated rows included.
func (srv *doctorService) Get(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := srv.doctorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDoctorNotFound, "doctor lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find doctor")
	}

	return doctor, nil
}

// Update applies a partial update to a doctor's profile. Only the doctor
// themselves or an admin may update; nil input fields are left unchanged.
func (srv *doctorService) Update(ctx context.Context, actor *entity.Doctor, id uuid.UUID, input *usecase.UpdateDoctorInput) (*entity.Doctor, error) {
	if actor.ID != id && !actor.IsAdmin {
		srv.log(ctx).Warn("Doctor update denied", slog.Any("actorID", actor.ID), slog.Any("doctorID", id))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "doctor update denied")
	}

	var updatedDoctor *entity.Doctor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctorRepo := repoFactory.DoctorRepo()

		doctor, err := doctorRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDoctorNotFound) {
				return errors.Wrap(domainerrors.ErrDoctorNotFound, "doctor lookup failed")
			}

			return errors.Wrap(err, "failed to find doctor for update")
		}

		if err := srv.applyDoctorUpdate(ctx, doctorRepo, doctor, input); err != nil {
			return err
		}

		if err := doctorRepo.Update(ctx, doctor); err != nil {
			return errors.Wrap(err, "failed to update doctor")
		}

		if input.Password != nil {
			hashedPassword, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password during update")
			}
			if err := doctorRepo.UpdatePasswordHash(ctx, id, hashedPassword); err != nil {
				return errors.Wrap(err, "failed to update password hash")
			}
		}

		updatedDoctor = doctor

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Doctor update failed", slog.Any("doctorID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Doctor updated", slog.Any("doctorID", id))

	return updatedDoctor, nil
}

// applyDoctorUpdate copies the non-nil input fields onto the doctor entity,
// re-checking uniqueness whenever email or license number actually change.
func (srv *doctorService) applyDoctorUpdate(ctx context.Context, doctorRepo repository.DoctorRepository, doctor *entity.Doctor, input *usecase.UpdateDoctorInput) error {
	if input.Email != nil && *input.Email != doctor.Email {
		if existing, err := doctorRepo.FindByEmail(ctx, *input.Email); err == nil && existing.ID != doctor.ID {
			return domainerrors.ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, repository.ErrDoctorNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		doctor.Email = *input.Email
	}

	if input.LicenseNumber != nil && *input.LicenseNumber != doctor.LicenseNumber {
		if existing, err := doctorRepo.FindByLicenseNumber(ctx, *input.LicenseNumber); err == nil && existing.ID != doctor.ID {
			return domainerrors.ErrDuplicateLicense
		} else if err != nil && !errors.Is(err, repository.ErrDoctorNotFound) {
			return errors.Wrap(err, "failed to check license number uniqueness")
		}
		doctor.LicenseNumber = *input.LicenseNumber
	}

	if input.FirstName != nil {
		doctor.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		doctor.LastName = *input.LastName
	}
	if input.Specialty != nil {
		doctor.Specialty = *input.Specialty
	}
	if input.Phone != nil {
		doctor.Phone = *input.Phone
	}

	return nil
}

// Deactivate soft-deletes a doctor. Admin only. The doctor's patients keep
// their owner reference and remain readable by admins.
func (srv *doctorService) Deactivate(ctx context.Context, actor *entity.Doctor, id uuid.UUID) error {
	if !actor.IsAdmin {
		srv.log(ctx).Warn("Doctor deactivation denied", slog.Any("actorID", actor.ID), slog.Any("doctorID", id))

		return errors.Wrap(domainerrors.ErrForbidden, "doctor deactivation denied")
	}

	if err := srv.doctorRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return errors.Wrap(domainerrors.ErrDoctorNotFound, "doctor lookup failed")
		}

		srv.log(ctx).Error("Failed to deactivate doctor", slog.Any("doctorID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to deactivate doctor")
	}

	srv.log(ctx).Info("Doctor deactivated", slog.Any("doctorID", id))

	return nil
}
