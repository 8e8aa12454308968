// Package impl contains the implementation of the application's business logic.
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	doctorRepo   repository.DoctorRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DoctorRepo   repository.DoctorRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		doctorRepo:   params.DoctorRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete doctor registration process.
// Both duplicate checks span deactivated accounts and run inside the same
// transaction as the insert, so a concurrent registration cannot slip between
// check and create.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterDoctorInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting doctor registration", slog.String("email", input.Email))

	var registeredDoctor *entity.Doctor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doctorRepo := repoFactory.DoctorRepo()

		if _, err := doctorRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrDuplicateEmail
		} else if !errors.Is(err, repository.ErrDoctorNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if _, err := doctorRepo.FindByLicenseNumber(ctx, input.LicenseNumber); err == nil {
			return domainerrors.ErrDuplicateLicense
		} else if !errors.Is(err, repository.ErrDoctorNotFound) {
			return errors.Wrap(err, "failed to check license number uniqueness")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newDoctor := &entity.Doctor{
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			Email:         input.Email,
			LicenseNumber: input.LicenseNumber,
			Specialty:     input.Specialty,
			Phone:         input.Phone,
			IsActive:      true,
		}

		if err := doctorRepo.Create(ctx, newDoctor, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to create doctor during registration")
		}

		registeredDoctor = newDoctor

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Doctor registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Doctor registration completed", slog.Any("doctorID", registeredDoctor.ID))

	return &usecase.RegisterOutput{Doctor: registeredDoctor}, nil
}

// Login orchestrates the doctor login process.
// A missing account and a wrong password both surface as the same invalid
// credentials error, so the response never reveals whether the email exists.
// The deactivated check happens only after the password matched, for the
// same reason.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting doctor login", slog.String("email", input.Email))

	credential, err := srv.doctorRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load doctor credential")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !credential.Doctor.IsActive {
		srv.log(ctx).Warn("Login rejected for deactivated account", slog.Any("doctorID", credential.Doctor.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDeactivated, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(credential.Doctor.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("doctorID", credential.Doctor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Doctor logged in successfully", slog.Any("doctorID", credential.Doctor.ID))

	loggedInDoctor := credential.Doctor

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Doctor:      &loggedInDoctor,
	}, nil
}
