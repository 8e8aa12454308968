package impl

import (
	"context"
	"testing"
	"time"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/auth"
	mockRepo "clinic/internal/mocks/repository"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service    usecase.AuthUsecase
	doctorRepo *mockRepo.MockDoctorRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	doctorRepo := new(mockRepo.MockDoctorRepository)
	patientRepo := new(mockRepo.MockPatientRepository)

	tokenService, err := auth.NewJWTServiceWithTTL("test_secret_key_very_long_for_testing", time.Hour)
	require.NoError(t, err)

	service := NewAuthService(AuthServiceParams{
		TxManager:    newStubTransactionManager(doctorRepo, patientRepo),
		DoctorRepo:   doctorRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:    service,
		doctorRepo: doctorRepo,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterDoctorInput{
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         "grace.hopper@example.com",
		LicenseNumber: "MD-1906",
		Specialty:     "Cardiology",
		Password:      "correct horse battery staple",
	}

	fx.doctorRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrDoctorNotFound)
	fx.doctorRepo.On("FindByLicenseNumber", ctx, input.LicenseNumber).Return(nil, repository.ErrDoctorNotFound)
	fx.doctorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Doctor"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			doctor := args.Get(1).(*entity.Doctor)
			doctor.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEqual(t, uuid.Nil, output.Doctor.ID)
	assert.True(t, output.Doctor.IsActive)
	assert.Equal(t, input.Email, output.Doctor.Email)

	// The stored hash is never the plaintext password.
	createCall := fx.doctorRepo.Calls[len(fx.doctorRepo.Calls)-1]
	storedHash := createCall.Arguments.Get(2).(string)
	assert.NotEqual(t, input.Password, storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input.Password)))

	fx.doctorRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := newTestDoctor(false)
	existing.IsActive = false // deactivated accounts still block re-registration

	input := &usecase.RegisterDoctorInput{
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         existing.Email,
		LicenseNumber: "MD-9999",
		Password:      "correct horse battery staple",
	}

	fx.doctorRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	fx.doctorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateLicense(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := newTestDoctor(false)

	input := &usecase.RegisterDoctorInput{
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         "someone.else@example.com",
		LicenseNumber: existing.LicenseNumber,
		Password:      "correct horse battery staple",
	}

	fx.doctorRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrDoctorNotFound)
	fx.doctorRepo.On("FindByLicenseNumber", ctx, input.LicenseNumber).Return(existing, nil)

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateLicense))

	fx.doctorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func newStoredCredential(t *testing.T, password string, isActive bool) *entity.DoctorCredential {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	doctor := newTestDoctor(false)
	doctor.IsActive = isActive

	return &entity.DoctorCredential{
		Doctor:       *doctor,
		PasswordHash: string(hash),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	credential := newStoredCredential(t, "correct horse battery staple", true)
	fx.doctorRepo.On("FindCredentialByEmail", ctx, credential.Doctor.Email).Return(credential, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    credential.Doctor.Email,
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, credential.Doctor.ID, output.Doctor.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.doctorRepo.On("FindCredentialByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrDoctorNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	credential := newStoredCredential(t, "correct horse battery staple", true)
	fx.doctorRepo.On("FindCredentialByEmail", ctx, credential.Doctor.Email).Return(credential, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    credential.Doctor.Email,
		Password: "wrong password",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	credential := newStoredCredential(t, "correct horse battery staple", false)
	fx.doctorRepo.On("FindCredentialByEmail", ctx, credential.Doctor.Email).Return(credential, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    credential.Doctor.Email,
		Password: "correct horse battery staple",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDeactivated))
}

func TestAuthService_Login_DeactivatedWithWrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// A wrong password on a deactivated account must not reveal the
	// deactivation: credentials are checked first.
	credential := newStoredCredential(t, "correct horse battery staple", false)
	fx.doctorRepo.On("FindCredentialByEmail", ctx, credential.Doctor.Email).Return(credential, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    credential.Doctor.Email,
		Password: "wrong password",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, domainerrors.ErrAccountDeactivated))
}
