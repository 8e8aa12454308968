package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/auth"
	mockRepo "clinic/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, authorization string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok, "expected an application error, got %v", err)

	return appErr.HTTPCode()
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	err = m.Authenticate(okHandler)(newTestContext(t, ""))
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_NonTokenHeaderRejected(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	// A non-Bearer credential is treated as a raw token and fails validation.
	err = m.Authenticate(okHandler)(newTestContext(t, "Basic dXNlcjpwYXNz"))
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))

	err = m.Authenticate(okHandler)(newTestContext(t, "Bearer "))
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_BareTokenWithoutScheme(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	doctor := &entity.Doctor{ID: uuid.New(), Email: "grace@example.com", IsActive: true}
	doctorRepo.On("FindByID", mock.Anything, doctor.ID).Return(doctor, nil)

	token, err := tokenSvc.GenerateToken(doctor.ID)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	var seen *entity.Doctor
	err = m.Authenticate(func(c echo.Context) error {
		seen, err = CurrentDoctor(c)

		return err
	})(newTestContext(t, token))
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, doctor.ID, seen.ID)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	err = m.Authenticate(okHandler)(newTestContext(t, "Bearer not-a-real-token"))
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_ValidTokenLoadsDoctor(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	doctor := &entity.Doctor{ID: uuid.New(), Email: "grace@example.com", IsActive: true}
	doctorRepo.On("FindByID", mock.Anything, doctor.ID).Return(doctor, nil)

	token, err := tokenSvc.GenerateToken(doctor.ID)
	require.NoError(t, err)

	c := newTestContext(t, "Bearer "+token)
	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	var seen *entity.Doctor
	err = m.Authenticate(func(c echo.Context) error {
		seen, err = CurrentDoctor(c)

		return err
	})(c)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, doctor.ID, seen.ID)
}

func TestAuthMiddleware_DeactivatedDoctorRejected(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	doctor := &entity.Doctor{ID: uuid.New(), Email: "grace@example.com", IsActive: false}
	doctorRepo.On("FindByID", mock.Anything, doctor.ID).Return(doctor, nil)

	token, err := tokenSvc.GenerateToken(doctor.ID)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	err = m.Authenticate(okHandler)(newTestContext(t, "Bearer "+token))
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_DeletedDoctorRejected(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	doctorID := uuid.New()
	doctorRepo.On("FindByID", mock.Anything, doctorID).Return(nil, repository.ErrDoctorNotFound)

	token, err := tokenSvc.GenerateToken(doctorID)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	err = m.Authenticate(okHandler)(newTestContext(t, "Bearer "+token))
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	doctorRepo := new(mockRepo.MockDoctorRepository)
	tokenSvc, err := auth.NewJWTServiceWithTTL("middleware_test_secret_key", time.Hour)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, doctorRepo)

	c := newTestContext(t, "")
	c.Set(ContextKeyDoctor, &entity.Doctor{ID: uuid.New(), IsActive: true, IsAdmin: false})

	err = m.RequireAdmin(okHandler)(c)
	assert.Equal(t, http.StatusForbidden, appErrorCode(t, err))

	c.Set(ContextKeyDoctor, &entity.Doctor{ID: uuid.New(), IsActive: true, IsAdmin: true})
	assert.NoError(t, m.RequireAdmin(okHandler)(c))
}
