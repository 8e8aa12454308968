package middleware

import (
	"strings"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyDoctor is the echo context key carrying the authenticated doctor.
const ContextKeyDoctor = "doctor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Every authenticated request reloads the doctor row, so deactivation takes
// effect immediately instead of waiting for outstanding tokens to expire.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	doctorRepo repository.DoctorRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, doctorRepo repository.DoctorRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, doctorRepo: doctorRepo}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		// The Bearer scheme prefix is optional on decode; a bare token authenticates too.
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Token is missing from Authorization header")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid or expired token")
		}

		doctor, err := m.doctorRepo.FindByID(c.Request().Context(), claims.DoctorID)
		if err != nil {
			if errors.Is(err, repository.ErrDoctorNotFound) {
				return domainerrors.ErrUnauthenticated.WithDetails("Doctor from token no longer exists")
			}

			return errors.Wrap(err, "failed to load doctor for authentication")
		}

		if !doctor.IsActive {
			return domainerrors.ErrAccountDeactivated
		}

		// Set doctor info on the context for handlers to use
		c.Set(ContextKeyDoctor, doctor)

		return next(c)
	}
}

// RequireAdmin checks that the authenticated doctor has the admin capability.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		doctor, err := CurrentDoctor(c)
		if err != nil {
			return err
		}

		if !doctor.IsAdmin {
			return domainerrors.ErrForbidden.WithDetails("Admin capability required")
		}

		return next(c)
	}
}

// CurrentDoctor extracts the authenticated doctor set by Authenticate.
func CurrentDoctor(c echo.Context) (*entity.Doctor, error) {
	doctor, ok := c.Get(ContextKeyDoctor).(*entity.Doctor)
	if !ok || doctor == nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("Doctor information missing from request context")
	}

	return doctor, nil
}
