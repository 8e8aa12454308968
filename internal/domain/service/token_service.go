package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failure modes. The HTTP guard collapses all of these into a
// single 401 for the caller; they stay distinct here for logging.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	DoctorID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed session token for a given doctor.
	GenerateToken(doctorID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string. The signature is
	// verified before any claim is trusted, and expiry is checked strictly.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured token lifetime.
	GetTokenDuration() time.Duration
}
