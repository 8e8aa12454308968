// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clinic/config"
	"clinic/internal/domain/service"
	"clinic/internal/errors"
)

const defaultTokenTTL = 2 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret and token lifetime are fixed at construction, never read from
// ambient state, so tests can run with distinct keys.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Access,
		tokenTTL: ttl,
	}, nil
}

// NewJWTServiceWithTTL builds a token service with an explicit secret and lifetime.
func NewJWTServiceWithTTL(secret string, ttl time.Duration) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: secret, tokenTTL: ttl}, nil
}

// GenerateToken creates a new signed session token for a given doctor.
func (s *jwtService) GenerateToken(doctorID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   doctorID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
// The library verifies the signature before claims are trusted; expiry is checked
// strictly, so a well-signed but expired token is still rejected.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(mapJWTError(err), "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.Wrap(service.ErrTokenMalformed, "token is not valid")
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.Wrap(service.ErrTokenMalformed, "unexpected claims type")
	}

	doctorID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "invalid subject claim")
	}

	return &service.Claims{
		DoctorID:         doctorID,
		RegisteredClaims: *registered,
	}, nil
}

// GetTokenDuration returns the configured token lifetime.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.tokenTTL
}

// mapJWTError converts jwt/v5 sentinel errors into the domain's verification
// failure modes so callers never depend on the library's error types.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	default:
		return service.ErrTokenMalformed
	}
}
