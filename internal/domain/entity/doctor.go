// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the authenticated actor in the system. Every patient record is owned
// by exactly one doctor. The password hash is deliberately absent: credentials are
// exposed to the rest of the domain only through DoctorCredential.
type Doctor struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`      // Unique across all doctors, including deactivated ones.
	LicenseNumber string    `json:"license_number"` // Unique across all doctors, including deactivated ones.
	Specialty     string    `json:"specialty"`
	Phone         string    `json:"phone"`
	IsActive      bool      `json:"is_active"` // Soft-delete marker; deactivated doctors keep their rows.
	IsAdmin       bool      `json:"is_admin"`  // Administrative capability: bypasses patient ownership scoping.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DoctorCredential pairs a doctor with their stored secret hash for the login path.
// It never crosses the delivery boundary.
type DoctorCredential struct {
	Doctor       Doctor
	PasswordHash string
}
