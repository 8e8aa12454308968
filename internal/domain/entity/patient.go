// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DateOfBirthLayout is the wire format for patient dates of birth.
const DateOfBirthLayout = "2006-01-02"

// Patient is a clinical record owned by exactly one Doctor. DoctorID is a required
// foreign key; it must reference an existing doctor whenever it is set or changed.
type Patient struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      time.Time `json:"-"`
	Gender           string    `json:"gender"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergency_contact"`
	BloodType        string    `json:"blood_type"`
	Allergies        string    `json:"allergies"`
	DoctorID         uuid.UUID `json:"doctor_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// patientJSON mirrors Patient with the date of birth rendered as a calendar date,
// so the stored date round-trips bit-exactly regardless of timezone.
type patientJSON struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergency_contact"`
	BloodType        string    `json:"blood_type"`
	Allergies        string    `json:"allergies"`
	DoctorID         uuid.UUID `json:"doctor_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MarshalJSON renders DateOfBirth as YYYY-MM-DD.
func (p Patient) MarshalJSON() ([]byte, error) {
	return json.Marshal(patientJSON{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		DateOfBirth:      p.DateOfBirth.Format(DateOfBirthLayout),
		Gender:           p.Gender,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
		BloodType:        p.BloodType,
		Allergies:        p.Allergies,
		DoctorID:         p.DoctorID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	})
}
