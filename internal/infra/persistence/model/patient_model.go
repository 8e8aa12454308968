package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table. DoctorID is a non-nullable foreign key;
// the referencing doctor may be deactivated but the row must exist.
type PatientModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	DateOfBirth      time.Time `gorm:"type:date;not null"`
	Gender           string    `gorm:"type:varchar(20)"`
	Phone            string    `gorm:"type:varchar(50)"`
	Email            string    `gorm:"type:varchar(255)"`
	Address          string    `gorm:"type:text"`
	EmergencyContact string    `gorm:"type:varchar(255)"`
	BloodType        string    `gorm:"type:varchar(10)"`
	Allergies        string    `gorm:"type:text"`
	DoctorID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
