// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DoctorModel mirrors the 'doctors' table. Email and license number carry unique
// indexes that span deactivated rows, backing the registration duplicate checks.
type DoctorModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	LicenseNumber string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Specialty     string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(50)"`
	IsActive      bool      `gorm:"not null;default:true"`
	IsAdmin       bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Patients []PatientModel `gorm:"foreignKey:DoctorID"`
}

// TableName explicitly sets the table name for GORM.
func (DoctorModel) TableName() string {
	return "doctors"
}
