package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	mockRepo "clinic/internal/mocks/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepositoryFactory hands out the fixture mocks as transaction-bound repositories.
type stubRepositoryFactory struct {
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func (f *stubRepositoryFactory) DoctorRepo() repository.DoctorRepository {
	return f.doctorRepo
}

func (f *stubRepositoryFactory) PatientRepo() repository.PatientRepository {
	return f.patientRepo
}

// stubTransactionManager runs the callback directly against the stub factory.
// Commit and rollback behavior is owned by the real GORM manager and is not
// under test here.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (tm *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

func newStubTransactionManager(doctorRepo *mockRepo.MockDoctorRepository, patientRepo *mockRepo.MockPatientRepository) repository.TransactionManager {
	return &stubTransactionManager{
		factory: &stubRepositoryFactory{
			doctorRepo:  doctorRepo,
			patientRepo: patientRepo,
		},
	}
}

func newTestDoctor(isAdmin bool) *entity.Doctor {
	return &entity.Doctor{
		ID:            uuid.New(),
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         "grace.hopper@example.com",
		LicenseNumber: "MD-1906",
		Specialty:     "Cardiology",
		IsActive:      true,
		IsAdmin:       isAdmin,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func newTestPatient(doctorID uuid.UUID) *entity.Patient {
	dateOfBirth, _ := time.Parse(entity.DateOfBirthLayout, "1984-03-12")

	return &entity.Patient{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: dateOfBirth,
		Gender:      "female",
		BloodType:   "O+",
		DoctorID:    doctorID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
