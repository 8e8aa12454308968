package repository

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPatientRepository is a testify mock for repository.PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if patient, ok := args.Get(0).(*entity.Patient); ok {
		return patient, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPatientRepository) ListByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error) {
	args := m.Called(ctx, doctorID)
	if patients, ok := args.Get(0).([]*entity.Patient); ok {
		return patients, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entity.Patient, error) {
	args := m.Called(ctx)
	if patients, ok := args.Get(0).([]*entity.Patient); ok {
		return patients, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	args := m.Called(ctx, patient)

	return args.Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	args := m.Called(ctx, patient)

	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
