// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDoctorRepository is a testify mock for repository.DoctorRepository.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(ctx, id)
	if doctor, ok := args.Get(0).(*entity.Doctor); ok {
		return doctor, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	args := m.Called(ctx, email)
	if doctor, ok := args.Get(0).(*entity.Doctor); ok {
		return doctor, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDoctorRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Doctor, error) {
	args := m.Called(ctx, licenseNumber)
	if doctor, ok := args.Get(0).(*entity.Doctor); ok {
		return doctor, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDoctorRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.DoctorCredential, error) {
	args := m.Called(ctx, email)
	if credential, ok := args.Get(0).(*entity.DoctorCredential); ok {
		return credential, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDoctorRepository) ListActive(ctx context.Context) ([]*entity.Doctor, error) {
	args := m.Called(ctx)
	if doctors, ok := args.Get(0).([]*entity.Doctor); ok {
		return doctors, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *entity.Doctor, passwordHash string) error {
	args := m.Called(ctx, doctor, passwordHash)

	return args.Error(0)
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	args := m.Called(ctx, doctor)

	return args.Error(0)
}

func (m *MockDoctorRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)

	return args.Error(0)
}

func (m *MockDoctorRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
