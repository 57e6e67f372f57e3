package mocks

import (
	"context"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

// CertificationStore mock
type CertificationStore struct {
	mock.Mock
}

func (m *CertificationStore) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	args := m.Called(ctx)
	certs, _ := args.Get(0).([]domain.Certification)
	return certs, args.Error(1)
}

func (m *CertificationStore) CertificationByID(ctx context.Context, id string) (*domain.Certification, error) {
	args := m.Called(ctx, id)
	cert, _ := args.Get(0).(*domain.Certification)
	return cert, args.Error(1)
}

func (m *CertificationStore) SaveCertification(ctx context.Context, cert domain.Certification) (*domain.Certification, error) {
	args := m.Called(ctx, cert)
	saved, _ := args.Get(0).(*domain.Certification)
	return saved, args.Error(1)
}

func (m *CertificationStore) UpdateCertification(ctx context.Context, cert domain.Certification) (*domain.Certification, error) {
	args := m.Called(ctx, cert)
	updated, _ := args.Get(0).(*domain.Certification)
	return updated, args.Error(1)
}

func (m *CertificationStore) DeleteCertification(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
