package mocks

import (
	"context"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

// PortfolioStore mock
type PortfolioStore struct {
	mock.Mock
}

func (m *PortfolioStore) ListPortfolios(ctx context.Context, category domain.PortfolioCategory) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]domain.PortfolioItem)
	return items, args.Error(1)
}

func (m *PortfolioStore) PortfolioByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.PortfolioItem)
	return item, args.Error(1)
}

func (m *PortfolioStore) SavePortfolio(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, item)
	saved, _ := args.Get(0).(*domain.PortfolioItem)
	return saved, args.Error(1)
}

func (m *PortfolioStore) UpdatePortfolio(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, item)
	updated, _ := args.Get(0).(*domain.PortfolioItem)
	return updated, args.Error(1)
}

func (m *PortfolioStore) DeletePortfolio(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
