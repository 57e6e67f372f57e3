package mocks

import (
	"context"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

// UserStore mock
type UserStore struct {
	mock.Mock
}

func (m *UserStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserStore) UserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserStore) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	saved, _ := args.Get(0).(*domain.User)
	return saved, args.Error(1)
}
