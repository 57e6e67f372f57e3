package mocks

import (
	"context"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

// ProjectStore mock
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]domain.Project)
	return projects, args.Error(1)
}

func (m *ProjectStore) ProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

func (m *ProjectStore) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	saved, _ := args.Get(0).(*domain.Project)
	return saved, args.Error(1)
}

func (m *ProjectStore) UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	updated, _ := args.Get(0).(*domain.Project)
	return updated, args.Error(1)
}

func (m *ProjectStore) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
