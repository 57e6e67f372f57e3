package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/errcodes"
)

// GormProjectStore is a GORM-based implementation of ProjectStore
type GormProjectStore struct {
	db *gorm.DB
}

func NewGormProjectStore(db *gorm.DB) ProjectStore {
	return &GormProjectStore{db: db}
}

func (s *GormProjectStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}

	var rows []Project
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		project, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, nil
}

func (s *GormProjectStore) ProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}

	var row Project
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return row.ToDomain()
}

func (s *GormProjectStore) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	row := ToGormProject(&project)

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain()
}

func (s *GormProjectStore) UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}
	row := ToGormProject(&project)

	tx := s.db.WithContext(ctx).Model(&Project{}).Where("id = ?", project.ID).
		Select("name", "description", "technologies", "features", "live_url", "category", "screenshot_url", "updated_at").
		Updates(row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return s.ProjectByID(ctx, project.ID)
}

func (s *GormProjectStore) DeleteProject(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Project{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errcodes.ErrNoRecordFound
	}
	return nil
}
