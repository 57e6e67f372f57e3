package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/errcodes"
)

// GormPortfolioStore is a GORM-based implementation of PortfolioStore
type GormPortfolioStore struct {
	db *gorm.DB
}

// NewGormPortfolioStore initializes a new GormPortfolioStore
func NewGormPortfolioStore(db *gorm.DB) PortfolioStore {
	return &GormPortfolioStore{db: db}
}

func (s *GormPortfolioStore) ListPortfolios(ctx context.Context, category domain.PortfolioCategory) ([]domain.PortfolioItem, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}

	query := s.db.WithContext(ctx).Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}

	var rows []Portfolio
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]domain.PortfolioItem, 0, len(rows))
	for i := range rows {
		item, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *GormPortfolioStore) PortfolioByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}

	var row Portfolio
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return row.ToDomain()
}

func (s *GormPortfolioStore) SavePortfolio(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	row := ToGormPortfolio(&item)

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain()
}

func (s *GormPortfolioStore) UpdatePortfolio(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}
	row := ToGormPortfolio(&item)

	tx := s.db.WithContext(ctx).Model(&Portfolio{}).Where("id = ?", item.ID).
		Select("title", "category", "description", "tags", "image_url", "updated_at").
		Updates(row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return s.PortfolioByID(ctx, item.ID)
}

func (s *GormPortfolioStore) DeletePortfolio(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Portfolio{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errcodes.ErrNoRecordFound
	}
	return nil
}
