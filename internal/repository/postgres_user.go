package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/errcodes"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) UserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row User
	if err := s.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return row.ToDomain(), nil
}

func (s *GormUserStore) UserByID(ctx context.Context, id string) (*domain.User, error) {
	var row User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return row.ToDomain(), nil
}

// SaveUser inserts the user, or replaces the password of an existing account
// with the same email.
func (s *GormUserStore) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	row := ToGormUser(&user)

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return s.UserByEmail(ctx, user.Email)
}
