package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/errcodes"
)

// GormCertificationStore is a GORM-based implementation of CertificationStore
type GormCertificationStore struct {
	db *gorm.DB
}

func NewGormCertificationStore(db *gorm.DB) CertificationStore {
	return &GormCertificationStore{db: db}
}

func (s *GormCertificationStore) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}

	var rows []Certification
	if err := s.db.WithContext(ctx).Order("year desc").Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	certs := make([]domain.Certification, 0, len(rows))
	for i := range rows {
		cert, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		certs = append(certs, *cert)
	}
	return certs, nil
}

func (s *GormCertificationStore) CertificationByID(ctx context.Context, id string) (*domain.Certification, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}

	var row Certification
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return row.ToDomain()
}

func (s *GormCertificationStore) SaveCertification(ctx context.Context, cert domain.Certification) (*domain.Certification, error) {
	if cert.ID == "" {
		cert.ID = uuid.NewString()
	}
	row := ToGormCertification(&cert)

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain()
}

func (s *GormCertificationStore) UpdateCertification(ctx context.Context, cert domain.Certification) (*domain.Certification, error) {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, errcodes.ErrContextCancelled
	}
	row := ToGormCertification(&cert)

	tx := s.db.WithContext(ctx).Model(&Certification{}).Where("id = ?", cert.ID).
		Select("name", "type", "issuer", "year", "description", "file_url", "updated_at").
		Updates(row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return s.CertificationByID(ctx, cert.ID)
}

func (s *GormCertificationStore) DeleteCertification(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Certification{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errcodes.ErrNoRecordFound
	}
	return nil
}
