package seeder

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/log"
)

// SeedDatabase creates the dashboard owner from configuration when the users
// table is empty. Nothing is done if no admin credentials are configured.
func SeedDatabase(ctx context.Context, db *gorm.DB, accounts usecases.AuthUsecase, cfg config.AuthConfig, logger log.Log) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Info().Msg("no admin credentials configured, skipping seed")
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&repository.User{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		logger.Debug().Int64("users", count).Msg("users present, skipping seed")
		return nil
	}

	user, err := accounts.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to seed admin")
	}

	logger.Info().Str("email", user.Email).Msg("seeded dashboard owner")
	return nil
}
