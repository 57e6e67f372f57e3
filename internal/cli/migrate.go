package cli

import (
	"github.com/spf13/cobra"

	"github.com/just-nibble/folio-service/internal/auth"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/internal/seeder"
	"github.com/just-nibble/folio-service/internal/usecases"
)

//nolint:gochecknoglobals // Cobra boilerplate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema and seed the dashboard owner",
	Long: `migrate creates or updates the portfolios, certifications, projects and
users tables, then creates the dashboard owner from auth.admin_email and
auth.admin_password when no user exists yet.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := repository.Open(cfg.Database, logger)
		if err != nil {
			return err
		}
		if err = repository.Migrate(db); err != nil {
			return err
		}
		logger.Info().Msg("schema up to date")

		accounts := usecases.NewAuthUsecase(repository.NewGormUserStore(db), auth.NewSessions(cfg.Auth), logger)
		return seeder.SeedDatabase(cmd.Context(), db, accounts, cfg.Auth, logger.Component("seeder"))
	},
}
