package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/just-nibble/folio-service/internal/auth"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/internal/routes"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/github"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/media"
)

const shutdownTimeout = 15 * time.Second

//nolint:gochecknoglobals // Cobra boilerplate
var migrateOnStart bool

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply the schema before serving")
}

// buildDeps assembles the use cases behind the router.
func buildDeps(cfg config.Config, db *gorm.DB, logger log.Log) (routes.Deps, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return routes.Deps{}, errors.Wrap(err, "failed to access database handle")
	}

	sessions := auth.NewSessions(cfg.Auth)
	return routes.Deps{
		GitHub:         usecases.NewGitHubUsecase(github.NewClient(cfg.GitHub, logger)),
		Portfolios:     usecases.NewPortfolioUsecase(repository.NewGormPortfolioStore(db), logger),
		Certifications: usecases.NewCertificationUsecase(repository.NewGormCertificationStore(db), logger),
		Projects:       usecases.NewProjectUsecase(repository.NewGormProjectStore(db), logger),
		Auth:           usecases.NewAuthUsecase(repository.NewGormUserStore(db), sessions, logger),
		Uploads:        usecases.NewUploadUsecase(media.NewUploader(cfg.Media, logger), logger),
		DB:             sqlDB,
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setupGitHub()
	if err != nil {
		return err
	}

	db, err := repository.Open(cfg.Database, logger)
	if err != nil {
		return err
	}
	if migrateOnStart {
		if err = repository.Migrate(db); err != nil {
			return err
		}
	}

	deps, err := buildDeps(cfg, db, logger)
	if err != nil {
		return err
	}
	if !cfg.UploadEnabled() {
		logger.Warn().Msg("media credentials not configured, uploads will be rejected")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           routes.NewRouter(cfg, deps, logger),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	return nil
}
