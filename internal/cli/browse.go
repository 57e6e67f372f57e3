package cli

import (
	"github.com/spf13/cobra"

	"github.com/just-nibble/folio-service/internal/preferences"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/internal/tui"
	"github.com/just-nibble/folio-service/internal/usecases"
)

//nolint:gochecknoglobals // Cobra boilerplate
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio galleries in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := repository.Open(cfg.Database, logger)
		if err != nil {
			return err
		}
		portfolios := usecases.NewPortfolioUsecase(repository.NewGormPortfolioStore(db), logger)

		var saver tui.PreferenceSaver
		store, prefs, err := preferences.Open(cfg.Preferences.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("using default preferences")
		} else {
			saver = store
		}
		return tui.Run(tui.New(cmd.Context(), portfolios.List, prefs, saver))
	},
}
