package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/repoview"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/github"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	reposSearch string
	reposFilter string
	jsonOutput  bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List public repositories with the site's search and filter",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setupGitHub()
		if err != nil {
			return err
		}
		uc := usecases.NewGitHubUsecase(github.NewClient(cfg.GitHub, logger))
		list := uc.Repos(cmd.Context(), reposSearch, repoview.Filter(reposFilter))

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		return renderRepos(cmd.OutOrStdout(), list, time.Now())
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show repository totals and top languages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setupGitHub()
		if err != nil {
			return err
		}
		uc := usecases.NewGitHubUsecase(github.NewClient(cfg.GitHub, logger))
		stats := uc.Stats(cmd.Context())

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), stats)
		}
		return renderStats(cmd.OutOrStdout(), stats)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	reposCmd.Flags().StringVarP(&reposSearch, "search", "s", "", "match name or description")
	reposCmd.Flags().StringVarP(&reposFilter, "filter", "f", string(repoview.FilterAll), "all, starred or a language")
	reposCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func renderRepos(w io.Writer, list dtos.RepoListResponse, now time.Time) error {
	if len(list.Repos) == 0 {
		_, err := fmt.Fprintf(w, "No repositories match (0 of %d).\n", list.Total)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("NAME", "LANGUAGE", "STARS", "FORKS", "UPDATED")

	for _, r := range list.Repos {
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		t.Row(r.Name, lang, humanize.Comma(int64(r.StargazersCount)), humanize.Comma(int64(r.ForksCount)), humanize.RelTime(r.UpdatedAt, now, "ago", "from now"))
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d repositories · filters: %v\n", len(list.Repos), list.Total, list.Filters)
	return err
}

func renderStats(w io.Writer, stats dtos.StatsResponse) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LANGUAGE", "REPOS")
	for _, l := range stats.TopLanguages {
		t.Row(l.Language, strconv.Itoa(l.Count))
	}

	badges := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "BADGE", "DETAIL")
	for _, b := range stats.Badges {
		mark := "·"
		if b.Earned {
			mark = "✓"
		}
		badges.Row(mark, b.Title, b.Description)
	}

	_, err := fmt.Fprintf(w, "repositories %s · public %s · stars %s · forks %s\n%s\nachievements %d/%d\n%s\n",
		humanize.Comma(int64(stats.TotalRepos)),
		humanize.Comma(int64(stats.PublicRepos)),
		humanize.Comma(int64(stats.TotalStars)),
		humanize.Comma(int64(stats.TotalForks)),
		t.Render(),
		stats.BadgesEarned, len(stats.Badges),
		badges.Render(),
	)
	return err
}
