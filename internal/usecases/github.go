package usecases

import (
	"context"
	"time"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/repoview"
)

const (
	topLanguageCount    = 10
	activityCommitLimit = 2
)

// GitHubReader is the read side of the GitHub client. Implementations never
// fail; they return empty values instead.
type GitHubReader interface {
	GetUserProfile(ctx context.Context) *domain.UserProfile
	GetUserRepos(ctx context.Context) []domain.Repository
	GetRepoLanguages(ctx context.Context, repo string) map[string]int
	GetRecentActivity(ctx context.Context) []domain.Event
	GetPinnedRepos(ctx context.Context) []domain.Repository
	GetLanguageTotals(ctx context.Context) map[string]int
}

type GitHubUsecase interface {
	Profile(ctx context.Context) *domain.UserProfile
	Repos(ctx context.Context, search string, filter repoview.Filter) dtos.RepoListResponse
	Stats(ctx context.Context) dtos.StatsResponse
	Activity(ctx context.Context) []dtos.ActivityItem
	Pinned(ctx context.Context) []domain.Repository
	Languages(ctx context.Context) map[string]int
	RepoLanguages(ctx context.Context, repo string) map[string]int
}

type gitHubUsecase struct {
	client GitHubReader
}

func NewGitHubUsecase(client GitHubReader) GitHubUsecase {
	return &gitHubUsecase{client: client}
}

func (uc *gitHubUsecase) Profile(ctx context.Context) *domain.UserProfile {
	return uc.client.GetUserProfile(ctx)
}

// Repos applies the search and filter to the full list. The language pills
// always come from the unfiltered list so the filter bar stays stable.
func (uc *gitHubUsecase) Repos(ctx context.Context, search string, filter repoview.Filter) dtos.RepoListResponse {
	all := uc.client.GetUserRepos(ctx)
	pills := repoview.LanguagePills(all, repoview.DefaultPillLimit)
	filtered := repoview.Apply(all, search, filter)

	return dtos.RepoListResponse{
		Repos:     filtered,
		Languages: pills,
		Filters:   repoview.Filters(pills),
		Total:     len(all),
	}
}

func (uc *gitHubUsecase) Stats(ctx context.Context) dtos.StatsResponse {
	stats := repoview.Aggregate(uc.client.GetUserRepos(ctx))
	badges := repoview.Badges(stats)
	return dtos.StatsResponse{
		Stats:        stats,
		TopLanguages: stats.TopLanguages(topLanguageCount),
		Badges:       badges,
		BadgesEarned: repoview.EarnedCount(badges),
	}
}

func (uc *gitHubUsecase) Activity(ctx context.Context) []dtos.ActivityItem {
	events := uc.client.GetRecentActivity(ctx)
	items := make([]dtos.ActivityItem, 0, len(events))
	for _, ev := range events {
		items = append(items, dtos.ActivityItem{
			ID:          ev.ID,
			Type:        ev.Type,
			Repo:        ev.Repo.Name,
			Description: ev.Describe(),
			Commits:     ev.CommitMessages(activityCommitLimit),
			CreatedAt:   ev.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}

func (uc *gitHubUsecase) Pinned(ctx context.Context) []domain.Repository {
	return uc.client.GetPinnedRepos(ctx)
}

func (uc *gitHubUsecase) Languages(ctx context.Context) map[string]int {
	return uc.client.GetLanguageTotals(ctx)
}

func (uc *gitHubUsecase) RepoLanguages(ctx context.Context, repo string) map[string]int {
	return uc.client.GetRepoLanguages(ctx, repo)
}
