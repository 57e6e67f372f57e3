package dtos

import "github.com/just-nibble/folio-service/internal/domain"

// RepoListResponse is the filtered repository list plus the filter bar.
type RepoListResponse struct {
	Repos     []domain.Repository `json:"repos"`
	Languages []string            `json:"languages"`
	Filters   []string            `json:"filters"`
	Total     int                 `json:"total"`
}

type StatsResponse struct {
	domain.Stats
	TopLanguages []domain.LanguageCount `json:"top_languages"`
	Badges       []domain.Badge         `json:"badges"`
	BadgesEarned int                    `json:"badges_earned"`
}

type ActivityItem struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Repo        string   `json:"repo"`
	Description string   `json:"description"`
	Commits     []string `json:"commits,omitempty"`
	CreatedAt   string   `json:"created_at"`
}
