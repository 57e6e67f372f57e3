// Package repoview derives the repository list views shown on the GitHub
// page: the search/filter result, the language pills and the aggregate stats.
package repoview

import (
	"strings"

	"github.com/just-nibble/folio-service/internal/domain"
)

// Filter selects a subset of repositories: FilterAll, FilterStarred or a
// primary language name.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterStarred Filter = "starred"

	DefaultPillLimit = 5
)

// Matches reports whether the repository name or description contains term,
// ignoring case. An empty term matches everything.
func Matches(repo domain.Repository, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(repo.Name), term) ||
		strings.Contains(strings.ToLower(repo.Description), term)
}

func (f Filter) accepts(repo domain.Repository) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterStarred:
		return repo.StargazersCount > 0
	default:
		return repo.Language == string(f)
	}
}

// Apply returns the repositories matching both term and filter, in input
// order. The input slice is not modified.
func Apply(repos []domain.Repository, term string, filter Filter) []domain.Repository {
	out := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if Matches(repo, term) && filter.accepts(repo) {
			out = append(out, repo)
		}
	}
	return out
}

// LanguagePills lists distinct non-empty primary languages in first-seen
// order, at most limit of them. limit <= 0 uses DefaultPillLimit.
func LanguagePills(repos []domain.Repository, limit int) []string {
	if limit <= 0 {
		limit = DefaultPillLimit
	}
	seen := make(map[string]struct{})
	pills := make([]string, 0, limit)
	for _, repo := range repos {
		if len(pills) == limit {
			break
		}
		if repo.Language == "" {
			continue
		}
		if _, ok := seen[repo.Language]; ok {
			continue
		}
		seen[repo.Language] = struct{}{}
		pills = append(pills, repo.Language)
	}
	return pills
}

// Filters is the full filter bar: all, starred, then the language pills.
func Filters(pills []string) []string {
	out := make([]string, 0, len(pills)+2)
	out = append(out, string(FilterAll), string(FilterStarred))
	return append(out, pills...)
}
