package repoview

import "github.com/just-nibble/folio-service/internal/domain"

// Aggregate folds a repository list into totals and a per-language count.
// Repositories without a primary language are counted in the totals only.
func Aggregate(repos []domain.Repository) domain.Stats {
	stats := domain.Stats{Languages: make(map[string]int)}
	for _, repo := range repos {
		stats.TotalRepos++
		stats.TotalStars += repo.StargazersCount
		stats.TotalForks += repo.ForksCount
		if !repo.Private {
			stats.PublicRepos++
		}
		if repo.Language != "" {
			stats.Languages[repo.Language]++
		}
	}
	return stats
}
