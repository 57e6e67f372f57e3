package repoview

import (
	"fmt"

	"github.com/just-nibble/folio-service/internal/domain"
)

// Badges derives the achievement list from stats, in display order. Every
// badge is returned; Earned marks the unlocked ones.
func Badges(stats domain.Stats) []domain.Badge {
	languages := len(stats.Languages)

	return []domain.Badge{
		{ID: 1, Title: "Code Enthusiast", Description: fmt.Sprintf("%d public repositories", stats.TotalRepos), Earned: stats.TotalRepos > 5},
		{ID: 2, Title: "Star Collector", Description: fmt.Sprintf("%d stars earned", stats.TotalStars), Earned: stats.TotalStars > 0},
		{ID: 3, Title: "Open Source Contributor", Description: fmt.Sprintf("%d repositories forked", stats.TotalForks), Earned: stats.TotalForks > 0},
		{ID: 4, Title: "Multi-Language Master", Description: fmt.Sprintf("Proficient in %d languages", languages), Earned: languages > 3},
		{ID: 5, Title: "Active Developer", Description: "Consistent contributions", Earned: stats.TotalRepos > 10},
		{ID: 6, Title: "Repository Champion", Description: "Quality over quantity", Earned: stats.TotalStars > 5},
	}
}

// EarnedCount is the number of unlocked badges.
func EarnedCount(badges []domain.Badge) int {
	n := 0
	for _, b := range badges {
		if b.Earned {
			n++
		}
	}
	return n
}
