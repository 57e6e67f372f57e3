package domain

import "sort"

// Stats are aggregates derived from a user's repository list.
type Stats struct {
	TotalRepos  int            `json:"total_repos"`
	TotalStars  int            `json:"total_stars"`
	TotalForks  int            `json:"total_forks"`
	PublicRepos int            `json:"public_repos"`
	Languages   map[string]int `json:"languages"`
}

// LanguageCount is one row of a sorted language tally.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// TopLanguages orders the tally by count descending, then name, and keeps at
// most n rows. n <= 0 keeps all.
func (s Stats) TopLanguages(n int) []LanguageCount {
	out := make([]LanguageCount, 0, len(s.Languages))
	for lang, count := range s.Languages {
		out = append(out, LanguageCount{Language: lang, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Language < out[j].Language
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Badge is an achievement derived from Stats.
type Badge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}
