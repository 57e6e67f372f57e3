package repoview

import (
	"testing"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRepos() []domain.Repository {
	return []domain.Repository{
		{Name: "api", Language: "Go", StargazersCount: 3, Description: "REST backend"},
		{Name: "site", Language: "TypeScript", StargazersCount: 0},
		{Name: "cli", Language: "Go", StargazersCount: 0, Description: "terminal API client"},
		{Name: "dotfiles", Language: "", StargazersCount: 1},
		{Name: "ml", Language: "Python", StargazersCount: 2},
		{Name: "game", Language: "Rust"},
		{Name: "notes", Language: "Markdown"},
		{Name: "gfx", Language: "GLSL"},
	}
}

func TestMatches(t *testing.T) {
	repo := domain.Repository{Name: "Folio", Description: "Personal Site"}

	assert.True(t, Matches(repo, ""))
	assert.True(t, Matches(repo, "fol"))
	assert.True(t, Matches(repo, "SITE"))
	assert.False(t, Matches(repo, "blog"))
	assert.False(t, Matches(domain.Repository{Name: "x"}, "desc"))
}

func TestApplySearchAndLanguage(t *testing.T) {
	repos := sampleRepos()

	got := Apply(repos, "api", Filter("Go"))

	require.Len(t, got, 2)
	assert.Equal(t, "api", got[0].Name)
	assert.Equal(t, "cli", got[1].Name)
}

func TestApplyStarred(t *testing.T) {
	got := Apply(sampleRepos(), "", FilterStarred)

	names := make([]string, 0, len(got))
	for _, r := range got {
		assert.Greater(t, r.StargazersCount, 0)
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"api", "dotfiles", "ml"}, names)
}

func TestApplyAllIsSubsetInOrder(t *testing.T) {
	repos := sampleRepos()

	assert.Equal(t, repos, Apply(repos, "", FilterAll))

	got := Apply(repos, "i", FilterAll)
	j := 0
	for _, r := range got {
		for j < len(repos) && repos[j].Name != r.Name {
			j++
		}
		require.Less(t, j, len(repos), "result out of input order")
		assert.True(t, Matches(r, "i"))
	}
}

func TestApplyUnknownLanguage(t *testing.T) {
	assert.Empty(t, Apply(sampleRepos(), "", Filter("COBOL")))
}

func TestApplyIdempotent(t *testing.T) {
	once := Apply(sampleRepos(), "o", FilterAll)
	assert.Equal(t, once, Apply(once, "o", FilterAll))
}

func TestLanguagePills(t *testing.T) {
	repos := sampleRepos()

	assert.Equal(t, []string{"Go", "TypeScript", "Python", "Rust", "Markdown"}, LanguagePills(repos, 0))
	assert.Equal(t, []string{"Go", "TypeScript"}, LanguagePills(repos, 2))
	assert.Empty(t, LanguagePills(nil, 5))
}

func TestFilters(t *testing.T) {
	assert.Equal(t, []string{"all", "starred", "Go"}, Filters([]string{"Go"}))
}

func TestApplyStarredTwoRepos(t *testing.T) {
	repos := []domain.Repository{
		{Name: "alpha", StargazersCount: 5, Language: "Go"},
		{Name: "beta", StargazersCount: 0, Language: "Rust"},
	}

	got := Apply(repos, "", FilterStarred)

	require.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Name)
}
