package repoview

import (
	"testing"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	repos := []domain.Repository{
		{Name: "a", Language: "Go", StargazersCount: 3, ForksCount: 1},
		{Name: "b", Language: "Go", StargazersCount: 0, ForksCount: 2},
		{Name: "c", Language: "", StargazersCount: 4},
	}

	stats := Aggregate(repos)

	assert.Equal(t, 3, stats.TotalRepos)
	assert.Equal(t, 7, stats.TotalStars)
	assert.Equal(t, 3, stats.TotalForks)
	assert.Equal(t, 3, stats.PublicRepos)
	assert.Equal(t, map[string]int{"Go": 2}, stats.Languages)
}

func TestAggregateLanguageCountsSumToNonEmpty(t *testing.T) {
	repos := sampleRepos()

	stats := Aggregate(repos)

	sum := 0
	for _, n := range stats.Languages {
		sum += n
	}
	nonEmpty := 0
	for _, r := range repos {
		if r.Language != "" {
			nonEmpty++
		}
	}
	assert.Equal(t, nonEmpty, sum)
	assert.Equal(t, len(repos), stats.TotalRepos)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Zero(t, stats.TotalRepos)
	assert.Zero(t, stats.TotalStars)
	assert.NotNil(t, stats.Languages)
	assert.Empty(t, stats.Languages)
}

func TestAggregateStarsAreAdditive(t *testing.T) {
	repos := sampleRepos()
	before := Aggregate(repos).TotalStars

	after := Aggregate(append(repos, domain.Repository{Name: "new", StargazersCount: 7})).TotalStars

	assert.Equal(t, before+7, after)
}
