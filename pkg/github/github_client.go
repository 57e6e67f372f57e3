package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/repoview"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/log"
)

const (
	DefaultBaseURL = "https://api.github.com"

	reposPerPage    = 100
	maxRepoPages    = 10
	activityPerPage = 10
	pinnedCount     = 6
	languageWorkers = 4
)

// Client reads a single user's public GitHub data. Its methods never return
// errors: any failure is logged and reported as nil or an empty value, which
// callers render as an empty state.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Username   string
	Token      string
	log        log.Log
}

// NewClient creates a Client for the configured user with a request timeout.
func NewClient(cfg config.GitHubConfig, logger log.Log) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(base, "/"),
		Username:   cfg.Username,
		Token:      cfg.Token,
		log:        logger.Component("github"),
	}
}

// GetUserProfile fetches GET /users/{username}.
func (c *Client) GetUserProfile(ctx context.Context) *domain.UserProfile {
	var profile domain.UserProfile
	endpoint := fmt.Sprintf("%s/users/%s", c.BaseURL, url.PathEscape(c.Username))
	if _, err := c.getJSON(ctx, endpoint, &profile); err != nil {
		c.warn(err, "fetch profile")
		return nil
	}
	return &profile
}

// GetUserRepos fetches every public repository of the user, following the
// Link header, ordered by stars descending then most recently updated.
func (c *Client) GetUserRepos(ctx context.Context) []domain.Repository {
	repos := []domain.Repository{}
	next := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", c.BaseURL, url.PathEscape(c.Username), reposPerPage)

	for page := 0; next != "" && page < maxRepoPages; page++ {
		var batch []domain.Repository
		header, err := c.getJSON(ctx, next, &batch)
		if err != nil {
			c.warn(err, "fetch repositories")
			return []domain.Repository{}
		}
		repos = append(repos, batch...)
		next = extractNextLink(header.Get("Link"))
	}

	SortByPopularity(repos)
	return repos
}

// SortByPopularity orders repositories by stars descending, breaking ties by
// the most recent update.
func SortByPopularity(repos []domain.Repository) {
	sort.SliceStable(repos, func(i, j int) bool {
		if repos[i].StargazersCount != repos[j].StargazersCount {
			return repos[i].StargazersCount > repos[j].StargazersCount
		}
		return repos[i].UpdatedAt.After(repos[j].UpdatedAt)
	})
}

// GetRepoLanguages fetches the byte count per language of one repository.
func (c *Client) GetRepoLanguages(ctx context.Context, repo string) map[string]int {
	languages := map[string]int{}
	endpoint := fmt.Sprintf("%s/repos/%s/%s/languages", c.BaseURL, url.PathEscape(c.Username), url.PathEscape(repo))
	if _, err := c.getJSON(ctx, endpoint, &languages); err != nil {
		c.warn(err, "fetch languages of "+repo)
		return map[string]int{}
	}
	return languages
}

// GetUserStats aggregates the repository list.
func (c *Client) GetUserStats(ctx context.Context) domain.Stats {
	return repoview.Aggregate(c.GetUserRepos(ctx))
}

// GetRecentActivity fetches the latest public events.
func (c *Client) GetRecentActivity(ctx context.Context) []domain.Event {
	events := []domain.Event{}
	endpoint := fmt.Sprintf("%s/users/%s/events/public?per_page=%d", c.BaseURL, url.PathEscape(c.Username), activityPerPage)
	if _, err := c.getJSON(ctx, endpoint, &events); err != nil {
		c.warn(err, "fetch activity")
		return []domain.Event{}
	}
	return events
}

// GetPinnedRepos returns the most popular repositories.
func (c *Client) GetPinnedRepos(ctx context.Context) []domain.Repository {
	repos := c.GetUserRepos(ctx)
	if len(repos) > pinnedCount {
		repos = repos[:pinnedCount]
	}
	return repos
}

// GetLanguageTotals sums language bytes across the user's own (non-fork)
// repositories. Repositories are queried concurrently; a failed repository
// contributes nothing.
func (c *Client) GetLanguageTotals(ctx context.Context) map[string]int {
	p := pool.NewWithResults[map[string]int]().
		WithContext(ctx).
		WithMaxGoroutines(languageWorkers)

	for _, repo := range c.GetUserRepos(ctx) {
		if repo.Fork {
			continue
		}
		name := repo.Name
		p.Go(func(ctx context.Context) (map[string]int, error) {
			return c.GetRepoLanguages(ctx, name), nil
		})
	}

	totals := map[string]int{}
	results, _ := p.Wait()
	for _, langs := range results {
		for lang, bytes := range langs {
			totals[lang] += bytes
		}
	}
	return totals
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("GET %s: received status code %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, errors.Wrapf(err, "decode %s", endpoint)
	}
	return resp.Header, nil
}

func (c *Client) warn(err error, action string) {
	c.log.Warn().Err(err).Str("user", c.Username).Msgf("github: %s failed", action)
}

// extractNextLink parses the Link header to find the "next" URL
func extractNextLink(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	links := strings.Split(linkHeader, ",")
	for _, link := range links {
		parts := strings.Split(link, ";")
		if len(parts) >= 2 && strings.TrimSpace(parts[1]) == `rel="next"` {
			target := strings.TrimSpace(parts[0])
			return strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
		}
	}

	return ""
}
