package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/log"
)

// MockTransport is a mock implementation of http.RoundTripper for testing purposes
type MockTransport struct {
	RoundTripper func(req *http.Request) (*http.Response, error)
}

func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripper(req)
}

func jsonResponse(t *testing.T, status int, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(raw)),
	}
}

func newTestClient(baseURL string, rt http.RoundTripper) *Client {
	c := NewClient(config.GitHubConfig{Username: "octocat", BaseURL: baseURL}, log.Nop())
	if rt != nil {
		c.HTTPClient = &http.Client{Transport: rt}
	}
	return c
}

func TestGetUserProfileSuccess(t *testing.T) {
	client := newTestClient(DefaultBaseURL, &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, DefaultBaseURL+"/users/octocat", req.URL.String())
			return jsonResponse(t, http.StatusOK, map[string]interface{}{
				"login": "octocat", "name": "The Octocat", "public_repos": 8,
			}), nil
		},
	})

	profile := client.GetUserProfile(context.Background())

	require.NotNil(t, profile)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Equal(t, 8, profile.PublicRepos)
}

func TestGetUserProfileNotFoundIsNil(t *testing.T) {
	client := newTestClient(DefaultBaseURL, &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(t, http.StatusNotFound, map[string]string{"message": "Not Found"}), nil
		},
	})

	assert.Nil(t, client.GetUserProfile(context.Background()))
}

func TestNetworkErrorsDegradeToEmpty(t *testing.T) {
	client := newTestClient(DefaultBaseURL, &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("connection refused")
		},
	})
	ctx := context.Background()

	assert.Nil(t, client.GetUserProfile(ctx))
	assert.NotNil(t, client.GetUserRepos(ctx))
	assert.Empty(t, client.GetUserRepos(ctx))
	assert.Empty(t, client.GetRecentActivity(ctx))
	assert.Empty(t, client.GetRepoLanguages(ctx, "x"))
	assert.Empty(t, client.GetPinnedRepos(ctx))

	stats := client.GetUserStats(ctx)
	assert.Zero(t, stats.TotalRepos)
	assert.NotNil(t, stats.Languages)
}

func TestGetUserReposFollowsLinkHeaderAndSorts(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			w.Header().Set("Link", fmt.Sprintf(`<%s/users/octocat/repos?page=2>; rel="next", <%s/users/octocat/repos?page=2>; rel="last"`, srv.URL, srv.URL))
			_ = json.NewEncoder(w).Encode([]domain.Repository{
				{Name: "old", StargazersCount: 1, UpdatedAt: now.Add(-time.Hour)},
				{Name: "zero", StargazersCount: 0, UpdatedAt: now},
			})
			return
		}
		_ = json.NewEncoder(w).Encode([]domain.Repository{
			{Name: "new", StargazersCount: 1, UpdatedAt: now},
			{Name: "top", StargazersCount: 9, UpdatedAt: now.Add(-48 * time.Hour)},
		})
	}))
	defer srv.Close()

	repos := newTestClient(srv.URL, nil).GetUserRepos(context.Background())

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"top", "new", "old", "zero"}, names)
}

func TestGetUserReposStopsAfterPageLimit(t *testing.T) {
	var calls int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/octocat/repos?page=%d>; rel="next"`, srv.URL, n+1))
		_ = json.NewEncoder(w).Encode([]domain.Repository{{Name: fmt.Sprintf("r%d", n)}})
	}))
	defer srv.Close()

	repos := newTestClient(srv.URL, nil).GetUserRepos(context.Background())

	assert.Len(t, repos, maxRepoPages)
	assert.Equal(t, int32(maxRepoPages), atomic.LoadInt32(&calls))
}

func TestGetPinnedReposReturnsTopSix(t *testing.T) {
	client := newTestClient(DefaultBaseURL, &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			repos := make([]domain.Repository, 0, 8)
			for i := 0; i < 8; i++ {
				repos = append(repos, domain.Repository{Name: fmt.Sprintf("r%d", i), StargazersCount: i})
			}
			return jsonResponse(t, http.StatusOK, repos), nil
		},
	})

	pinned := client.GetPinnedRepos(context.Background())

	require.Len(t, pinned, 6)
	assert.Equal(t, "r7", pinned[0].Name)
	assert.Equal(t, "r2", pinned[5].Name)
}

func TestGetRecentActivitySendsTokenAndPageSize(t *testing.T) {
	client := newTestClient(DefaultBaseURL, &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/users/octocat/events/public", req.URL.Path)
			assert.Equal(t, "10", req.URL.Query().Get("per_page"))
			assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
			return jsonResponse(t, http.StatusOK, []map[string]interface{}{
				{"id": "1", "type": "WatchEvent", "repo": map[string]string{"name": "a/b"}, "payload": map[string]string{}},
			}), nil
		},
	})
	client.Token = "secret"

	events := client.GetRecentActivity(context.Background())

	require.Len(t, events, 1)
	assert.Equal(t, "Starred a/b", events[0].Describe())
}

func TestGetLanguageTotalsSkipsForksAndFailures(t *testing.T) {
	client := newTestClient(DefaultBaseURL, &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			switch {
			case strings.HasSuffix(req.URL.Path, "/repos"):
				return jsonResponse(t, http.StatusOK, []domain.Repository{
					{Name: "api"}, {Name: "site"}, {Name: "forked", Fork: true}, {Name: "broken"},
				}), nil
			case strings.HasSuffix(req.URL.Path, "/api/languages"):
				return jsonResponse(t, http.StatusOK, map[string]int{"Go": 100, "Shell": 5}), nil
			case strings.HasSuffix(req.URL.Path, "/site/languages"):
				return jsonResponse(t, http.StatusOK, map[string]int{"Go": 10, "CSS": 7}), nil
			case strings.HasSuffix(req.URL.Path, "/forked/languages"):
				t.Errorf("fork languages requested")
			}
			return jsonResponse(t, http.StatusInternalServerError, map[string]string{}), nil
		},
	})

	totals := client.GetLanguageTotals(context.Background())

	assert.Equal(t, map[string]int{"Go": 110, "Shell": 5, "CSS": 7}, totals)
}

func TestExtractNextLink(t *testing.T) {
	header := `<https://api.github.com/user/1/repos?page=2>; rel="next", <https://api.github.com/user/1/repos?page=5>; rel="last"`

	assert.Equal(t, "https://api.github.com/user/1/repos?page=2", extractNextLink(header))
	assert.Equal(t, "", extractNextLink(`<https://x/?page=1>; rel="prev"`))
	assert.Equal(t, "", extractNextLink(""))
}
