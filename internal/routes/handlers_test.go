package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/folio-service/internal/auth"
	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/repository/mocks"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/github"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/media"
)

const userID = "0d7c7c5e-2b0f-4b55-9a8e-64c1c1f3a001"

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type fixture struct {
	handler        http.Handler
	portfolios     *mocks.PortfolioStore
	certifications *mocks.CertificationStore
	projects       *mocks.ProjectStore
	users          *mocks.UserStore
	sessions       *auth.Sessions
	cfg            config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(gh.Close)

	cfg := config.Default()
	cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.GitHub.Username = "octocat"
	cfg.GitHub.BaseURL = gh.URL

	f := &fixture{
		portfolios:     new(mocks.PortfolioStore),
		certifications: new(mocks.CertificationStore),
		projects:       new(mocks.ProjectStore),
		users:          new(mocks.UserStore),
		sessions:       auth.NewSessions(cfg.Auth),
		cfg:            cfg,
	}
	l := log.Nop()
	f.handler = NewRouter(cfg, Deps{
		GitHub:         usecases.NewGitHubUsecase(github.NewClient(cfg.GitHub, l)),
		Portfolios:     usecases.NewPortfolioUsecase(f.portfolios, l),
		Certifications: usecases.NewCertificationUsecase(f.certifications, l),
		Projects:       usecases.NewProjectUsecase(f.projects, l),
		Auth:           usecases.NewAuthUsecase(f.users, f.sessions, l),
		Uploads:        usecases.NewUploadUsecase(media.NewUploader(cfg.Media, l), l),
	}, l)
	return f
}

func (f *fixture) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (f *fixture) signedIn(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	user := domain.User{ID: userID, Email: "owner@example.com"}
	f.users.On("UserByID", mock.Anything, userID).Return(&user, nil)
	token, _, err := f.sessions.Issue(user)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: f.cfg.Auth.CookieName, Value: token})
	return req
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
}

func TestGitHubOutageReturnsEmptyData(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, httptest.NewRequest(http.MethodGet, "/api/github/repos?filter=starred", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Repos   []domain.Repository `json:"repos"`
		Filters []string            `json:"filters"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Repos)
	assert.Equal(t, []string{"all", "starred"}, data.Filters)
}

func TestDashboardRequiresSession(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, httptest.NewRequest(http.MethodPost, "/api/dashboard/projects", jsonBody(t, map[string]string{})))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"redirect":"/dashboard/login"}`, string(env.Data))
	f.projects.AssertNotCalled(t, "SaveProject", mock.Anything, mock.Anything)
}

func TestCreateCertificationWithoutFile(t *testing.T) {
	f := newFixture(t)
	req := f.signedIn(t, httptest.NewRequest(http.MethodPost, "/api/dashboard/certifications", jsonBody(t, map[string]string{
		"name": "CKA", "type": "pdf", "issuer": "CNCF", "year": "2024",
	})))

	rec, env := f.do(t, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "file is required", env.Errors["file"])
	f.certifications.AssertNotCalled(t, "SaveCertification", mock.Anything, mock.Anything)
}

func TestCreateProjectReturnsNoticeAndList(t *testing.T) {
	f := newFixture(t)
	saved := domain.Project{ID: userID, Name: "Shop", Technologies: []string{"React", "Node", "CSS"}}
	f.projects.On("SaveProject", mock.Anything, mock.Anything).Return(&saved, nil)
	f.projects.On("ListProjects", mock.Anything).Return([]domain.Project{saved}, nil)
	req := f.signedIn(t, httptest.NewRequest(http.MethodPost, "/api/dashboard/projects", jsonBody(t, map[string]string{
		"name": "Shop", "description": "store", "technologies": "React, Node, , CSS",
		"features": "Cart", "liveUrl": "https://shop.example.com", "category": "web",
	})))

	rec, env := f.do(t, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var data struct {
		Notice struct{ Level, Message string } `json:"notice"`
		Items  []domain.Project               `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "success", data.Notice.Level)
	assert.Len(t, data.Items, 1)
}

func TestDeleteFailureKeepsList(t *testing.T) {
	f := newFixture(t)
	f.portfolios.On("DeletePortfolio", mock.Anything, userID).Return(context.DeadlineExceeded)
	f.portfolios.On("ListPortfolios", mock.Anything, domain.PortfolioCategory("")).Return([]domain.PortfolioItem{{ID: userID}}, nil)
	req := f.signedIn(t, httptest.NewRequest(http.MethodDelete, "/api/dashboard/portfolios/"+userID, nil))

	rec, env := f.do(t, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to delete portfolio item", env.Message)
	assert.Contains(t, string(env.Data), userID)
}

func TestGalleryOutOfRange(t *testing.T) {
	f := newFixture(t)
	f.portfolios.On("ListPortfolios", mock.Anything, domain.CategoryDesignGraphics).Return([]domain.PortfolioItem{{Title: "a"}}, nil)

	rec, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/portfolios/gallery/design-graphics/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env := f.do(t, httptest.NewRequest(http.MethodGet, "/api/portfolios/gallery/design-graphics/0", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"prev":0`)
}

func TestSignInSetsCookie(t *testing.T) {
	f := newFixture(t)
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	f.users.On("UserByEmail", mock.Anything, "owner@example.com").
		Return(&domain.User{ID: userID, Email: "owner@example.com", PasswordHash: hash}, nil)

	rec, _ := f.do(t, httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", jsonBody(t, map[string]string{
		"email": "owner@example.com", "password": "pw",
	})))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, f.cfg.Auth.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].Expires.After(time.Now()))
}

func TestUploadRejectsWhenUnconfigured(t *testing.T) {
	f := newFixture(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "shot.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/uploads?kind=portfolio", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec, _ := f.do(t, f.signedIn(t, req))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
