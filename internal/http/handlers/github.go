package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/just-nibble/folio-service/internal/repoview"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/response"
)

// GitHubHandler serves the owner's GitHub data. GitHub failures surface as
// empty payloads with status 200.
type GitHubHandler struct {
	gitHubUsecase usecases.GitHubUsecase
}

func NewGitHubHandler(gitHubUsecase usecases.GitHubUsecase) *GitHubHandler {
	return &GitHubHandler{gitHubUsecase: gitHubUsecase}
}

// Profile godoc
// @Summary  GitHub profile of the site owner
// @Tags     github
// @Produce  json
// @Success  200 {object} domain.UserProfile
// @Router   /api/github/profile [get]
func (h *GitHubHandler) Profile(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, h.gitHubUsecase.Profile(r.Context()))
}

// Repos godoc
// @Summary  Repository list with search and filter
// @Tags     github
// @Produce  json
// @Param    search query string false "case-insensitive match on name or description"
// @Param    filter query string false "all, starred or a language name"
// @Success  200 {object} dtos.RepoListResponse
// @Router   /api/github/repos [get]
func (h *GitHubHandler) Repos(w http.ResponseWriter, r *http.Request) {
	filter := repoview.Filter(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = repoview.FilterAll
	}
	res := h.gitHubUsecase.Repos(r.Context(), r.URL.Query().Get("search"), filter)
	response.SuccessResponse(w, http.StatusOK, res)
}

func (h *GitHubHandler) Stats(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, h.gitHubUsecase.Stats(r.Context()))
}

func (h *GitHubHandler) Activity(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, h.gitHubUsecase.Activity(r.Context()))
}

func (h *GitHubHandler) Pinned(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, h.gitHubUsecase.Pinned(r.Context()))
}

func (h *GitHubHandler) Languages(w http.ResponseWriter, r *http.Request) {
	response.SuccessResponse(w, http.StatusOK, h.gitHubUsecase.Languages(r.Context()))
}

func (h *GitHubHandler) RepoLanguages(w http.ResponseWriter, r *http.Request) {
	repo := chi.URLParam(r, "repo")
	if repo == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "Repository name is required")
		return
	}
	response.SuccessResponse(w, http.StatusOK, h.gitHubUsecase.RepoLanguages(r.Context(), repo))
}
