package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/response"
)

type ProjectHandler struct {
	projectUsecase usecases.ProjectUsecase
}

func NewProjectHandler(projectUsecase usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectUsecase.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dtos.ProjectInput
	if !decodeJSON(w, r, &input) {
		return
	}
	res, err := h.projectUsecase.Create(r.Context(), input)
	writeMutation(w, http.StatusCreated, res, err, projectNotice(res))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dtos.ProjectInput
	if !decodeJSON(w, r, &input) {
		return
	}
	res, err := h.projectUsecase.Update(r.Context(), chi.URLParam(r, "id"), input)
	writeMutation(w, http.StatusOK, res, err, projectNotice(res))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.projectUsecase.Delete(r.Context(), chi.URLParam(r, "id"))
	writeMutation(w, http.StatusOK, res, err, projectNotice(res))
}

func projectNotice(res *dtos.ProjectMutation) *dtos.Notice {
	if res == nil {
		return nil
	}
	return &res.Notice
}
