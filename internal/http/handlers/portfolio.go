package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/response"
)

type PortfolioHandler struct {
	portfolioUsecase usecases.PortfolioUsecase
}

func NewPortfolioHandler(portfolioUsecase usecases.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUsecase: portfolioUsecase}
}

// List godoc
// @Summary  Portfolio items, newest first
// @Tags     portfolio
// @Produce  json
// @Param    category query string false "design-graphics, motion-graphics or 3d-graphics"
// @Success  200 {array} domain.PortfolioItem
// @Router   /api/portfolios [get]
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolioUsecase.List(r.Context(), domain.PortfolioCategory(r.URL.Query().Get("category")))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, items)
}

// Gallery godoc
// @Summary  One lightbox frame with its prev and next indices
// @Tags     portfolio
// @Produce  json
// @Param    category path string true "gallery category"
// @Param    index path int true "zero-based item index"
// @Success  200 {object} dtos.GalleryItem
// @Router   /api/portfolios/gallery/{category}/{index} [get]
func (h *PortfolioHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return
	}
	frame, err := h.portfolioUsecase.Gallery(r.Context(), domain.PortfolioCategory(chi.URLParam(r, "category")), index)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, frame)
}

func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dtos.PortfolioInput
	if !decodeJSON(w, r, &input) {
		return
	}
	res, err := h.portfolioUsecase.Create(r.Context(), input)
	writeMutation(w, http.StatusCreated, res, err, noticeOf(res))
}

func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dtos.PortfolioInput
	if !decodeJSON(w, r, &input) {
		return
	}
	res, err := h.portfolioUsecase.Update(r.Context(), chi.URLParam(r, "id"), input)
	writeMutation(w, http.StatusOK, res, err, noticeOf(res))
}

func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.portfolioUsecase.Delete(r.Context(), chi.URLParam(r, "id"))
	writeMutation(w, http.StatusOK, res, err, noticeOf(res))
}

func noticeOf(res *dtos.PortfolioMutation) *dtos.Notice {
	if res == nil {
		return nil
	}
	return &res.Notice
}
