package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/response"
)

type CertificationHandler struct {
	certificationUsecase usecases.CertificationUsecase
}

func NewCertificationHandler(certificationUsecase usecases.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{certificationUsecase: certificationUsecase}
}

func (h *CertificationHandler) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certificationUsecase.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, certs)
}

func (h *CertificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dtos.CertificationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	res, err := h.certificationUsecase.Create(r.Context(), input)
	writeMutation(w, http.StatusCreated, res, err, certNotice(res))
}

func (h *CertificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dtos.CertificationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	res, err := h.certificationUsecase.Update(r.Context(), chi.URLParam(r, "id"), input)
	writeMutation(w, http.StatusOK, res, err, certNotice(res))
}

func (h *CertificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.certificationUsecase.Delete(r.Context(), chi.URLParam(r, "id"))
	writeMutation(w, http.StatusOK, res, err, certNotice(res))
}

func certNotice(res *dtos.CertificationMutation) *dtos.Notice {
	if res == nil {
		return nil
	}
	return &res.Notice
}
