package handlers

import (
	"net/http"

	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/media"
	"github.com/just-nibble/folio-service/pkg/response"
)

// maxUploadBody bounds the request body; per-kind limits are stricter.
const maxUploadBody = 11 << 20

type UploadHandler struct {
	uploadUsecase usecases.UploadUsecase
}

func NewUploadHandler(uploadUsecase usecases.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase}
}

// Upload godoc
// @Summary  Upload a file to the media CDN
// @Tags     dashboard
// @Accept   multipart/form-data
// @Produce  json
// @Param    kind query string true "portfolio, project, certification-pdf or certification-image"
// @Param    file formData file true "file to upload"
// @Success  201 {object} dtos.UploadResponse
// @Router   /api/dashboard/uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		response.ErrorResponse(w, http.StatusRequestEntityTooLarge, "File is too large or the form is malformed")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		response.FieldErrorResponse(w, http.StatusUnprocessableEntity, "Please choose a file",
			map[string]string{"file": "file is required"})
		return
	}
	defer file.Close()

	res, err := h.uploadUsecase.Upload(r.Context(), r.URL.Query().Get("kind"), media.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, res)
}
