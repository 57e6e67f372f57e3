package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/media"
	"github.com/just-nibble/folio-service/pkg/validator"
)

func pdfFile(size int) media.File {
	data := make([]byte, size)
	copy(data, "%PDF-1.7\n")
	return media.File{Name: "cert.pdf", ContentType: "application/pdf", Size: int64(size), Content: bytes.NewReader(data)}
}

func TestUploadCertificationPDF(t *testing.T) {
	var folder string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		folder = r.FormValue("folder")
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn/cert.pdf", "public_id": "certifications/cert"})
	}))
	defer srv.Close()

	uploader := media.NewUploader(config.MediaConfig{BaseURL: srv.URL, CloudName: "demo", UploadPreset: "p"}, log.Nop())
	uc := NewUploadUsecase(uploader, log.Nop())

	res, err := uc.Upload(context.Background(), "certification-pdf", pdfFile(2048))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/cert.pdf", res.URL)
	assert.Equal(t, "certifications", folder)
}

func TestUploadPDFCeilingDependsOnKind(t *testing.T) {
	uploader := media.NewUploader(config.MediaConfig{BaseURL: "http://127.0.0.1:1", CloudName: "demo", UploadPreset: "p"}, log.Nop())
	uc := NewUploadUsecase(uploader, log.Nop())

	_, err := uc.Upload(context.Background(), "certification-pdf", pdfFile(11*1024*1024))
	assert.ErrorIs(t, err, errcodes.ErrFileTooLarge)

	_, err = uc.Upload(context.Background(), "portfolio", pdfFile(1024))
	assert.ErrorIs(t, err, errcodes.ErrUnsupportedFileType)
}

func TestUploadUnknownKind(t *testing.T) {
	uc := NewUploadUsecase(media.NewUploader(config.MediaConfig{}, log.Nop()), log.Nop())

	_, err := uc.Upload(context.Background(), "avatar", pdfFile(10))

	var verr *validator.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields["kind"], "certification-image")
}
