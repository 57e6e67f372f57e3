package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/media"
	"github.com/just-nibble/folio-service/pkg/validator"
)

// Uploader starts a media upload. *media.Uploader satisfies it.
type Uploader interface {
	Start(ctx context.Context, f media.File, c media.Constraints) (*media.Upload, error)
}

// UploadKinds maps the form a file comes from to its constraints.
var UploadKinds = map[string]media.Constraints{
	"portfolio":           {MaxSizeMB: 5, Accept: []string{"image/*"}, Folder: "portfolio"},
	"project":             {MaxSizeMB: 5, Accept: []string{"image/*"}, Folder: "projects"},
	"certification-pdf":   {MaxSizeMB: 10, Accept: []string{"application/pdf"}, Folder: "certifications"},
	"certification-image": {MaxSizeMB: 5, Accept: []string{"image/*"}, Folder: "certifications"},
}

type UploadUsecase interface {
	Upload(ctx context.Context, kind string, f media.File) (*dtos.UploadResponse, error)
}

type uploadUsecase struct {
	uploader Uploader
	log      log.Log
}

func NewUploadUsecase(uploader Uploader, logger log.Log) UploadUsecase {
	return &uploadUsecase{uploader: uploader, log: logger.Component("upload")}
}

func (uc *uploadUsecase) Upload(ctx context.Context, kind string, f media.File) (*dtos.UploadResponse, error) {
	constraints, ok := UploadKinds[kind]
	if !ok {
		kinds := make([]string, 0, len(UploadKinds))
		for k := range UploadKinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		return nil, &validator.ValidationError{Fields: map[string]string{
			"kind": "kind must be one of: " + strings.Join(kinds, ", "),
		}}
	}

	up, err := uc.uploader.Start(ctx, f, constraints)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", f.Name).Str("kind", kind).Msg("upload rejected")
		return nil, err
	}

	for pct := range up.Progress() {
		uc.log.Debug().Str("file", f.Name).Int("progress", pct).Msg("uploading")
	}

	res, err := up.Wait()
	if err != nil {
		return nil, err
	}
	return &dtos.UploadResponse{URL: res.URL, PublicID: res.PublicID}, nil
}
