// Package media uploads files to the hosted media CDN. Size and type
// constraints are enforced before any network traffic; accepted uploads are
// streamed as multipart bodies with progress reporting.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/log"
)

const (
	bytesPerMB = 1024 * 1024
	sniffLen   = 3072
)

// Constraints restrict what may be uploaded. Accept holds exact MIME types
// or wildcard groups such as "image/*". Folder is the destination folder.
type Constraints struct {
	MaxSizeMB float64
	Accept    []string
	Folder    string
}

// File is an upload candidate. ContentType is the type declared by the
// client and is only used when the content itself is not recognised.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Result identifies the stored asset.
type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Uploader struct {
	HTTPClient   *http.Client
	BaseURL      string
	CloudName    string
	UploadPreset string
	log          log.Log
}

func NewUploader(cfg config.MediaConfig, logger log.Log) *Uploader {
	client := &http.Client{}
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	return &Uploader{
		HTTPClient:   client,
		BaseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		CloudName:    cfg.CloudName,
		UploadPreset: cfg.UploadPreset,
		log:          logger.Component("media"),
	}
}

// Configured reports whether uploads can be sent at all.
func (u *Uploader) Configured() bool {
	return u.CloudName != "" && u.UploadPreset != ""
}

// Check validates f against c without touching the network. It returns the
// effective MIME type and a reader that replays the sniffed prefix.
func Check(f File, c Constraints) (string, io.Reader, error) {
	if c.MaxSizeMB > 0 && float64(f.Size)/bytesPerMB > c.MaxSizeMB {
		return "", nil, errors.Wrapf(errcodes.ErrFileTooLarge, "%s is %s, limit is %s",
			f.Name, humanize.IBytes(uint64(f.Size)), humanize.IBytes(uint64(c.MaxSizeMB*bytesPerMB)))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, errors.Wrapf(err, "read %s", f.Name)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	contentType := baseType(detected.String())
	if detected.Is("application/octet-stream") && f.ContentType != "" {
		contentType = baseType(f.ContentType)
	}

	if len(c.Accept) > 0 && !Accepts(c.Accept, contentType) {
		return "", nil, errors.Wrapf(errcodes.ErrUnsupportedFileType, "%s is %s, accepted: %s",
			f.Name, contentType, strings.Join(c.Accept, ", "))
	}

	return contentType, io.MultiReader(bytes.NewReader(head), f.Content), nil
}

// Accepts reports whether contentType matches one of the patterns.
func Accepts(patterns []string, contentType string) bool {
	for _, p := range patterns {
		if strings.HasSuffix(p, "/*") {
			if strings.HasPrefix(contentType, strings.TrimSuffix(p, "*")) {
				return true
			}
			continue
		}
		if strings.EqualFold(p, contentType) {
			return true
		}
	}
	return false
}

func baseType(t string) string {
	return strings.ToLower(strings.TrimSpace(strings.SplitN(t, ";", 2)[0]))
}

// Start validates f and begins streaming it. Constraint violations are
// returned immediately; transfer errors surface from Upload.Wait. Cancelling
// ctx aborts the transfer.
func (u *Uploader) Start(ctx context.Context, f File, c Constraints) (*Upload, error) {
	contentType, body, err := Check(f, c)
	if err != nil {
		return nil, err
	}
	if !u.Configured() {
		return nil, errcodes.ErrUploadNotConfigured
	}

	up := &Upload{
		progress: make(chan int, 101),
		done:     make(chan struct{}),
		last:     -1,
	}
	up.report(0)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(u.writeBody(mw, f, contentType, body, c.Folder, up))
	}()

	endpoint := fmt.Sprintf("%s/v1_1/%s/upload", u.BaseURL, u.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		pr.Close()
		return nil, errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	go func() {
		res, err := u.send(req)
		pr.Close()
		if err != nil {
			u.log.Error().Err(err).Str("file", f.Name).Msg("upload failed")
		} else {
			up.report(100)
			u.log.Info().Str("file", f.Name).Str("public_id", res.PublicID).Msg("upload complete")
		}
		up.finish(res, err)
	}()

	return up, nil
}

func (u *Uploader) writeBody(mw *multipart.Writer, f File, contentType string, body io.Reader, folder string, up *Upload) error {
	if err := mw.WriteField("upload_preset", u.UploadPreset); err != nil {
		return err
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return err
		}
	}

	part, err := mw.CreatePart(filePartHeader(f.Name, contentType))
	if err != nil {
		return err
	}
	counter := &progressReader{r: body, total: f.Size, up: up}
	if _, err := io.Copy(part, counter); err != nil {
		return err
	}
	return mw.Close()
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *Uploader) send(req *http.Request) (Result, error) {
	resp, err := u.HTTPClient.Do(req)
	if err != nil {
		return Result{}, errors.Wrap(err, "send upload")
	}
	defer resp.Body.Close()

	var body uploadResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := body.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return Result{}, errors.Wrap(errcodes.ErrUploadFailed, msg)
	}
	if decodeErr != nil {
		return Result{}, errors.Wrap(errcodes.ErrUploadFailed, "decode upload response")
	}
	if body.SecureURL == "" {
		return Result{}, errors.Wrap(errcodes.ErrUploadFailed, "response has no secure_url")
	}
	return Result{URL: body.SecureURL, PublicID: body.PublicID}, nil
}

// Upload is an in-flight transfer.
type Upload struct {
	progress chan int
	done     chan struct{}

	mu     sync.Mutex
	last   int
	closed bool
	result Result
	err    error
}

// Progress yields non-decreasing percentages from 0 to 100 and is closed
// when the upload finishes. Reading it is optional.
func (up *Upload) Progress() <-chan int {
	return up.progress
}

// Wait blocks until the upload finishes.
func (up *Upload) Wait() (Result, error) {
	<-up.done
	return up.result, up.err
}

// report sends pct if it is larger than anything sent so far. The channel
// holds 101 values so a send never blocks.
func (up *Upload) report(pct int) {
	up.mu.Lock()
	defer up.mu.Unlock()
	if up.closed || pct <= up.last {
		return
	}
	if pct > 100 {
		pct = 100
	}
	up.last = pct
	up.progress <- pct
}

func (up *Upload) finish(res Result, err error) {
	up.mu.Lock()
	up.result, up.err = res, err
	up.closed = true
	close(up.progress)
	up.mu.Unlock()
	close(up.done)
}

type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	up    *Upload
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.total > 0 {
		// 100 is reserved for a confirmed upload
		pct := int(p.read * 99 / p.total)
		if pct > 99 {
			pct = 99
		}
		p.up.report(pct)
	}
	return n, err
}
