package errcodes

import "errors"

var (
	ErrNoRecordFound    = errors.New("no record found")
	ErrContextCancelled = errors.New("context cancelled")
	ErrMalformedRecord  = errors.New("stored record failed validation")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrSessionExpired     = errors.New("session expired")

	ErrFileTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedFileType = errors.New("file type is not accepted")
	ErrUploadNotConfigured = errors.New("media upload is not configured")
	ErrUploadFailed        = errors.New("upload failed")

	ErrGalleryEmpty    = errors.New("gallery has no items")
	ErrIndexOutOfRange = errors.New("index out of range")
)
