package dtos

import "time"

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadResponse is returned once the file is stored on the media CDN.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
