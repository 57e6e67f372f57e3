package dtos

import "github.com/just-nibble/folio-service/internal/domain"

// PortfolioInput is the dashboard form for a gallery item. Tags is comma
// separated.
type PortfolioInput struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=design-graphics motion-graphics 3d-graphics"`
	Description string `json:"description" validate:"required"`
	Tags        string `json:"tags" validate:"required"`
	ImageURL    string `json:"imageUrl" label:"image" validate:"required,url"`
}

// CertificationInput is the dashboard form for a certification. An empty
// Year defaults to the current year.
type CertificationInput struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=pdf image"`
	Issuer      string `json:"issuer" validate:"required"`
	Year        string `json:"year" validate:"omitempty,year"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl" label:"file" validate:"required,url"`
}

// ProjectInput is the dashboard form for a project. Technologies and
// Features are comma separated.
type ProjectInput struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Technologies  string `json:"technologies" validate:"required"`
	Features      string `json:"features" validate:"required"`
	LiveURL       string `json:"liveUrl" validate:"required,url"`
	Category      string `json:"category" validate:"required"`
	ScreenshotURL string `json:"screenshotUrl" label:"screenshot" validate:"omitempty,url"`
}

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is the transient message shown after a dashboard action.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type PortfolioMutation struct {
	Notice Notice                 `json:"notice"`
	Item   *domain.PortfolioItem  `json:"item,omitempty"`
	Items  []domain.PortfolioItem `json:"items"`
}

type CertificationMutation struct {
	Notice Notice                 `json:"notice"`
	Item   *domain.Certification  `json:"item,omitempty"`
	Items  []domain.Certification `json:"items"`
}

type ProjectMutation struct {
	Notice Notice           `json:"notice"`
	Item   *domain.Project  `json:"item,omitempty"`
	Items  []domain.Project `json:"items"`
}

// GalleryItem is one lightbox frame with its wrap-around neighbours.
type GalleryItem struct {
	Item  domain.PortfolioItem `json:"item"`
	Index int                  `json:"index"`
	Total int                  `json:"total"`
	Prev  int                  `json:"prev"`
	Next  int                  `json:"next"`
}
