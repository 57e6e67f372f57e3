package domain

import "time"

// PortfolioCategory is the gallery a portfolio item belongs to.
type PortfolioCategory string

const (
	CategoryDesignGraphics PortfolioCategory = "design-graphics"
	CategoryMotionGraphics PortfolioCategory = "motion-graphics"
	Category3DGraphics     PortfolioCategory = "3d-graphics"
)

// PortfolioCategories lists the galleries in display order.
var PortfolioCategories = []PortfolioCategory{
	CategoryDesignGraphics,
	CategoryMotionGraphics,
	Category3DGraphics,
}

// Valid reports whether c is a known category.
func (c PortfolioCategory) Valid() bool {
	for _, known := range PortfolioCategories {
		if c == known {
			return true
		}
	}
	return false
}

type PortfolioItem struct {
	ID          string            `json:"id" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Category    PortfolioCategory `json:"category" validate:"required,oneof=design-graphics motion-graphics 3d-graphics"`
	Description string            `json:"description" validate:"required"`
	Tags        []string          `json:"tags"`
	ImageURL    string            `json:"imageUrl" validate:"required,url"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CertificationType selects which upload constraints apply to the file.
type CertificationType string

const (
	CertificationPDF   CertificationType = "pdf"
	CertificationImage CertificationType = "image"
)

type Certification struct {
	ID          string            `json:"id" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Type        CertificationType `json:"type" validate:"required,oneof=pdf image"`
	Issuer      string            `json:"issuer" validate:"required"`
	Year        string            `json:"year" validate:"required,year"`
	Description string            `json:"description,omitempty"`
	FileURL     string            `json:"fileUrl" validate:"required,url"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type Project struct {
	ID            string    `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Technologies  []string  `json:"technologies"`
	Features      []string  `json:"features"`
	LiveURL       string    `json:"liveUrl" validate:"required,url"`
	Category      string    `json:"category" validate:"required"`
	ScreenshotURL string    `json:"screenshotUrl,omitempty" validate:"omitempty,url"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
