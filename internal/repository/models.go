package repository

import (
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/validator"
)

type Portfolio struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"not null"`
	Category    string         `gorm:"index;not null"`
	Description string         `gorm:"not null"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	ImageURL    string         `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
}

func (Portfolio) TableName() string { return "portfolios" }

type Certification struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Issuer      string `gorm:"not null"`
	Year        string `gorm:"size:4;index;not null"`
	Description string
	FileURL     string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Certification) TableName() string { return "certifications" }

type Project struct {
	ID            string         `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"not null"`
	Description   string         `gorm:"not null"`
	Technologies  pq.StringArray `gorm:"type:text[]"`
	Features      pq.StringArray `gorm:"type:text[]"`
	LiveURL       string         `gorm:"not null"`
	Category      string         `gorm:"not null"`
	ScreenshotURL string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (Project) TableName() string { return "projects" }

type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

// Models lists every table owned by the service, in migration order.
func Models() []interface{} {
	return []interface{}{&User{}, &Portfolio{}, &Certification{}, &Project{}}
}

// checkRecord rejects stored rows that would not pass write validation.
func checkRecord(kind, id string, v interface{}) error {
	if err := validator.Struct(v); err != nil {
		return errors.Wrapf(errcodes.ErrMalformedRecord, "%s %s: %v", kind, id, err)
	}
	return nil
}

func stringSlice(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

func ToGormPortfolio(item *domain.PortfolioItem) *Portfolio {
	return &Portfolio{
		ID:          item.ID,
		Title:       item.Title,
		Category:    string(item.Category),
		Description: item.Description,
		Tags:        pq.StringArray(item.Tags),
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (p *Portfolio) ToDomain() (*domain.PortfolioItem, error) {
	item := &domain.PortfolioItem{
		ID:          p.ID,
		Title:       p.Title,
		Category:    domain.PortfolioCategory(p.Category),
		Description: p.Description,
		Tags:        stringSlice(p.Tags),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	return item, checkRecord("portfolio", p.ID, item)
}

func ToGormCertification(cert *domain.Certification) *Certification {
	return &Certification{
		ID:          cert.ID,
		Name:        cert.Name,
		Type:        string(cert.Type),
		Issuer:      cert.Issuer,
		Year:        cert.Year,
		Description: cert.Description,
		FileURL:     cert.FileURL,
		CreatedAt:   cert.CreatedAt,
		UpdatedAt:   cert.UpdatedAt,
	}
}

func (c *Certification) ToDomain() (*domain.Certification, error) {
	cert := &domain.Certification{
		ID:          c.ID,
		Name:        c.Name,
		Type:        domain.CertificationType(c.Type),
		Issuer:      c.Issuer,
		Year:        c.Year,
		Description: c.Description,
		FileURL:     c.FileURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	return cert, checkRecord("certification", c.ID, cert)
}

func ToGormProject(project *domain.Project) *Project {
	return &Project{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		Technologies:  pq.StringArray(project.Technologies),
		Features:      pq.StringArray(project.Features),
		LiveURL:       project.LiveURL,
		Category:      project.Category,
		ScreenshotURL: project.ScreenshotURL,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func (p *Project) ToDomain() (*domain.Project, error) {
	project := &domain.Project{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Technologies:  stringSlice(p.Technologies),
		Features:      stringSlice(p.Features),
		LiveURL:       p.LiveURL,
		Category:      p.Category,
		ScreenshotURL: p.ScreenshotURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	return project, checkRecord("project", p.ID, project)
}

func ToGormUser(user *domain.User) *User {
	return &User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
