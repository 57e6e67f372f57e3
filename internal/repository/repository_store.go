package repository

import (
	"context"

	"github.com/just-nibble/folio-service/internal/domain"
)

// PortfolioStore persists gallery items. List is ordered newest first; an
// empty category lists every gallery.
type PortfolioStore interface {
	ListPortfolios(ctx context.Context, category domain.PortfolioCategory) ([]domain.PortfolioItem, error)
	PortfolioByID(ctx context.Context, id string) (*domain.PortfolioItem, error)
	SavePortfolio(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error)
	UpdatePortfolio(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error)
	DeletePortfolio(ctx context.Context, id string) error
}

// CertificationStore persists certifications, listed by year descending.
type CertificationStore interface {
	ListCertifications(ctx context.Context) ([]domain.Certification, error)
	CertificationByID(ctx context.Context, id string) (*domain.Certification, error)
	SaveCertification(ctx context.Context, cert domain.Certification) (*domain.Certification, error)
	UpdateCertification(ctx context.Context, cert domain.Certification) (*domain.Certification, error)
	DeleteCertification(ctx context.Context, id string) error
}

// ProjectStore persists projects, listed newest first.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ProjectByID(ctx context.Context, id string) (*domain.Project, error)
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// UserStore holds dashboard accounts.
type UserStore interface {
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}
