package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/just-nibble/folio-service/internal/http/docs"
	"github.com/just-nibble/folio-service/internal/http/handlers"
	"github.com/just-nibble/folio-service/internal/http/middleware"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/log"
)

// Deps are the use cases the router exposes.
type Deps struct {
	GitHub         usecases.GitHubUsecase
	Portfolios     usecases.PortfolioUsecase
	Certifications usecases.CertificationUsecase
	Projects       usecases.ProjectUsecase
	Auth           usecases.AuthUsecase
	Uploads        usecases.UploadUsecase
	DB             handlers.Pinger
}

func NewRouter(cfg config.Config, deps Deps, logger log.Log) http.Handler {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.AccessLog(logger.Component("http")))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	health := handlers.NewHealthHandler(deps.DB)
	github := handlers.NewGitHubHandler(deps.GitHub)
	portfolios := handlers.NewPortfolioHandler(deps.Portfolios)
	certifications := handlers.NewCertificationHandler(deps.Certifications)
	projects := handlers.NewProjectHandler(deps.Projects)
	authHandler := handlers.NewAuthHandler(deps.Auth, cfg.Auth)
	uploads := handlers.NewUploadHandler(deps.Uploads)
	requireSession := middleware.RequireSession(deps.Auth, cfg.Auth.CookieName)

	router.Get("/healthz", health.Health)

	router.Route("/api", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Use(chimw.Timeout(30 * time.Second))
			r.Get("/profile", github.Profile)
			r.Get("/repos", github.Repos)
			r.Get("/repos/{repo}/languages", github.RepoLanguages)
			r.Get("/stats", github.Stats)
			r.Get("/activity", github.Activity)
			r.Get("/pinned", github.Pinned)
			r.Get("/languages", github.Languages)
		})

		r.Get("/portfolios", portfolios.List)
		r.Get("/portfolios/gallery/{category}/{index}", portfolios.Gallery)
		r.Get("/certifications", certifications.List)
		r.Get("/projects", projects.List)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-in", authHandler.SignIn)
			r.Post("/sign-out", authHandler.SignOut)
			r.With(requireSession).Get("/me", authHandler.Me)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(requireSession)

			r.Post("/portfolios", portfolios.Create)
			r.Put("/portfolios/{id}", portfolios.Update)
			r.Delete("/portfolios/{id}", portfolios.Delete)

			r.Post("/certifications", certifications.Create)
			r.Put("/certifications/{id}", certifications.Update)
			r.Delete("/certifications/{id}", certifications.Delete)

			r.Post("/projects", projects.Create)
			r.Put("/projects/{id}", projects.Update)
			r.Delete("/projects/{id}", projects.Delete)

			r.Post("/uploads", uploads.Upload)
		})
	})

	// Serve Swagger documentation
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	return router
}
