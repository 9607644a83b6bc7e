package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nhonn/secret-key-manager-sub001/authenticator"
	"github.com/nhonn/secret-key-manager-sub001/config"
	"github.com/nhonn/secret-key-manager-sub001/controllers"
	"github.com/nhonn/secret-key-manager-sub001/database"
	authmiddleware "github.com/nhonn/secret-key-manager-sub001/middleware"
	"github.com/nhonn/secret-key-manager-sub001/repositories"
	"github.com/nhonn/secret-key-manager-sub001/services"
)

func main() {
	// Load configuration from .env file and environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize the identity provider
	provider, err := authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
		IssuerURL:    cfg.OIDC.IssuerURL,
		ClientID:     cfg.OIDC.ClientID,
		ClientSecret: cfg.OIDC.ClientSecret,
		CallbackURL:  cfg.OIDC.CallbackURL,
		Scopes:       cfg.OIDC.Scopes,
	})
	if err != nil {
		log.Fatalf("Failed to initialize OpenID provider: %v", err)
	}

	platformCfg := authenticator.PlatformConfig{
		BaseURL: cfg.Platform.BaseURL,
		APIKey:  cfg.Platform.APIKey,
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, provider, platformCfg)

	// Set up router
	r, err := setupRouter(ctrl, srvs, cfg.UseHTTPS)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	fmt.Printf("Secret manager console starting on port %s\n", cfg.Port)
	fmt.Printf("Database: %s\n", cfg.DatabasePath)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, useSecureCookies bool) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // generous timeout to cover callback reconciliation
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "skm_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "secret-key-manager"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Use(authmiddleware.AuditLogger(srvs.Audit))

		// Project management routes
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", ctrl.Project.Index)
			r.Post("/", ctrl.Project.Create)
			r.Get("/{projectID}/edit", ctrl.Project.Edit)
			r.Post("/{projectID}", ctrl.Project.Update)
			r.Post("/{projectID}/delete", ctrl.Project.Delete)

			// Secrets within a project
			r.Route("/{projectID}/secrets", func(r chi.Router) {
				r.Get("/", ctrl.Secret.Index)
				r.Post("/", ctrl.Secret.Create)
				r.Get("/{id}/edit", ctrl.Secret.Edit)
				r.Post("/{id}", ctrl.Secret.Update)
				r.Post("/{id}/delete", ctrl.Secret.Delete)
			})
		})

		// Audit trail review
		r.Get("/audit", ctrl.Audit.Index)
	})

	return r, nil
}
