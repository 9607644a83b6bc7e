package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/services"
	"github.com/nhonn/secret-key-manager-sub001/userctx"
)

// DashboardController handles the landing and dashboard pages
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET / and shows the landing page or the dashboard depending
// on authentication state
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	userID, _ := sess.Get("user_id").(string)

	if userID == "" {
		templateData := struct {
			Title       string
			CurrentPage string
		}{
			Title:       "Welcome",
			CurrentPage: "home",
		}
		renderTemplate(w, "landing", "templates/landing.html", templateData)
		return
	}

	email, _ := sess.Get("user_email").(string)
	ctx := userctx.WithUser(r.Context(), userID, email)

	projects, err := c.services.Project.GetProjectsForUser(ctx, userID)
	if err != nil {
		http.Error(w, "Failed to load dashboard: "+err.Error(), http.StatusInternalServerError)
		return
	}

	secretCount := 0
	for _, project := range projects {
		secretCount += project.SecretCount
	}

	recent, err := c.services.Audit.GetRecent(ctx, 10)
	if err != nil {
		http.Error(w, "Failed to load recent activity: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title        string
		CurrentPage  string
		UserEmail    string
		ProjectCount int
		SecretCount  int
		Projects     []models.Project
		Recent       []models.AuditLogEntry
	}{
		Title:        "Dashboard",
		CurrentPage:  "home",
		UserEmail:    email,
		ProjectCount: len(projects),
		SecretCount:  secretCount,
		Projects:     projects,
		Recent:       recent,
	}

	renderTemplate(w, "dashboard", "templates/dashboard.html", templateData)
}
