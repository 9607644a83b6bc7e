package controllers

import (
	"html/template"
	"net/http"

	"github.com/nhonn/secret-key-manager-sub001/authenticator"
	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/services"
)

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	// Create a new template set with only the templates we need
	tmpl := template.New(templateName)
	tmpl.Funcs(template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"datetime": models.FormatDateTime,
	})

	// Parse layout and page template
	_, err := tmpl.ParseFiles("templates/layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Set status code if not OK
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Project   *ProjectController
	Secret    *SecretController
	Audit     *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, provider authenticator.Provider, platformCfg authenticator.PlatformConfig) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(provider, platformCfg, services.Provisioning),
		Dashboard: NewDashboardController(services),
		Project:   NewProjectController(services),
		Secret:    NewSecretController(services),
		Audit:     NewAuditController(services),
	}
}
