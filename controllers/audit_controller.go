package controllers

import (
	"net/http"
	"strconv"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/services"
)

// AuditController handles audit trail review requests
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{
		services: services,
	}
}

// Index handles GET /audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	entries, pagination, err := c.services.Audit.GetPage(r.Context(), page)
	if err != nil {
		http.Error(w, "Failed to load audit trail: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Entries     []models.AuditLogEntry
		Pagination  models.Pagination
	}{
		Title:       "Audit Trail",
		CurrentPage: "audit",
		Entries:     entries,
		Pagination:  pagination,
	}

	renderTemplate(w, "audit", "templates/audit.html", templateData)
}
