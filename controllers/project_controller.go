package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/services"
	"github.com/nhonn/secret-key-manager-sub001/userctx"
)

// ProjectController handles project management requests
type ProjectController struct {
	services *services.Services
}

// NewProjectController creates a new project controller
func NewProjectController(services *services.Services) *ProjectController {
	return &ProjectController{
		services: services,
	}
}

// Index handles GET /projects
func (c *ProjectController) Index(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())

	projects, err := c.services.Project.GetProjectsForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load projects: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Projects    []models.Project
		Form        *models.ProjectForm
	}{
		Title:       "Projects",
		CurrentPage: "projects",
		Error:       r.URL.Query().Get("error"),
		Projects:    projects,
		Form:        &models.ProjectForm{},
	}

	renderTemplate(w, "projects", "templates/projects.html", templateData)
}

// Create handles POST /projects
func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID := userctx.GetUserID(r.Context())
	form := &models.ProjectForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	_, err := c.services.Project.CreateProject(r.Context(), userID, form)
	if err != nil {
		// Reload page with form data and error
		projects, loadErr := c.services.Project.GetProjectsForUser(r.Context(), userID)
		if loadErr != nil {
			http.Error(w, "Failed to load projects: "+loadErr.Error(), http.StatusInternalServerError)
			return
		}

		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Projects    []models.Project
			Form        *models.ProjectForm
		}{
			Title:       "Projects",
			CurrentPage: "projects",
			Error:       err.Error(),
			Projects:    projects,
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "project_create_error", "templates/projects.html", templateData)
		return
	}

	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

// Edit handles GET /projects/{id}/edit
func (c *ProjectController) Edit(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	id := chi.URLParam(r, "projectID")

	project, err := c.services.Project.GetProjectByID(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Project not found: "+err.Error(), http.StatusNotFound)
		return
	}

	form := &models.ProjectForm{
		Name:        project.Name,
		Description: project.Description,
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Project     *models.Project
		Form        *models.ProjectForm
	}{
		Title:       "Edit Project",
		CurrentPage: "projects",
		Error:       "",
		Project:     project,
		Form:        form,
	}

	renderTemplate(w, "project_edit", "templates/project_edit.html", templateData)
}

// Update handles POST /projects/{id}
func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID := userctx.GetUserID(r.Context())
	id := chi.URLParam(r, "projectID")

	form := &models.ProjectForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	_, err := c.services.Project.UpdateProject(r.Context(), userID, id, form)
	if err != nil {
		project, loadErr := c.services.Project.GetProjectByID(r.Context(), userID, id)
		if loadErr != nil {
			http.Error(w, "Project not found: "+loadErr.Error(), http.StatusNotFound)
			return
		}

		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Project     *models.Project
			Form        *models.ProjectForm
		}{
			Title:       "Edit Project",
			CurrentPage: "projects",
			Error:       err.Error(),
			Project:     project,
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "project_update_error", "templates/project_edit.html", templateData)
		return
	}

	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

// Delete handles POST /projects/{id}/delete
func (c *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	id := chi.URLParam(r, "projectID")

	if err := c.services.Project.DeleteProject(r.Context(), userID, id); err != nil {
		http.Redirect(w, r, "/projects?error="+err.Error(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}
