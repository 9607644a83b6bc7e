package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/services"
	"github.com/nhonn/secret-key-manager-sub001/userctx"
)

// SecretController handles secret management requests
type SecretController struct {
	services *services.Services
}

// NewSecretController creates a new secret controller
func NewSecretController(services *services.Services) *SecretController {
	return &SecretController{
		services: services,
	}
}

// secretListData is the template payload for the project secrets page
type secretListData struct {
	Title       string
	CurrentPage string
	Error       string
	Project     *models.Project
	Secrets     []models.Secret
	Form        *models.SecretForm
}

// Index handles GET /projects/{projectID}/secrets
func (c *SecretController) Index(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	projectID := chi.URLParam(r, "projectID")

	data, err := c.loadListData(r, userID, projectID)
	if err != nil {
		http.Error(w, "Failed to load secrets: "+err.Error(), http.StatusNotFound)
		return
	}
	data.Error = r.URL.Query().Get("error")

	renderTemplate(w, "secrets", "templates/secrets.html", data)
}

// Create handles POST /projects/{projectID}/secrets
func (c *SecretController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID := userctx.GetUserID(r.Context())
	projectID := chi.URLParam(r, "projectID")

	form := &models.SecretForm{
		Key:         r.FormValue("key"),
		Value:       r.FormValue("value"),
		Description: r.FormValue("description"),
	}

	_, err := c.services.Secret.CreateSecret(r.Context(), userID, projectID, form)
	if err != nil {
		data, loadErr := c.loadListData(r, userID, projectID)
		if loadErr != nil {
			http.Error(w, "Failed to load secrets: "+loadErr.Error(), http.StatusInternalServerError)
			return
		}
		data.Error = err.Error()
		data.Form = form

		renderTemplateWithStatus(w, http.StatusBadRequest, "secret_create_error", "templates/secrets.html", data)
		return
	}

	http.Redirect(w, r, "/projects/"+projectID+"/secrets", http.StatusSeeOther)
}

// Edit handles GET /projects/{projectID}/secrets/{id}/edit
func (c *SecretController) Edit(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	secret, err := c.services.Secret.GetSecretByID(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Secret not found: "+err.Error(), http.StatusNotFound)
		return
	}

	form := &models.SecretForm{
		Key:         secret.Key,
		Value:       secret.Value,
		Description: secret.Description,
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Secret      *models.Secret
		Form        *models.SecretForm
	}{
		Title:       "Edit Secret",
		CurrentPage: "projects",
		Error:       "",
		Secret:      secret,
		Form:        form,
	}

	renderTemplate(w, "secret_edit", "templates/secret_edit.html", templateData)
}

// Update handles POST /projects/{projectID}/secrets/{id}
func (c *SecretController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID := userctx.GetUserID(r.Context())
	projectID := chi.URLParam(r, "projectID")
	id := chi.URLParam(r, "id")

	form := &models.SecretForm{
		Key:         r.FormValue("key"),
		Value:       r.FormValue("value"),
		Description: r.FormValue("description"),
	}

	_, err := c.services.Secret.UpdateSecret(r.Context(), userID, id, form)
	if err != nil {
		secret, loadErr := c.services.Secret.GetSecretByID(r.Context(), userID, id)
		if loadErr != nil {
			http.Error(w, "Secret not found: "+loadErr.Error(), http.StatusNotFound)
			return
		}

		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Secret      *models.Secret
			Form        *models.SecretForm
		}{
			Title:       "Edit Secret",
			CurrentPage: "projects",
			Error:       err.Error(),
			Secret:      secret,
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "secret_update_error", "templates/secret_edit.html", templateData)
		return
	}

	http.Redirect(w, r, "/projects/"+projectID+"/secrets", http.StatusSeeOther)
}

// Delete handles POST /projects/{projectID}/secrets/{id}/delete
func (c *SecretController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())
	projectID := chi.URLParam(r, "projectID")
	id := chi.URLParam(r, "id")

	if err := c.services.Secret.DeleteSecret(r.Context(), userID, id); err != nil {
		http.Redirect(w, r, "/projects/"+projectID+"/secrets?error="+err.Error(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/projects/"+projectID+"/secrets", http.StatusSeeOther)
}

// loadListData assembles the secrets page payload
func (c *SecretController) loadListData(r *http.Request, userID, projectID string) (*secretListData, error) {
	project, err := c.services.Project.GetProjectByID(r.Context(), userID, projectID)
	if err != nil {
		return nil, err
	}

	secrets, err := c.services.Secret.GetSecretsForProject(r.Context(), userID, projectID)
	if err != nil {
		return nil, err
	}

	return &secretListData{
		Title:       project.Name + " secrets",
		CurrentPage: "projects",
		Project:     project,
		Secrets:     secrets,
		Form:        &models.SecretForm{},
	}, nil
}
