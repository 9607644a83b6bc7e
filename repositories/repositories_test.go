package repositories

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nhonn/secret-key-manager-sub001/database"
	"github.com/nhonn/secret-key-manager-sub001/models"
	"github.com/nhonn/secret-key-manager-sub001/userctx"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := "test_" + time.Now().Format("20060102150405.000000000") + ".db"

	// Clean up function
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

// testContext returns a context carrying a signed-in user for attribution
func testContext(userID, email string) context.Context {
	return userctx.WithUser(context.Background(), userID, email)
}

// createTestUser inserts a user row for foreign key references
func createTestUser(t *testing.T, db *sql.DB, id, email string) {
	repo := NewUserRepository(db)
	user := &models.User{ID: id, Email: email, Provider: "google"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Test Create
	user := &models.User{
		ID:       "user-1",
		Email:    "test@example.com",
		Provider: "google",
	}

	err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}

	if retrieved.Email != user.Email {
		t.Errorf("Expected email %s, got %s", user.Email, retrieved.Email)
	}

	if retrieved.LastSignInAt != nil {
		t.Error("Expected no sign-in recorded yet")
	}

	// Test duplicate Create returns the driver error
	err = repo.Create(ctx, &models.User{ID: "user-1", Email: "other@example.com"})
	if err == nil {
		t.Error("Expected error when creating duplicate user")
	}

	// Test RecordSignIn
	err = repo.RecordSignIn(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to record sign-in: %v", err)
	}

	signedIn, err := repo.GetByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to get user after sign-in: %v", err)
	}

	if signedIn.LastSignInAt == nil {
		t.Error("Expected last sign-in time to be set")
	}

	// Test GetByID for missing user
	_, err = repo.GetByID(ctx, "no-such-user")
	if err == nil {
		t.Error("Expected error when getting missing user")
	}
}

func TestProjectRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	createTestUser(t, db, "user-1", "test@example.com")
	ctx := testContext("user-1", "test@example.com")

	// Test Create
	project := &models.Project{
		UserID:      "user-1",
		Name:        "Production",
		Description: "Production credentials",
	}

	err := repo.Create(ctx, project)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if project.ID == "" {
		t.Error("Expected project ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get project by ID: %v", err)
	}

	if retrieved.Name != "Production" {
		t.Errorf("Expected name Production, got %s", retrieved.Name)
	}

	if retrieved.CreatedBy != "test@example.com" {
		t.Errorf("Expected creator attribution, got %q", retrieved.CreatedBy)
	}

	// Test duplicate name for the same user returns the driver error
	err = repo.Create(ctx, &models.Project{UserID: "user-1", Name: "Production"})
	if err == nil {
		t.Error("Expected error when creating duplicate project name")
	}

	// Same name under a different user is fine
	createTestUser(t, db, "user-2", "other@example.com")
	otherCtx := testContext("user-2", "other@example.com")
	err = repo.Create(otherCtx, &models.Project{UserID: "user-2", Name: "Production"})
	if err != nil {
		t.Errorf("Expected same name under another user to succeed, got: %v", err)
	}

	// Test GetAllForUser only returns the owner's projects
	projects, err := repo.GetAllForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to get projects for user: %v", err)
	}

	if len(projects) != 1 {
		t.Errorf("Expected 1 project for user-1, got %d", len(projects))
	}

	// Test Update
	project.Name = "Production EU"
	project.Description = "EU region credentials"
	err = repo.Update(ctx, project)
	if err != nil {
		t.Fatalf("Failed to update project: %v", err)
	}

	updated, err := repo.GetByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get updated project: %v", err)
	}

	if updated.Name != "Production EU" {
		t.Errorf("Expected updated name, got %s", updated.Name)
	}

	if updated.ModifiedBy != "test@example.com" {
		t.Errorf("Expected modifier attribution, got %q", updated.ModifiedBy)
	}

	// Test CountForUser
	count, err := repo.CountForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to count projects: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	// Test Delete
	err = repo.Delete(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}

	_, err = repo.GetByID(ctx, project.ID)
	if err == nil {
		t.Error("Expected error when getting deleted project")
	}
}

func TestSecretRepository(t *testing.T) {
	db := setupTestDB(t)
	secretRepo := NewSecretRepository(db)
	projectRepo := NewProjectRepository(db)
	createTestUser(t, db, "user-1", "test@example.com")
	ctx := testContext("user-1", "test@example.com")

	project := &models.Project{UserID: "user-1", Name: "Production"}
	if err := projectRepo.Create(ctx, project); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	// Test Create
	secret := &models.Secret{
		ProjectID:   project.ID,
		Key:         "STRIPE_API_KEY",
		Value:       "sk_live_abc123",
		Description: "Stripe production key",
	}

	err := secretRepo.Create(ctx, secret)
	if err != nil {
		t.Fatalf("Failed to create secret: %v", err)
	}

	if secret.ID == "" {
		t.Error("Expected secret ID to be set after creation")
	}

	// Test duplicate key in the same project returns the driver error
	err = secretRepo.Create(ctx, &models.Secret{ProjectID: project.ID, Key: "STRIPE_API_KEY", Value: "other"})
	if err == nil {
		t.Error("Expected error when creating duplicate secret key")
	}

	// Second secret sorting before the first alphabetically
	second := &models.Secret{ProjectID: project.ID, Key: "DATABASE_URL", Value: "postgres://localhost"}
	if err := secretRepo.Create(ctx, second); err != nil {
		t.Fatalf("Failed to create second secret: %v", err)
	}

	// Test GetByProject ordering
	secrets, err := secretRepo.GetByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get secrets for project: %v", err)
	}

	if len(secrets) != 2 {
		t.Fatalf("Expected 2 secrets, got %d", len(secrets))
	}

	if secrets[0].Key != "DATABASE_URL" || secrets[1].Key != "STRIPE_API_KEY" {
		t.Errorf("Expected secrets ordered by key, got %s then %s", secrets[0].Key, secrets[1].Key)
	}

	// Test GetByID
	retrieved, err := secretRepo.GetByID(ctx, secret.ID)
	if err != nil {
		t.Fatalf("Failed to get secret by ID: %v", err)
	}

	if retrieved.Value != "sk_live_abc123" {
		t.Errorf("Expected stored value, got %s", retrieved.Value)
	}

	if retrieved.CreatedBy != "test@example.com" {
		t.Errorf("Expected creator attribution, got %q", retrieved.CreatedBy)
	}

	// Test Update
	secret.Value = "sk_live_rotated"
	err = secretRepo.Update(ctx, secret)
	if err != nil {
		t.Fatalf("Failed to update secret: %v", err)
	}

	updated, err := secretRepo.GetByID(ctx, secret.ID)
	if err != nil {
		t.Fatalf("Failed to get updated secret: %v", err)
	}

	if updated.Value != "sk_live_rotated" {
		t.Errorf("Expected rotated value, got %s", updated.Value)
	}

	if updated.ModifiedAt == nil {
		t.Error("Expected modification time to be set")
	}

	// Test CountForProject
	count, err := secretRepo.CountForProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to count secrets: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}

	// Secret counts surface on the project listing
	projects, err := projectRepo.GetAllForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to get projects: %v", err)
	}

	if len(projects) != 1 || projects[0].SecretCount != 2 {
		t.Errorf("Expected secret count 2 on project listing, got: %+v", projects)
	}

	// Test Delete
	err = secretRepo.Delete(ctx, second.ID)
	if err != nil {
		t.Fatalf("Failed to delete secret: %v", err)
	}

	// Deleting the project cascades to its secrets
	err = projectRepo.Delete(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}

	remaining, err := secretRepo.CountForProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to count secrets after cascade: %v", err)
	}

	if remaining != 0 {
		t.Errorf("Expected cascade delete to remove secrets, got %d remaining", remaining)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	// Test Create
	first := &models.AuditLogEntry{
		Timestamp: time.Now().Add(-time.Minute),
		UserID:    "user-1",
		UserEmail: "test@example.com",
		Method:    "POST",
		Path:      "/projects",
		FormData:  "name=Production",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
	}
	if err := repo.Create(first); err != nil {
		t.Fatalf("Failed to create audit entry: %v", err)
	}

	second := &models.AuditLogEntry{
		UserID:    "user-1",
		UserEmail: "test@example.com",
		Method:    "POST",
		Path:      "/projects/p1/secrets",
		FormData:  "key=API_KEY&value=[REDACTED]",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
	}
	if err := repo.Create(second); err != nil {
		t.Fatalf("Failed to create second audit entry: %v", err)
	}

	// Test List returns newest first
	entries, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("Failed to list audit entries: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 audit entries, got %d", len(entries))
	}

	if entries[0].Path != "/projects/p1/secrets" {
		t.Errorf("Expected newest entry first, got %s", entries[0].Path)
	}

	// Test pagination
	page, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Failed to list second page: %v", err)
	}

	if len(page) != 1 || page[0].Path != "/projects" {
		t.Errorf("Expected oldest entry on second page, got: %+v", page)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count audit entries: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}
