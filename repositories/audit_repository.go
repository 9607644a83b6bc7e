package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nhonn/secret-key-manager-sub001/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(entry *models.AuditLogEntry) error
	List(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error)
	Count(ctx context.Context) (int, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, user_id, user_email, method, path, form_data, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.db.Exec(
		query,
		entry.Timestamp,
		entry.UserID,
		entry.UserEmail,
		entry.Method,
		entry.Path,
		entry.FormData,
		entry.UserAgent,
		entry.IPAddress,
	)

	return err
}

// List retrieves audit entries newest first
func (r *sqliteAuditRepository) List(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, user_id, user_email, method, path, form_data, user_agent, ip_address
		FROM audit_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.UserID,
			&entry.UserEmail,
			&entry.Method,
			&entry.Path,
			&entry.FormData,
			&entry.UserAgent,
			&entry.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}

// Count returns the total number of audit entries
func (r *sqliteAuditRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM audit_log`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return count, nil
}
