package supabase

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

type projectRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Status      string         `db:"status"`
	ExternalRef sql.NullString `db:"external_ref"`
	CreatedAt   dbTime         `db:"created_at"`
}

func (r projectRow) model() models.Project {
	return models.Project{
		ID:          r.ID,
		Name:        r.Name,
		Status:      r.Status,
		ExternalRef: r.ExternalRef,
		CreatedAt:   r.CreatedAt.Time,
	}
}

const projectColumns = `id, name, status, external_ref, created_at`

func (d *DatabaseClient) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusOpen
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := d.exec(ctx, `
		INSERT INTO projects (id, name, status, external_ref, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Status, p.ExternalRef, ts(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	var row projectRow
	if err := d.get(ctx, &row, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, projectID); err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	p := row.model()
	return &p, nil
}

// ListProjects returns projects newest first. A non-empty search matches the
// name or external reference, case-insensitively.
func (d *DatabaseClient) ListProjects(ctx context.Context, search string) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []interface{}
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query += ` WHERE LOWER(name) LIKE ? OR LOWER(COALESCE(external_ref, '')) LIKE ?`
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY created_at DESC`

	return d.listProjects(ctx, query, args...)
}

func (d *DatabaseClient) ListProjectsByStatus(ctx context.Context, status string) ([]models.Project, error) {
	return d.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE status = ? ORDER BY created_at DESC`, status)
}

func (d *DatabaseClient) listProjects(ctx context.Context, query string, args ...interface{}) ([]models.Project, error) {
	var rows []projectRow
	if err := d.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]models.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.model()
	}
	return projects, nil
}

func (d *DatabaseClient) UpdateProject(ctx context.Context, p *models.Project) error {
	err := d.execOne(ctx, `
		UPDATE projects
		SET name = ?, status = ?, external_ref = ?
		WHERE id = ?
	`, p.Name, p.Status, p.ExternalRef, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", p.ID, err)
	}
	return nil
}

func (d *DatabaseClient) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if err := d.execOne(ctx, `DELETE FROM projects WHERE id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	return nil
}
