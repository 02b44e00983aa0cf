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

type todoRow struct {
	ID         uuid.UUID      `db:"id"`
	ProjectID  uuid.UUID      `db:"project_id"`
	Title      string         `db:"title"`
	Notes      sql.NullString `db:"notes"`
	Status     string         `db:"status"`
	Priority   string         `db:"priority"`
	DueDate    *models.Date   `db:"due_date"`
	AssignedTo uuid.NullUUID  `db:"assigned_to"`
	CreatedBy  uuid.NullUUID  `db:"created_by"`
	CreatedAt  dbTime         `db:"created_at"`
}

func (r todoRow) model() models.Todo {
	return models.Todo{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		Title:      r.Title,
		Notes:      r.Notes,
		Status:     r.Status,
		Priority:   r.Priority,
		DueDate:    r.DueDate,
		AssignedTo: r.AssignedTo,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt.Time,
	}
}

const todoColumns = `id, project_id, title, notes, status, priority, due_date, assigned_to, created_by, created_at`

// TodoFilter narrows ListTodos. Zero values match everything.
type TodoFilter struct {
	Status     string
	Priority   string
	AssignedTo uuid.NullUUID
	DueDate    *models.Date
}

func (d *DatabaseClient) CreateTodo(ctx context.Context, t *models.Todo) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = models.TodoStatusIncomplete
	}
	if t.Priority == "" {
		t.Priority = "none"
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := d.exec(ctx, `
		INSERT INTO to_dos (id, project_id, title, notes, status, priority, due_date, assigned_to, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.ProjectID, t.Title, t.Notes, t.Status, t.Priority, nullDate(t.DueDate), t.AssignedTo, t.CreatedBy, ts(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetTodo(ctx context.Context, todoID uuid.UUID) (*models.Todo, error) {
	var row todoRow
	if err := d.get(ctx, &row, `SELECT `+todoColumns+` FROM to_dos WHERE id = ?`, todoID); err != nil {
		return nil, fmt.Errorf("failed to get todo %s: %w", todoID, err)
	}
	t := row.model()
	return &t, nil
}

func (d *DatabaseClient) ListTodos(ctx context.Context, projectID uuid.UUID, filter TodoFilter) ([]models.Todo, error) {
	where := []string{"project_id = ?"}
	args := []interface{}{projectID}

	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Priority != "" {
		where = append(where, "priority = ?")
		args = append(args, filter.Priority)
	}
	if filter.AssignedTo.Valid {
		where = append(where, "assigned_to = ?")
		args = append(args, filter.AssignedTo)
	}
	if filter.DueDate != nil {
		where = append(where, "due_date = ?")
		args = append(args, *filter.DueDate)
	}

	query := `SELECT ` + todoColumns + ` FROM to_dos WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY due_date IS NULL, due_date, created_at`
	return d.listTodos(ctx, query, args...)
}

// ListDueTodos returns the project's incomplete to-dos due on or before until.
func (d *DatabaseClient) ListDueTodos(ctx context.Context, projectID uuid.UUID, until models.Date) ([]models.Todo, error) {
	return d.listTodos(ctx, `
		SELECT `+todoColumns+`
		FROM to_dos
		WHERE project_id = ? AND status = ? AND due_date IS NOT NULL AND due_date <= ?
		ORDER BY due_date, id
	`, projectID, models.TodoStatusIncomplete, until)
}

func (d *DatabaseClient) listTodos(ctx context.Context, query string, args ...interface{}) ([]models.Todo, error) {
	var rows []todoRow
	if err := d.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	todos := make([]models.Todo, len(rows))
	for i, row := range rows {
		todos[i] = row.model()
	}
	return todos, nil
}

func nullDate(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return *d
}
