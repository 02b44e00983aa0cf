package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sitelog-backend/internal/models"
)

type reasonRow struct {
	ID     uuid.UUID `db:"id"`
	Label  string    `db:"label"`
	Active bool      `db:"active"`
}

func (d *DatabaseClient) ListReasons(ctx context.Context, activeOnly bool) ([]models.Reason, error) {
	query := `SELECT id, label, active FROM reasons`
	var args []interface{}
	if activeOnly {
		query += ` WHERE active = ?`
		args = append(args, true)
	}
	query += ` ORDER BY label`

	var rows []reasonRow
	if err := d.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reasons: %w", err)
	}

	reasons := make([]models.Reason, len(rows))
	for i, row := range rows {
		reasons[i] = models.Reason{ID: row.ID, Label: row.Label, Active: row.Active}
	}
	return reasons, nil
}

func (d *DatabaseClient) GetReason(ctx context.Context, reasonID uuid.UUID) (*models.Reason, error) {
	var row reasonRow
	if err := d.get(ctx, &row, `SELECT id, label, active FROM reasons WHERE id = ?`, reasonID); err != nil {
		return nil, fmt.Errorf("failed to get reason %s: %w", reasonID, err)
	}
	return &models.Reason{ID: row.ID, Label: row.Label, Active: row.Active}, nil
}

// SetReasonActive retires or restores a reason without deleting the reports
// that cite it.
func (d *DatabaseClient) SetReasonActive(ctx context.Context, reasonID uuid.UUID, active bool) error {
	if err := d.execOne(ctx, `UPDATE reasons SET active = ? WHERE id = ?`, active, reasonID); err != nil {
		return fmt.Errorf("failed to update reason %s: %w", reasonID, err)
	}
	return nil
}
