// File: database/repository/meeting/queries.go
package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

const meetingColumns = `id, name, email, phone, message, date, time, status, created_at, updated_at`

// ListByRange returns meetings whose date falls within [from, to],
// optionally filtered by status (empty string matches all statuses).
func (r *pgMeetingRepo) ListByRange(ctx context.Context, from, to time.Time, status string) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE date >= $1 AND date <= $2
		  AND ($3 = '' OR status = $3)
		ORDER BY date, time
	`

	rows, err := r.pool.Query(ctx, query, from, to, status)
	if err != nil {
		return nil, fmt.Errorf("list meetings by range: %w", err)
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		var m models.Meeting
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Message,
			&m.Date,
			&m.Time,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}

	return meetings, rows.Err()
}

// List returns meetings for the admin dashboard, newest first.
func (r *pgMeetingRepo) List(ctx context.Context, status string, limit, offset int) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE ($1 = '' OR status = $1)
		ORDER BY date DESC, time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		var m models.Meeting
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Message,
			&m.Date,
			&m.Time,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}

	return meetings, rows.Err()
}

// CompletePast marks confirmed meetings dated before the cutoff as
// completed. Used by the daily sweep job.
func (r *pgMeetingRepo) CompletePast(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		UPDATE meetings
		SET status = $1, updated_at = now()
		WHERE status = $2 AND date < $3
	`

	tag, err := r.pool.Exec(ctx, query, models.MeetingStatusCompleted, models.MeetingStatusConfirmed, before)
	if err != nil {
		return 0, fmt.Errorf("complete past meetings: %w", err)
	}
	return tag.RowsAffected(), nil
}
