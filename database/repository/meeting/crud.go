// File: database/repository/meeting/crud.go
package meetingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

const uniqueViolation = "23505"

func (r *pgMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	if meeting.Status == "" {
		meeting.Status = models.MeetingStatusPending
	}

	query := `
		INSERT INTO meetings (id, name, email, phone, message, date, time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		meeting.ID,
		meeting.Name,
		meeting.Email,
		meeting.Phone,
		meeting.Message,
		meeting.Date,
		meeting.Time,
		meeting.Status,
	).Scan(&meeting.CreatedAt, &meeting.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create meeting: %w", err)
	}

	return nil
}

func (r *pgMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT id, name, email, phone, message, date, time, status, created_at, updated_at
		FROM meetings
		WHERE id = $1
	`

	var m models.Meeting
	err := r.pool.QueryRow(ctx, query, id).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get meeting by id: %w", err)
	}

	return &m, nil
}

// UpdateStatus performs a conditional status transition. The WHERE clause
// guards against concurrent transitions, and the partial unique index on
// (date, time, status=CONFIRMED) rejects a double-confirm.
func (r *pgMeetingRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE meetings
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, fromStatus, toStatus)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("update meeting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrStatusChanged
	}

	return nil
}

func (r *pgMeetingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
