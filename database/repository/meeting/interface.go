// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

var (
	// ErrNotFound is returned when no meeting matches the query.
	ErrNotFound = errors.New("meeting not found")
	// ErrSlotTaken is returned when a confirmation collides with an
	// already-confirmed meeting on the same date and time.
	ErrSlotTaken = errors.New("slot already confirmed")
	// ErrStatusChanged is returned when a conditional status update found
	// the meeting in a different state than expected.
	ErrStatusChanged = errors.New("meeting status changed concurrently")
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	ListByRange(ctx context.Context, from, to time.Time, status string) ([]models.Meeting, error)
	List(ctx context.Context, status string, limit, offset int) ([]models.Meeting, error)
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
	CompletePast(ctx context.Context, before time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
}

type pgMeetingRepo struct {
	pool *pgxpool.Pool
}

// NewPgMeetingRepo constructs a new Postgres MeetingRepository.
func NewPgMeetingRepo(pool *pgxpool.Pool) MeetingRepository {
	return &pgMeetingRepo{pool: pool}
}
