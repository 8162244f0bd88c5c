// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	meetingRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/meeting"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// SchedulingEngine exposes the meeting availability and lifecycle
// operations consumed by the HTTP layer and the sweep job.
type SchedulingEngine interface {
	GetBookedTimeSlots(ctx context.Context, day time.Time) []string
	GetAvailableSlots(ctx context.Context, day time.Time) []string
	RequestMeeting(ctx context.Context, req models.MeetingRequest) (*models.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*models.Meeting, error)
	ListMeetings(ctx context.Context, status string, limit, offset int) ([]models.Meeting, error)
	ListMeetingsForDay(ctx context.Context, day time.Time, status string) ([]models.Meeting, error)
	UpdateMeetingStatus(ctx context.Context, id, toStatus string) (*models.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error
	CompletePastMeetings(ctx context.Context) (int64, error)
}

// DefaultSchedulingEngine is the production implementation backed by the
// Postgres meeting repository.
type DefaultSchedulingEngine struct {
	Repo   meetingRepo.MeetingRepository
	Logger *zap.Logger
}

func (e *DefaultSchedulingEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}
