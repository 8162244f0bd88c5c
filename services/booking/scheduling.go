// File: services/booking/scheduling.go
package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	meetingRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/meeting"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// allowedTransitions is the meeting lifecycle. CANCELLED and COMPLETED
// are terminal.
var allowedTransitions = map[string][]string{
	models.MeetingStatusPending:   {models.MeetingStatusConfirmed, models.MeetingStatusCancelled},
	models.MeetingStatusConfirmed: {models.MeetingStatusCompleted, models.MeetingStatusCancelled},
	models.MeetingStatusCancelled: {},
	models.MeetingStatusCompleted: {},
}

// CanTransition reports whether the lifecycle permits moving a meeting
// from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func isKnownStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

// RequestMeeting validates and persists a public booking request as a
// PENDING meeting. The slot label must sit on the grid and the date must
// be a working day.
func (e *DefaultSchedulingEngine) RequestMeeting(ctx context.Context, req models.MeetingRequest) (*models.Meeting, error) {
	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !IsBookableDay(day) {
		return nil, ErrWeekendDate
	}
	if !IsValidSlot(req.Time) {
		return nil, ErrInvalidSlot
	}

	meeting := &models.Meeting{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Date:    day,
		Time:    req.Time,
		Status:  models.MeetingStatusPending,
	}
	if err := e.Repo.Create(ctx, meeting); err != nil {
		return nil, err
	}

	e.logger().Info("meeting requested",
		zap.String("id", meeting.ID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)
	return meeting, nil
}

func (e *DefaultSchedulingEngine) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	meeting, err := e.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

func (e *DefaultSchedulingEngine) ListMeetings(ctx context.Context, status string, limit, offset int) ([]models.Meeting, error) {
	if status != "" && !isKnownStatus(status) {
		return nil, ErrInvalidStatus
	}
	return e.Repo.List(ctx, status, limit, offset)
}

func (e *DefaultSchedulingEngine) ListMeetingsForDay(ctx context.Context, day time.Time, status string) ([]models.Meeting, error) {
	if status != "" && !isKnownStatus(status) {
		return nil, ErrInvalidStatus
	}
	dr := NewDayRange(day)
	return e.Repo.ListByRange(ctx, dr.Start, dr.End, status)
}

// UpdateMeetingStatus drives the lifecycle. The transition check happens
// here; the repository re-checks the current status in its conditional
// update, and the partial unique index rejects a second confirmation of
// the same date/time slot.
func (e *DefaultSchedulingEngine) UpdateMeetingStatus(ctx context.Context, id, toStatus string) (*models.Meeting, error) {
	if !isKnownStatus(toStatus) {
		return nil, ErrInvalidStatus
	}

	current, err := e.GetMeeting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, toStatus) {
		return nil, ErrInvalidTransition
	}

	err = e.Repo.UpdateStatus(ctx, id, current.Status, toStatus)
	switch {
	case err == nil:
	case errors.Is(err, meetingRepo.ErrSlotTaken):
		return nil, ErrSlotConflict
	case errors.Is(err, meetingRepo.ErrNotFound):
		return nil, ErrMeetingNotFound
	case errors.Is(err, meetingRepo.ErrStatusChanged):
		return nil, ErrInvalidTransition
	default:
		return nil, err
	}

	e.logger().Info("meeting status updated",
		zap.String("id", id),
		zap.String("from", current.Status),
		zap.String("to", toStatus),
	)
	return e.GetMeeting(ctx, id)
}

func (e *DefaultSchedulingEngine) DeleteMeeting(ctx context.Context, id string) error {
	err := e.Repo.Delete(ctx, id)
	if errors.Is(err, meetingRepo.ErrNotFound) {
		return ErrMeetingNotFound
	}
	return err
}

// CompletePastMeetings marks confirmed meetings before today as completed.
// Invoked by the daily sweep job.
func (e *DefaultSchedulingEngine) CompletePastMeetings(ctx context.Context) (int64, error) {
	cutoff := NewDayRange(time.Now()).Start
	n, err := e.Repo.CompletePast(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		e.logger().Info("completed past meetings", zap.Int64("count", n))
	}
	return n, nil
}
