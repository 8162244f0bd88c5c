// File: services/booking/availability.go
package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// Business hours: 30-minute slots starting on the hour and half hour,
// from 09:00 up to and including 16:30 (last meeting ends at 17:00).
const (
	firstBookableHour = 9
	lastBookableHour  = 16
	slotsPerDay       = (lastBookableHour - firstBookableHour + 1) * 2
)

// DayRange is an immutable day interval: [Start, End] in the day's own
// location, End being 23:59:59.999 of the same calendar day.
type DayRange struct {
	Start time.Time
	End   time.Time
}

// NewDayRange computes the day boundaries for the calendar day containing t.
func NewDayRange(t time.Time) DayRange {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return DayRange{Start: start, End: end}
}

// IsBookableDay reports whether meetings may be booked on the given day.
// Only the weekday component is consulted; the caller supplies the date
// already normalized to the business timezone.
func IsBookableDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// GenerateTimeSlots returns the fixed ordered grid of bookable slot
// labels. The grid is date-independent; the parameter exists for symmetry
// with the booked-slot lookup.
func GenerateTimeSlots(_ time.Time) []string {
	slots := make([]string, 0, slotsPerDay)
	for hour := firstBookableHour; hour <= lastBookableHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour), fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

// IsValidSlot reports whether the label is one of the grid's slot labels.
func IsValidSlot(label string) bool {
	for _, s := range GenerateTimeSlots(time.Time{}) {
		if s == label {
			return true
		}
	}
	return false
}

// GetBookedTimeSlots returns the slot labels held by confirmed meetings on
// the given day. On a store failure it fails open: the error is logged and
// an empty set is returned, so the booking UI keeps offering the full grid
// rather than going dark. A resulting double-offer is rejected later at
// confirmation time by the store's uniqueness guarantee.
func (e *DefaultSchedulingEngine) GetBookedTimeSlots(ctx context.Context, day time.Time) []string {
	dr := NewDayRange(day)

	meetings, err := e.Repo.ListByRange(ctx, dr.Start, dr.End, models.MeetingStatusConfirmed)
	if err != nil {
		e.logger().Warn("booked-slot lookup failed, treating all slots as open",
			zap.Time("day", dr.Start),
			zap.Error(err),
		)
		return []string{}
	}

	booked := make([]string, 0, len(meetings))
	for _, m := range meetings {
		booked = append(booked, m.Time)
	}
	return booked
}

// GetAvailableSlots returns the bookable slots remaining on the given day,
// in chronological order. Weekends have no slots.
func (e *DefaultSchedulingEngine) GetAvailableSlots(ctx context.Context, day time.Time) []string {
	if !IsBookableDay(day) {
		return []string{}
	}

	booked := make(map[string]struct{})
	for _, label := range e.GetBookedTimeSlots(ctx, day) {
		booked[label] = struct{}{}
	}

	available := make([]string, 0, slotsPerDay)
	for _, label := range GenerateTimeSlots(day) {
		if _, taken := booked[label]; !taken {
			available = append(available, label)
		}
	}
	return available
}
