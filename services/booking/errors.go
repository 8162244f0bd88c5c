// File: services/booking/errors.go
package booking

import "errors"

var (
	// ErrInvalidDate indicates the supplied date could not be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrInvalidSlot indicates the time label is not on the bookable grid.
	ErrInvalidSlot = errors.New("time is not a bookable slot")
	// ErrWeekendDate indicates a booking was requested for a Saturday or Sunday.
	ErrWeekendDate = errors.New("meetings are only bookable Monday through Friday")
	// ErrInvalidStatus indicates an unknown meeting status value.
	ErrInvalidStatus = errors.New("unknown meeting status")
	// ErrInvalidTransition indicates a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("status transition not permitted")
	// ErrSlotConflict indicates the slot is already held by a confirmed meeting.
	ErrSlotConflict = errors.New("slot already confirmed for another meeting")
	// ErrMeetingNotFound indicates no meeting exists with the given ID.
	ErrMeetingNotFound = errors.New("meeting not found")
)
