package models

import "time"

// Meeting statuses. Only a confirmed meeting occupies its slot.
const (
	MeetingStatusPending   = "PENDING"
	MeetingStatusConfirmed = "CONFIRMED"
	MeetingStatusCancelled = "CANCELLED"
	MeetingStatusCompleted = "COMPLETED"
)

// Meeting represents one requested or confirmed consultation slot.
type Meeting struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	Date      time.Time `json:"date"`   // calendar day of the meeting
	Time      string    `json:"time"`   // slot label, e.g. "14:00"
	Status    string    `json:"status"` // PENDING, CONFIRMED, CANCELLED, COMPLETED
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MeetingRequest defines the payload for a public booking request.
type MeetingRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Date    string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time    string `json:"time" binding:"required"` // slot label on the 30-minute grid
}

// MeetingStatusUpdate defines the payload for an admin status change.
type MeetingStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
