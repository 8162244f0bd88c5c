package models

import "time"

// Lead statuses track the contact pipeline.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQualified = "QUALIFIED"
	LeadStatusClosed    = "CLOSED"
)

// Lead represents a contact-form submission from the marketing site.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	Source    string    `json:"source,omitempty"` // page path the form was submitted from
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeadRequest defines the payload for a public contact-form submission.
type LeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
	Source  string `json:"source"`
}

// LegacyLead represents a submission to one of the two legacy lead forms
// persisted in MongoDB. The forms predate the Postgres pipeline and are
// kept append-only.
type LegacyLead struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Website   string    `bson:"website,omitempty" json:"website,omitempty"`
	Budget    string    `bson:"budget,omitempty" json:"budget,omitempty"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
