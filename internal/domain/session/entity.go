package session

import "time"

// Status enum
type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

// Session - One scheduled counseling session. Only COMPLETED sessions count
// toward salary calculation.
type Session struct {
	ID               string
	ConsultantID     string
	ClientID         string
	ConsultationType string
	Date             time.Time
	DurationMinutes  int
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
