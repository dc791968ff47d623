package domain

import "time"

type Event struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Venue                string    `json:"venue"`
	School               string    `json:"school"`
	Capacity             *int      `json:"capacity"` // nil = unlimited
	RegistrationOpensAt  time.Time `json:"registration_opens_at"`
	RegistrationClosesAt time.Time `json:"registration_closes_at"`
	StartsAt             time.Time `json:"starts_at"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RegistrationOpen reports whether now falls inside the half-open
// registration window [opens_at, closes_at).
func (e *Event) RegistrationOpen(now time.Time) bool {
	return !now.Before(e.RegistrationOpensAt) && now.Before(e.RegistrationClosesAt)
}

type CreateEventInput struct {
	Title                string
	Description          string
	Venue                string
	School               string
	Capacity             *int
	RegistrationOpensAt  time.Time
	RegistrationClosesAt time.Time
	StartsAt             time.Time
}

// OverCapacityEvent flags an event whose non-cancelled reservation count
// exceeds its capacity (possible after an admin shrinks the limit).
type OverCapacityEvent struct {
	EventID  string `json:"event_id"`
	Title    string `json:"title"`
	Capacity int    `json:"capacity"`
	Reserved int    `json:"reserved"`
}
