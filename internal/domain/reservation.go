package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusAdmitted  ReservationStatus = "admitted"
)

// CountedStatuses are the statuses that occupy a capacity slot.
// Cancelling a reservation frees its slot because cancelled rows
// are excluded here.
var CountedStatuses = []ReservationStatus{ReservationStatusActive, ReservationStatusAdmitted}

// Reservation commits one capacity slot for one participant at one event.
// Its ID is opaque and unguessable and doubles as the redemption token
// presented at the gate.
type Reservation struct {
	ID            string            `json:"id"`
	EventID       string            `json:"event_id"`
	ParticipantID string            `json:"participant_id"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	AdmittedAt    *time.Time        `json:"admitted_at,omitempty"`
	AdmittedBy    string            `json:"admitted_by,omitempty"`
}

// AdmissionRecord is the result of a successful check-in.
type AdmissionRecord struct {
	ReservationID string    `json:"reservation_id"`
	EventID       string    `json:"event_id"`
	ParticipantID string    `json:"participant_id"`
	AdmittedAt    time.Time `json:"admitted_at"`
}

// StatusCounts is the per-event reservation tally served by the
// reporting facade. Always computed from the ledger, never cached.
type StatusCounts struct {
	Active    int `json:"active"`
	Admitted  int `json:"admitted"`
	Cancelled int `json:"cancelled"`
}

// ReservationFilter narrows an event's reservation listing.
type ReservationFilter struct {
	Status      *ReservationStatus
	Participant string // substring match on participant_id
}

// ScanAudit records one check-in attempt, successful or not.
type ScanAudit struct {
	Token         string    `json:"token"`
	EventID       string    `json:"event_id,omitempty"`
	ParticipantID string    `json:"participant_id,omitempty"`
	ScannedBy     string    `json:"scanned_by,omitempty"`
	Result        string    `json:"result"`
	ScannedAt     time.Time `json:"scanned_at"`
}
