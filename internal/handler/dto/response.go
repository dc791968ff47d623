package dto

import (
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
)

// Rejection reason codes. Stable strings: gate and client software
// switches on them.
const (
	ReasonEventNotFound          = "EventNotFound"
	ReasonWindowNotOpen          = "WindowNotOpen"
	ReasonWindowClosed           = "WindowClosed"
	ReasonAlreadyReserved        = "AlreadyReserved"
	ReasonCapacityExceeded       = "CapacityExceeded"
	ReasonTokenInvalid           = "TokenInvalid"
	ReasonAlreadyAdmitted        = "AlreadyAdmitted"
	ReasonReservationCancelled   = "ReservationCancelled"
	ReasonOutsideAdmissionWindow = "OutsideAdmissionWindow"
	ReasonNotActive              = "NotActive"
	ReasonNotOwner               = "NotOwner"
	ReasonValidation             = "Validation"
	ReasonUnavailable            = "Unavailable"
)

type EventResponse struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Venue                string `json:"venue"`
	School               string `json:"school"`
	Capacity             *int   `json:"capacity"`
	RegistrationOpensAt  string `json:"registration_opens_at"`
	RegistrationClosesAt string `json:"registration_closes_at"`
	StartsAt             string `json:"starts_at"`
	CreatedAt            string `json:"created_at"`
}

type EventCapacityResponse struct {
	Event        EventResponse `json:"event"`
	OverCapacity bool          `json:"over_capacity"`
}

type ReservationResponse struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	AdmittedAt    string `json:"admitted_at,omitempty"`
}

type AdmissionResponse struct {
	ReservationID string `json:"reservation_id"`
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	AdmittedAt    string `json:"admitted_at"`
}

type SummaryResponse struct {
	Active    int `json:"active"`
	Admitted  int `json:"admitted"`
	Cancelled int `json:"cancelled"`
}

// RejectionResponse is the body of every policy rejection. AdmittedAt
// is filled only for AlreadyAdmitted so gate staff can see when the
// token was first redeemed.
type RejectionResponse struct {
	Reason     string `json:"reason"`
	Message    string `json:"message,omitempty"`
	AdmittedAt string `json:"admitted_at,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Venue:                e.Venue,
		School:               e.School,
		Capacity:             e.Capacity,
		RegistrationOpensAt:  e.RegistrationOpensAt.Format(time.RFC3339),
		RegistrationClosesAt: e.RegistrationClosesAt.Format(time.RFC3339),
		StartsAt:             e.StartsAt.Format(time.RFC3339),
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:            r.ID,
		EventID:       r.EventID,
		ParticipantID: r.ParticipantID,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.AdmittedAt != nil {
		resp.AdmittedAt = r.AdmittedAt.Format(time.RFC3339)
	}
	return resp
}

func ToAdmissionResponse(rec *domain.AdmissionRecord) AdmissionResponse {
	return AdmissionResponse{
		ReservationID: rec.ReservationID,
		EventID:       rec.EventID,
		ParticipantID: rec.ParticipantID,
		AdmittedAt:    rec.AdmittedAt.Format(time.RFC3339),
	}
}

func ToSummaryResponse(c domain.StatusCounts) SummaryResponse {
	return SummaryResponse{
		Active:    c.Active,
		Admitted:  c.Admitted,
		Cancelled: c.Cancelled,
	}
}
