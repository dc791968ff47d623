package dto

type CreateEventRequest struct {
	Title                string `json:"title" binding:"required"`
	Description          string `json:"description"`
	Venue                string `json:"venue"`
	School               string `json:"school"`
	Capacity             *int   `json:"capacity"`
	RegistrationOpensAt  string `json:"registration_opens_at" binding:"required"`
	RegistrationClosesAt string `json:"registration_closes_at" binding:"required"`
	StartsAt             string `json:"starts_at" binding:"required"`
}

type UpdateCapacityRequest struct {
	// nil lifts the limit entirely
	Capacity *int `json:"capacity"`
}

type ReserveRequest struct {
	// Overridden by the authenticated subject when a bearer token is
	// presented.
	ParticipantID string `json:"participant_id"`
}

type CheckInRequest struct {
	Token string `json:"token" binding:"required,uuid"`
}
