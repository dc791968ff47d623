package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/handler/dto"
	"github.com/reinstack44/CollegeEventSystem/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateCapacity(ctx context.Context, id string, capacity *int) (*domain.Event, bool, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, eventID, participantID string) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID, requesterID string, admin bool) error
	ListByParticipant(ctx context.Context, participantID string) ([]*domain.Reservation, error)
}

type CheckInSvc interface {
	CheckIn(ctx context.Context, token, scannedBy string) (*domain.AdmissionRecord, error)
}

type ReportSvc interface {
	Summary(ctx context.Context, eventID string) (domain.StatusCounts, error)
	ListReservations(ctx context.Context, eventID string, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

type Handler struct {
	eventService       EventSvc
	reservationService ReservationSvc
	checkInService     CheckInSvc
	reportService      ReportSvc
}

func NewHandler(
	eventService EventSvc,
	reservationService ReservationSvc,
	checkInService CheckInSvc,
	reportService ReportSvc,
) *Handler {
	return &Handler{
		eventService:       eventService,
		reservationService: reservationService,
		checkInService:     checkInService,
		reportService:      reportService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: err.Error()})
		return
	}

	opensAt, err := time.Parse(time.RFC3339, req.RegistrationOpensAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{
			Reason:  dto.ReasonValidation,
			Message: "invalid registration_opens_at, expected RFC3339",
		})
		return
	}
	closesAt, err := time.Parse(time.RFC3339, req.RegistrationClosesAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{
			Reason:  dto.ReasonValidation,
			Message: "invalid registration_closes_at, expected RFC3339",
		})
		return
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{
			Reason:  dto.ReasonValidation,
			Message: "invalid starts_at, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		Venue:                req.Venue,
		School:               req.School,
		Capacity:             req.Capacity,
		RegistrationOpensAt:  opensAt,
		RegistrationClosesAt: closesAt,
		StartsAt:             startsAt,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateCapacity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid event id"})
		return
	}

	var req dto.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: err.Error()})
		return
	}

	event, overCapacity, err := h.eventService.UpdateCapacity(c.Request.Context(), id, req.Capacity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventCapacityResponse{
		Event:        dto.ToEventResponse(event),
		OverCapacity: overCapacity,
	})
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid event id"})
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: err.Error()})
		return
	}

	// A verified identity always wins over the request body.
	participantID := req.ParticipantID
	if subject := middleware.ParticipantID(c); subject != "" {
		participantID = subject
	}

	res, err := h.reservationService.Reserve(c.Request.Context(), eventID, participantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid reservation id"})
		return
	}

	requesterID := middleware.ParticipantID(c)
	if requesterID == "" {
		requesterID = c.Query("participant_id")
	}

	err := h.reservationService.Cancel(c.Request.Context(), id, requesterID, middleware.IsAdmin(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ListParticipantReservations(c *ginext.Context) {
	participantID := c.Param("id")
	if participantID == "" {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "participant id is required"})
		return
	}

	reservations, err := h.reservationService.ListByParticipant(c.Request.Context(), participantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Check-in

func (h *Handler) CheckIn(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: err.Error()})
		return
	}

	scannedBy := middleware.ParticipantID(c)
	if scannedBy == "" {
		scannedBy = "gate"
	}

	record, err := h.checkInService.CheckIn(c.Request.Context(), req.Token, scannedBy)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdmissionResponse(record))
}

// Reporting

func (h *Handler) Summary(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid event id"})
		return
	}

	counts, err := h.reportService.Summary(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(counts))
}

func (h *Handler) ListEventReservations(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid event id"})
		return
	}

	var filter domain.ReservationFilter
	if status := c.Query("status"); status != "" {
		st := domain.ReservationStatus(status)
		switch st {
		case domain.ReservationStatusActive, domain.ReservationStatusAdmitted, domain.ReservationStatusCancelled:
			filter.Status = &st
		default:
			c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: "invalid status filter"})
			return
		}
	}
	filter.Participant = c.Query("participant")

	reservations, err := h.reportService.ListReservations(c.Request.Context(), id, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var admitted *domain.AlreadyAdmittedError
	if errors.As(err, &admitted) {
		c.JSON(http.StatusConflict, dto.RejectionResponse{
			Reason:     dto.ReasonAlreadyAdmitted,
			AdmittedAt: admitted.AdmittedAt.Format(time.RFC3339),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.RejectionResponse{Reason: dto.ReasonEventNotFound})

	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.RejectionResponse{Reason: dto.ReasonTokenInvalid})

	case errors.Is(err, domain.ErrWindowNotOpen):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonWindowNotOpen})

	case errors.Is(err, domain.ErrWindowClosed):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonWindowClosed})

	case errors.Is(err, domain.ErrAlreadyReserved):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonAlreadyReserved})

	case errors.Is(err, domain.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonCapacityExceeded})

	case errors.Is(err, domain.ErrAlreadyAdmitted):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonAlreadyAdmitted})

	case errors.Is(err, domain.ErrReservationCancelled):
		c.JSON(http.StatusGone, dto.RejectionResponse{Reason: dto.ReasonReservationCancelled})

	case errors.Is(err, domain.ErrOutsideAdmissionWindow):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonOutsideAdmissionWindow})

	case errors.Is(err, domain.ErrNotActive):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonNotActive})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusConflict, dto.RejectionResponse{Reason: dto.ReasonNotOwner})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.RejectionResponse{Reason: dto.ReasonValidation, Message: err.Error()})

	case errors.Is(err, domain.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.RejectionResponse{Reason: dto.ReasonUnavailable})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
