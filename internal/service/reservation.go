package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/service/ports"
	"github.com/rs/zerolog"
)

// ReservationService gates reservation attempts: registration window,
// one reservation per participant per event, hard capacity limit. The
// window is checked here against the service clock; duplicates and
// capacity are enforced atomically by the ledger so concurrent attempts
// for the same event cannot both take the last slot.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	eventRepo       ports.EventRepo
	notifier        ports.Notifier
	logger          zerolog.Logger
	now             func() time.Time
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	eventRepo ports.EventRepo,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
		notifier:        notifier,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReservationService) Reserve(ctx context.Context, eventID, participantID string) (*domain.Reservation, error) {
	if participantID == "" {
		return nil, fmt.Errorf("%w: participant_id is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	now := s.now()
	if !event.RegistrationOpen(now) {
		if now.Before(event.RegistrationOpensAt) {
			return nil, domain.ErrWindowNotOpen
		}
		return nil, domain.ErrWindowClosed
	}

	res := &domain.Reservation{
		ID:            uuid.New().String(),
		EventID:       eventID,
		ParticipantID: participantID,
		Status:        domain.ReservationStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info().
		Str("reservation_id", res.ID).
		Str("event_id", eventID).
		Str("participant_id", participantID).
		Msg("reservation created")

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), res, event)

	return res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, reservationID, requesterID string, admin bool) error {
	res, err := s.reservationRepo.Cancel(ctx, reservationID, requesterID, admin)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info().
		Str("reservation_id", res.ID).
		Str("event_id", res.EventID).
		Str("requester_id", requesterID).
		Msg("reservation cancelled")

	event, err := s.eventRepo.GetByID(ctx, res.EventID)
	if err != nil {
		s.logger.Error().
			Str("event_id", res.EventID).
			Err(err).
			Msg("failed to get event for cancel notification")
		return nil
	}

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), res, event)

	return nil
}

func (s *ReservationService) ListByParticipant(ctx context.Context, participantID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByParticipant(ctx, participantID)
}
