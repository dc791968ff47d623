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

type EventService struct {
	repo            ports.EventRepo
	reservationRepo ports.ReservationRepo
	notifier        ports.Notifier
	logger          zerolog.Logger
}

func NewEventService(
	repo ports.EventRepo,
	reservationRepo ports.ReservationRepo,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *EventService {
	return &EventService{
		repo:            repo,
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive when set", domain.ErrValidation)
	}
	if !input.RegistrationOpensAt.Before(input.RegistrationClosesAt) {
		return nil, fmt.Errorf("%w: registration_opens_at must precede registration_closes_at", domain.ErrValidation)
	}
	if input.StartsAt.IsZero() {
		return nil, fmt.Errorf("%w: starts_at is required", domain.ErrValidation)
	}
	if input.StartsAt.Before(input.RegistrationOpensAt) {
		return nil, fmt.Errorf("%w: starts_at must not precede registration_opens_at", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                   uuid.New().String(),
		Title:                input.Title,
		Description:          input.Description,
		Venue:                input.Venue,
		School:               input.School,
		Capacity:             input.Capacity,
		RegistrationOpensAt:  input.RegistrationOpensAt,
		RegistrationClosesAt: input.RegistrationClosesAt,
		StartsAt:             input.StartsAt,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// UpdateCapacity changes an event's capacity after creation. Shrinking
// below the current non-cancelled count is not remediated automatically;
// the over-capacity state is flagged to the caller and logged.
func (s *EventService) UpdateCapacity(ctx context.Context, id string, capacity *int) (*domain.Event, bool, error) {
	if capacity != nil && *capacity <= 0 {
		return nil, false, fmt.Errorf("%w: capacity must be positive when set", domain.ErrValidation)
	}

	if err := s.repo.UpdateCapacity(ctx, id, capacity); err != nil {
		return nil, false, fmt.Errorf("update capacity: %w", err)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("reload event: %w", err)
	}

	overCapacity := false
	if capacity != nil {
		counts, err := s.reservationRepo.CountByStatus(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("count reservations: %w", err)
		}
		overCapacity = counts.Active+counts.Admitted > *capacity
	}

	if overCapacity {
		s.logger.Warn().
			Str("event_id", id).
			Int("capacity", *capacity).
			Msg("event over capacity after update")
	}

	return event, overCapacity, nil
}

// AuditCapacity sweeps the ledger for events holding more non-cancelled
// reservations than they allow and notifies ops. Invoked by the
// background scheduler.
func (s *EventService) AuditCapacity(ctx context.Context) ([]domain.OverCapacityEvent, error) {
	flagged, err := s.repo.ListOverCapacity(ctx)
	if err != nil {
		return nil, fmt.Errorf("list over capacity: %w", err)
	}

	if len(flagged) > 0 {
		s.logger.Warn().
			Int("count", len(flagged)).
			Msg("over-capacity events detected")

		go s.notifyOverCapacity(context.WithoutCancel(ctx), flagged)
	}

	return flagged, nil
}

func (s *EventService) notifyOverCapacity(ctx context.Context, flagged []domain.OverCapacityEvent) {
	for _, oc := range flagged {
		s.notifier.NotifyOverCapacity(ctx, oc)
	}
}
