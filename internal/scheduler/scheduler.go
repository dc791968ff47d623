package scheduler

import (
	"context"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/rs/zerolog"
)

type capacityAuditor interface {
	AuditCapacity(ctx context.Context) ([]domain.OverCapacityEvent, error)
}

// Scheduler periodically sweeps for events left holding more
// non-cancelled reservations than their capacity allows, which can
// happen after an admin shrinks the limit. Flagging only; nothing is
// auto-cancelled.
type Scheduler struct {
	eventService capacityAuditor
	interval     time.Duration
	logger       zerolog.Logger
}

func New(
	eventService capacityAuditor,
	interval time.Duration,
	logger zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", s.interval).
		Msg("capacity auditor started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("capacity auditor stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	flagged, err := s.eventService.AuditCapacity(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("capacity audit failed")
		return
	}

	for _, oc := range flagged {
		s.logger.Warn().
			Str("event_id", oc.EventID).
			Int("capacity", oc.Capacity).
			Int("reserved", oc.Reserved).
			Msg("event over capacity")
	}
}
