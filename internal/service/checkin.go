package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/config"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/service/ports"
	"github.com/rs/zerolog"
)

// CheckInService redeems a reservation token for one physical
// admission. The active→admitted transition is a conditional update in
// the ledger, so two gate devices scanning the same token produce
// exactly one success; the loser is told when the first redemption
// happened.
type CheckInService struct {
	reservationRepo ports.ReservationRepo
	eventRepo       ports.EventRepo
	audit           ports.AuditPublisher
	notifier        ports.Notifier
	policy          config.CheckInConfig
	logger          zerolog.Logger
	now             func() time.Time
}

func NewCheckInService(
	reservationRepo ports.ReservationRepo,
	eventRepo ports.EventRepo,
	audit ports.AuditPublisher,
	notifier ports.Notifier,
	policy config.CheckInConfig,
	logger zerolog.Logger,
) *CheckInService {
	return &CheckInService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
		audit:           audit,
		notifier:        notifier,
		policy:          policy,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *CheckInService) CheckIn(ctx context.Context, token, scannedBy string) (*domain.AdmissionRecord, error) {
	entry := domain.ScanAudit{
		Token:     token,
		ScannedBy: scannedBy,
		ScannedAt: s.now(),
	}

	res, err := s.reservationRepo.GetByID(ctx, token)
	if err != nil {
		s.publishScan(ctx, entry, err)
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	entry.EventID = res.EventID
	entry.ParticipantID = res.ParticipantID

	event, err := s.eventRepo.GetByID(ctx, res.EventID)
	if err != nil {
		s.publishScan(ctx, entry, err)
		return nil, fmt.Errorf("check event: %w", err)
	}

	if err = s.checkAdmissionWindow(event); err != nil {
		s.publishScan(ctx, entry, err)
		return nil, err
	}

	admittedAt, err := s.reservationRepo.Admit(ctx, token, scannedBy)
	if err != nil {
		s.publishScan(ctx, entry, err)
		return nil, fmt.Errorf("admit: %w", err)
	}

	record := &domain.AdmissionRecord{
		ReservationID: res.ID,
		EventID:       res.EventID,
		ParticipantID: res.ParticipantID,
		AdmittedAt:    admittedAt,
	}

	s.logger.Info().
		Str("reservation_id", res.ID).
		Str("event_id", res.EventID).
		Str("participant_id", res.ParticipantID).
		Str("scanned_by", scannedBy).
		Msg("reservation admitted")

	s.publishScan(ctx, entry, nil)
	go s.notifier.NotifyAdmitted(context.WithoutCancel(ctx), record, event)

	return record, nil
}

// checkAdmissionWindow rejects scans too far from the event start. The
// bounds come from deployment policy, not from the event itself.
func (s *CheckInService) checkAdmissionWindow(event *domain.Event) error {
	if !s.policy.Enforce {
		return nil
	}

	now := s.now()
	if now.Before(event.StartsAt.Add(-s.policy.WindowBefore)) {
		return domain.ErrOutsideAdmissionWindow
	}
	if !now.Before(event.StartsAt.Add(s.policy.WindowAfter)) {
		return domain.ErrOutsideAdmissionWindow
	}

	return nil
}

func (s *CheckInService) publishScan(ctx context.Context, entry domain.ScanAudit, outcome error) {
	entry.Result = scanResult(outcome)

	if err := s.audit.PublishScan(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Error().
			Str("token", entry.Token).
			Err(err).
			Msg("failed to publish scan audit")
	}
}

func scanResult(err error) string {
	switch {
	case err == nil:
		return "admitted"
	case errors.Is(err, domain.ErrAlreadyAdmitted):
		return "already_admitted"
	case errors.Is(err, domain.ErrReservationCancelled):
		return "cancelled"
	case errors.Is(err, domain.ErrReservationNotFound):
		return "token_invalid"
	case errors.Is(err, domain.ErrEventNotFound):
		return "event_missing"
	case errors.Is(err, domain.ErrOutsideAdmissionWindow):
		return "outside_window"
	default:
		return "error"
	}
}
