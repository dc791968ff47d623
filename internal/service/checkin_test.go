package service

import (
	"context"
	"testing"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/config"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func relaxedPolicy() config.CheckInConfig {
	return config.CheckInConfig{Enforce: false}
}

func TestCheckInService_CheckIn_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, relaxedPolicy(), log)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res := &domain.Reservation{
		ID:            "token-1",
		EventID:       "e1",
		ParticipantID: "p1",
		Status:        domain.ReservationStatusActive,
	}
	event := &domain.Event{ID: "e1", Title: "Tech Fest", StartsAt: now}
	admittedAt := now.Add(time.Second)

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservationRepo.EXPECT().Admit(mock.Anything, "token-1", "gate-2").Return(admittedAt, nil)
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "admitted" && scan.EventID == "e1" && scan.ScannedBy == "gate-2"
	})).Return(nil)
	notifier.EXPECT().NotifyAdmitted(mock.Anything, mock.Anything, event).Return()

	record, err := svc.CheckIn(context.Background(), "token-1", "gate-2")

	require.NoError(t, err)
	assert.Equal(t, "token-1", record.ReservationID)
	assert.Equal(t, "e1", record.EventID)
	assert.Equal(t, "p1", record.ParticipantID)
	assert.Equal(t, admittedAt, record.AdmittedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckInService_CheckIn_TokenInvalid(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, relaxedPolicy(), log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "bogus").Return(nil, domain.ErrReservationNotFound)
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "token_invalid"
	})).Return(nil)

	_, err := svc.CheckIn(context.Background(), "bogus", "gate-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestCheckInService_CheckIn_EventMissing(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, relaxedPolicy(), log)

	res := &domain.Reservation{ID: "token-1", EventID: "e1", ParticipantID: "p1"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "event_missing"
	})).Return(nil)

	_, err := svc.CheckIn(context.Background(), "token-1", "gate-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCheckInService_CheckIn_AlreadyAdmitted(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, relaxedPolicy(), log)

	res := &domain.Reservation{ID: "token-1", EventID: "e1", ParticipantID: "p1"}
	event := &domain.Event{ID: "e1"}
	firstScan := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservationRepo.EXPECT().Admit(mock.Anything, "token-1", "gate-1").
		Return(time.Time{}, &domain.AlreadyAdmittedError{AdmittedAt: firstScan})
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "already_admitted"
	})).Return(nil)

	_, err := svc.CheckIn(context.Background(), "token-1", "gate-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyAdmitted)

	var admitted *domain.AlreadyAdmittedError
	require.ErrorAs(t, err, &admitted)
	assert.Equal(t, firstScan, admitted.AdmittedAt)
}

func TestCheckInService_CheckIn_Cancelled(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, relaxedPolicy(), log)

	res := &domain.Reservation{ID: "token-1", EventID: "e1", ParticipantID: "p1"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	reservationRepo.EXPECT().Admit(mock.Anything, "token-1", "gate-1").
		Return(time.Time{}, domain.ErrReservationCancelled)
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "cancelled"
	})).Return(nil)

	_, err := svc.CheckIn(context.Background(), "token-1", "gate-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationCancelled)
}

func TestCheckInService_CheckIn_TooEarly(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	policy := config.CheckInConfig{
		Enforce:      true,
		WindowBefore: 2 * time.Hour,
		WindowAfter:  6 * time.Hour,
	}
	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, policy, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res := &domain.Reservation{ID: "token-1", EventID: "e1", ParticipantID: "p1"}
	event := &domain.Event{ID: "e1", StartsAt: now.Add(3 * time.Hour)}

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "outside_window"
	})).Return(nil)

	_, err := svc.CheckIn(context.Background(), "token-1", "gate-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutsideAdmissionWindow)
}

func TestCheckInService_CheckIn_TooLate(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	policy := config.CheckInConfig{
		Enforce:      true,
		WindowBefore: 2 * time.Hour,
		WindowAfter:  6 * time.Hour,
	}
	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, policy, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res := &domain.Reservation{ID: "token-1", EventID: "e1", ParticipantID: "p1"}
	event := &domain.Event{ID: "e1", StartsAt: now.Add(-7 * time.Hour)}

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	audit.EXPECT().PublishScan(mock.Anything, mock.MatchedBy(func(scan domain.ScanAudit) bool {
		return scan.Result == "outside_window"
	})).Return(nil)

	_, err := svc.CheckIn(context.Background(), "token-1", "gate-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutsideAdmissionWindow)
}

func TestCheckInService_CheckIn_AuditFailureDoesNotBlock(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	audit := mocks.NewMockAuditPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCheckInService(reservationRepo, eventRepo, audit, notifier, relaxedPolicy(), log)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res := &domain.Reservation{ID: "token-1", EventID: "e1", ParticipantID: "p1"}
	event := &domain.Event{ID: "e1"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "token-1").Return(res, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservationRepo.EXPECT().Admit(mock.Anything, "token-1", "gate-1").Return(now, nil)
	audit.EXPECT().PublishScan(mock.Anything, mock.Anything).Return(assert.AnError)
	notifier.EXPECT().NotifyAdmitted(mock.Anything, mock.Anything, event).Return()

	record, err := svc.CheckIn(context.Background(), "token-1", "gate-1")

	require.NoError(t, err)
	assert.Equal(t, now, record.AdmittedAt)

	time.Sleep(50 * time.Millisecond)
}
