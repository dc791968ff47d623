package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/service/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.Nop()
}

func openEvent(now time.Time) *domain.Event {
	return &domain.Event{
		ID:                   "e1",
		Title:                "Tech Fest",
		RegistrationOpensAt:  now.Add(-time.Hour),
		RegistrationClosesAt: now.Add(time.Hour),
		StartsAt:             now.Add(2 * time.Hour),
	}
}

func TestReservationService_Reserve_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	event := openEvent(now)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, event).Return()

	res, err := svc.Reserve(context.Background(), "e1", "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusActive, res.Status)
	assert.Equal(t, "e1", res.EventID)
	assert.Equal(t, "p1", res.ParticipantID)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, now, res.CreatedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Reserve_EmptyParticipant(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	_, err := svc.Reserve(context.Background(), "e1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Reserve_EventNotFound(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Reserve(context.Background(), "missing", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestReservationService_Reserve_BeforeWindowOpens(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	event := &domain.Event{
		ID:                   "e1",
		RegistrationOpensAt:  now.Add(time.Minute),
		RegistrationClosesAt: now.Add(time.Hour),
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Reserve(context.Background(), "e1", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWindowNotOpen)
}

func TestReservationService_Reserve_ExactlyAtOpen(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// opens_at is inclusive
	event := &domain.Event{
		ID:                   "e1",
		RegistrationOpensAt:  now,
		RegistrationClosesAt: now.Add(time.Hour),
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, event).Return()

	_, err := svc.Reserve(context.Background(), "e1", "p1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_ExactlyAtClose(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// closes_at is exclusive
	event := &domain.Event{
		ID:                   "e1",
		RegistrationOpensAt:  now.Add(-time.Hour),
		RegistrationClosesAt: now,
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Reserve(context.Background(), "e1", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWindowClosed)
}

func TestReservationService_Reserve_Duplicate(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(now), nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyReserved)

	_, err := svc.Reserve(context.Background(), "e1", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyReserved)
}

func TestReservationService_Reserve_CapacityExceeded(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(now), nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.Reserve(context.Background(), "e1", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	cancelled := &domain.Reservation{
		ID:            "r1",
		EventID:       "e1",
		ParticipantID: "p1",
		Status:        domain.ReservationStatusCancelled,
	}
	event := &domain.Event{ID: "e1", Title: "Tech Fest"}

	reservationRepo.EXPECT().Cancel(mock.Anything, "r1", "p1", false).Return(cancelled, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, cancelled, event).Return()

	err := svc.Cancel(context.Background(), "r1", "p1", false)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	reservationRepo.EXPECT().Cancel(mock.Anything, "r1", "p2", false).Return(nil, domain.ErrNotOwner)

	err := svc.Cancel(context.Background(), "r1", "p2", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_Cancel_NotActive(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	reservationRepo.EXPECT().Cancel(mock.Anything, "r1", "p1", false).Return(nil, domain.ErrNotActive)

	err := svc.Cancel(context.Background(), "r1", "p1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotActive)
}

func TestReservationService_Cancel_EventLookupFails(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	cancelled := &domain.Reservation{ID: "r1", EventID: "e1", ParticipantID: "p1"}

	reservationRepo.EXPECT().Cancel(mock.Anything, "r1", "p1", true).Return(cancelled, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, errors.New("db error"))

	// cancellation already committed, so the lookup failure is swallowed
	err := svc.Cancel(context.Background(), "r1", "p1", true)

	require.NoError(t, err)
}

func TestReservationService_ListByParticipant(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, eventRepo, notifier, log)

	reservations := []*domain.Reservation{
		{ID: "r1", EventID: "e1", ParticipantID: "p1", Status: domain.ReservationStatusActive},
		{ID: "r2", EventID: "e2", ParticipantID: "p1", Status: domain.ReservationStatusAdmitted},
	}
	reservationRepo.EXPECT().ListByParticipant(mock.Anything, "p1").Return(reservations, nil)

	result, err := svc.ListByParticipant(context.Background(), "p1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
