package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func validInput() domain.CreateEventInput {
	opens := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.CreateEventInput{
		Title:                "Tech Fest",
		Venue:                "Main Auditorium",
		School:               "Engineering",
		Capacity:             intPtr(100),
		RegistrationOpensAt:  opens,
		RegistrationClosesAt: opens.Add(7 * 24 * time.Hour),
		StartsAt:             opens.Add(8 * 24 * time.Hour),
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Tech Fest", event.Title)
	require.NotNil(t, event.Capacity)
	assert.Equal(t, 100, *event.Capacity)
}

func TestEventService_CreateEvent_UnlimitedCapacity(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	input := validInput()
	input.Capacity = nil

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, event.Capacity)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{
			name:   "empty title",
			mutate: func(in *domain.CreateEventInput) { in.Title = "" },
		},
		{
			name:   "zero capacity",
			mutate: func(in *domain.CreateEventInput) { in.Capacity = intPtr(0) },
		},
		{
			name:   "negative capacity",
			mutate: func(in *domain.CreateEventInput) { in.Capacity = intPtr(-5) },
		},
		{
			name: "window inverted",
			mutate: func(in *domain.CreateEventInput) {
				in.RegistrationClosesAt = in.RegistrationOpensAt.Add(-time.Hour)
			},
		},
		{
			name: "window empty",
			mutate: func(in *domain.CreateEventInput) {
				in.RegistrationClosesAt = in.RegistrationOpensAt
			},
		},
		{
			name:   "missing starts_at",
			mutate: func(in *domain.CreateEventInput) { in.StartsAt = time.Time{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockEventRepo(t)
			reservationRepo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)
			log := newTestLogger(t)

			svc := NewEventService(repo, reservationRepo, notifier, log)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateEvent(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_UpdateCapacity_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	updated := &domain.Event{ID: "e1", Capacity: intPtr(50)}

	repo.EXPECT().UpdateCapacity(mock.Anything, "e1", intPtr(50)).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(updated, nil)
	reservationRepo.EXPECT().CountByStatus(mock.Anything, "e1").
		Return(domain.StatusCounts{Active: 30, Admitted: 10}, nil)

	event, overCapacity, err := svc.UpdateCapacity(context.Background(), "e1", intPtr(50))

	require.NoError(t, err)
	assert.False(t, overCapacity)
	assert.Equal(t, "e1", event.ID)
}

func TestEventService_UpdateCapacity_ShrinkBelowReserved(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	updated := &domain.Event{ID: "e1", Capacity: intPtr(20)}

	repo.EXPECT().UpdateCapacity(mock.Anything, "e1", intPtr(20)).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(updated, nil)
	// cancelled reservations do not count against capacity
	reservationRepo.EXPECT().CountByStatus(mock.Anything, "e1").
		Return(domain.StatusCounts{Active: 15, Admitted: 10, Cancelled: 40}, nil)

	_, overCapacity, err := svc.UpdateCapacity(context.Background(), "e1", intPtr(20))

	require.NoError(t, err)
	assert.True(t, overCapacity)
}

func TestEventService_UpdateCapacity_ToUnlimited(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	updated := &domain.Event{ID: "e1"}

	repo.EXPECT().UpdateCapacity(mock.Anything, "e1", (*int)(nil)).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(updated, nil)

	_, overCapacity, err := svc.UpdateCapacity(context.Background(), "e1", nil)

	require.NoError(t, err)
	assert.False(t, overCapacity)
}

func TestEventService_UpdateCapacity_Invalid(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	_, _, err := svc.UpdateCapacity(context.Background(), "e1", intPtr(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_UpdateCapacity_EventNotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	repo.EXPECT().UpdateCapacity(mock.Anything, "missing", intPtr(10)).Return(domain.ErrEventNotFound)

	_, _, err := svc.UpdateCapacity(context.Background(), "missing", intPtr(10))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_AuditCapacity_FlagsAndNotifies(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	flagged := []domain.OverCapacityEvent{
		{EventID: "e1", Title: "Tech Fest", Capacity: 20, Reserved: 25},
		{EventID: "e2", Title: "Job Fair", Capacity: 50, Reserved: 51},
	}

	repo.EXPECT().ListOverCapacity(mock.Anything).Return(flagged, nil)
	notifier.EXPECT().NotifyOverCapacity(mock.Anything, flagged[0]).Return()
	notifier.EXPECT().NotifyOverCapacity(mock.Anything, flagged[1]).Return()

	result, err := svc.AuditCapacity(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_AuditCapacity_NoneFlagged(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	repo.EXPECT().ListOverCapacity(mock.Anything).Return(nil, nil)

	result, err := svc.AuditCapacity(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestEventService_AuditCapacity_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewEventService(repo, reservationRepo, notifier, log)

	repo.EXPECT().ListOverCapacity(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.AuditCapacity(context.Background())

	require.Error(t, err)
}
