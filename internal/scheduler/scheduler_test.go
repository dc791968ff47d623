package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/scheduler/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLogger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.Nop()
}

func TestScheduler_Tick_FlagsOverCapacity(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 50*time.Millisecond, log)

	flagged := []domain.OverCapacityEvent{
		{EventID: "e1", Title: "Tech Fest", Capacity: 20, Reserved: 25},
	}
	auditor.EXPECT().AuditCapacity(mock.Anything).Return(flagged, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 50*time.Millisecond, log)

	auditor.EXPECT().AuditCapacity(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	auditor := mocks.NewMockCapacityAuditor(t)
	log := newTestLogger(t)

	s := New(auditor, 30*time.Millisecond, log)

	auditor.EXPECT().AuditCapacity(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(auditor.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
