package ports

import (
	"context"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
)

type Notifier interface {
	NotifyReservationCreated(ctx context.Context, res *domain.Reservation, event *domain.Event)
	NotifyReservationCancelled(ctx context.Context, res *domain.Reservation, event *domain.Event)
	NotifyAdmitted(ctx context.Context, record *domain.AdmissionRecord, event *domain.Event)
	NotifyOverCapacity(ctx context.Context, oc domain.OverCapacityEvent)
}
