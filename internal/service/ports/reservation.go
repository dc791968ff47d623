package ports

import (
	"context"
	"time"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Admit(ctx context.Context, id, admittedBy string) (time.Time, error)
	Cancel(ctx context.Context, id, requesterID string, admin bool) (*domain.Reservation, error)
	CountByStatus(ctx context.Context, eventID string) (domain.StatusCounts, error)
	ListByEvent(ctx context.Context, eventID string, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	ListByParticipant(ctx context.Context, participantID string) ([]*domain.Reservation, error)
}
