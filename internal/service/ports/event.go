package ports

import (
	"context"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateCapacity(ctx context.Context, id string, capacity *int) error
	ListOverCapacity(ctx context.Context) ([]domain.OverCapacityEvent, error)
}
