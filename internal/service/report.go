package service

import (
	"context"
	"fmt"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/reinstack44/CollegeEventSystem/internal/service/ports"
)

// ReportService is the read-only reporting facade. Every answer is
// computed from the reservation ledger on demand; a cached count could
// silently diverge from the capacity invariant.
type ReportService struct {
	reservationRepo ports.ReservationRepo
	eventRepo       ports.EventRepo
}

func NewReportService(reservationRepo ports.ReservationRepo, eventRepo ports.EventRepo) *ReportService {
	return &ReportService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
	}
}

func (s *ReportService) Summary(ctx context.Context, eventID string) (domain.StatusCounts, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return domain.StatusCounts{}, fmt.Errorf("check event: %w", err)
	}

	counts, err := s.reservationRepo.CountByStatus(ctx, eventID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count reservations: %w", err)
	}

	return counts, nil
}

func (s *ReportService) ListReservations(ctx context.Context, eventID string, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	return s.reservationRepo.ListByEvent(ctx, eventID, filter)
}
