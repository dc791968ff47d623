package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a reservation while holding the event row lock, so all
// concurrent attempts for the same event serialize on the capacity
// count. The partial unique index on (event_id, participant_id) backs
// the duplicate rule independently of the in-transaction count.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", connErr(err))
	}
	defer tx.Rollback()

	capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	var capacity sql.NullInt64
	if err = tx.QueryRowContext(ctx, capQuery, res.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	// Duplicate outranks capacity: a participant who already holds a
	// live reservation is told so even when the event is full.
	dupQuery := `SELECT EXISTS (
					SELECT 1 FROM reservations
					WHERE event_id = $1 AND participant_id = $2 AND status = ANY($3)
				 )`
	var exists bool
	if err = tx.QueryRowContext(
		ctx, dupQuery, res.EventID, res.ParticipantID,
		pq.Array(domain.CountedStatuses),
	).Scan(&exists); err != nil {
		return fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return domain.ErrAlreadyReserved
	}

	if capacity.Valid {
		countQuery := `SELECT COUNT(*) FROM reservations
					   WHERE event_id = $1 AND status = ANY($2)`
		var taken int64
		if err = tx.QueryRowContext(
			ctx, countQuery, res.EventID,
			pq.Array(domain.CountedStatuses),
		).Scan(&taken); err != nil {
			return fmt.Errorf("count reservations: %w", err)
		}

		if taken >= capacity.Int64 {
			return domain.ErrCapacityExceeded
		}
	}

	query := `INSERT INTO reservations (id, event_id, participant_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.EventID,
		res.ParticipantID, res.Status, res.CreatedAt, res.UpdatedAt,
	)

	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyReserved
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, event_id, participant_id, status, created_at, updated_at, admitted_at, admitted_by
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", connErr(err))
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// Admit flips the reservation from active to admitted. The conditional
// update is the arbiter under concurrent scans of the same token:
// exactly one statement matches a row, every other caller gets the
// already-admitted timestamp from the follow-up read.
func (r *ReservationRepository) Admit(ctx context.Context, id, admittedBy string) (time.Time, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("begin tx: %w", connErr(err))
	}
	defer tx.Rollback()

	query := `UPDATE reservations
			  SET status = $2, admitted_at = now(), admitted_by = $3, updated_at = now()
			  WHERE id = $1 AND status = $4
			  RETURNING admitted_at`
	var admittedAt time.Time
	err = tx.QueryRowContext(
		ctx, query, id,
		domain.ReservationStatusAdmitted, admittedBy,
		domain.ReservationStatusActive,
	).Scan(&admittedAt)

	if err == nil {
		return admittedAt, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("admit reservation: %w", err)
	}

	// Lost the race or the token never pointed at an active row.
	var status string
	var prior sql.NullTime
	checkQuery := `SELECT status, admitted_at FROM reservations WHERE id = $1`
	if err = tx.QueryRowContext(ctx, checkQuery, id).Scan(&status, &prior); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, domain.ErrReservationNotFound
		}
		return time.Time{}, fmt.Errorf("check reservation: %w", err)
	}

	switch domain.ReservationStatus(status) {
	case domain.ReservationStatusAdmitted:
		return time.Time{}, &domain.AlreadyAdmittedError{AdmittedAt: prior.Time}
	case domain.ReservationStatusCancelled:
		return time.Time{}, domain.ErrReservationCancelled
	default:
		return time.Time{}, domain.ErrReservationNotFound
	}
}

// Cancel transitions an active reservation to cancelled, freeing its
// capacity slot. Only the owning participant may cancel unless the
// admin override is set.
func (r *ReservationRepository) Cancel(ctx context.Context, id, requesterID string, admin bool) (*domain.Reservation, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", connErr(err))
	}
	defer tx.Rollback()

	query := `SELECT id, event_id, participant_id, status, created_at, updated_at, admitted_at, admitted_by
			  FROM reservations
			  WHERE id = $1
			  FOR UPDATE`
	res, err := scanReservation(func(dest ...any) error {
		return tx.QueryRowContext(ctx, query, id).Scan(dest...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	if !admin && res.ParticipantID != requesterID {
		return nil, domain.ErrNotOwner
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.ErrNotActive
	}

	update := `UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, id, domain.ReservationStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	res.Status = domain.ReservationStatusCancelled
	return res, tx.Commit()
}

func (r *ReservationRepository) CountByStatus(ctx context.Context, eventID string) (domain.StatusCounts, error) {
	query := `SELECT status, COUNT(*) FROM reservations
			  WHERE event_id = $1
			  GROUP BY status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count by status: %w", connErr(err))
	}
	defer rows.Close()

	var counts domain.StatusCounts
	for rows.Next() {
		var status string
		var n int
		if err = rows.Scan(&status, &n); err != nil {
			return domain.StatusCounts{}, fmt.Errorf("scan count: %w", err)
		}
		switch domain.ReservationStatus(status) {
		case domain.ReservationStatusActive:
			counts.Active = n
		case domain.ReservationStatusAdmitted:
			counts.Admitted = n
		case domain.ReservationStatusCancelled:
			counts.Cancelled = n
		}
	}

	return counts, rows.Err()
}

func (r *ReservationRepository) ListByEvent(ctx context.Context, eventID string, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, event_id, participant_id, status, created_at, updated_at, admitted_at, admitted_by
					FROM reservations
					WHERE event_id = $1`)
	args := []any{eventID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if filter.Participant != "" {
		args = append(args, "%"+filter.Participant+"%")
		fmt.Fprintf(&sb, " AND participant_id ILIKE $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations by event: %w", connErr(err))
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByParticipant(ctx context.Context, participantID string) ([]*domain.Reservation, error) {
	query := `SELECT id, event_id, participant_id, status, created_at, updated_at, admitted_at, admitted_by
			  FROM reservations
			  WHERE participant_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by participant: %w", connErr(err))
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}
	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var admittedAt sql.NullTime
	var admittedBy sql.NullString
	if err := scan(
		&res.ID, &res.EventID, &res.ParticipantID, &res.Status,
		&res.CreatedAt, &res.UpdatedAt, &admittedAt, &admittedBy,
	); err != nil {
		return nil, err
	}
	if admittedAt.Valid {
		t := admittedAt.Time
		res.AdmittedAt = &t
	}
	res.AdmittedBy = admittedBy.String
	return &res, nil
}
