package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, venue, school, capacity,
			  		registration_opens_at, registration_closes_at, starts_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Venue, e.School, capacityParam(e.Capacity),
		e.RegistrationOpensAt, e.RegistrationClosesAt, e.StartsAt, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", connErr(err))
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, venue, school, capacity,
			  		registration_opens_at, registration_closes_at, starts_at, created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", connErr(err))
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, venue, school, capacity,
			  		registration_opens_at, registration_closes_at, starts_at, created_at, updated_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", connErr(err))
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// UpdateCapacity rewrites the capacity limit. A nil capacity lifts the
// limit. Shrinking below the current reservation count is allowed; the
// caller is responsible for flagging the resulting over-capacity state.
func (r *EventRepository) UpdateCapacity(ctx context.Context, id string, capacity *int) error {
	query := `UPDATE events SET capacity = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, capacityParam(capacity))
	if err != nil {
		return fmt.Errorf("update capacity: %w", connErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("capacity rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// ListOverCapacity finds events whose non-cancelled reservation count
// exceeds their finite capacity.
func (r *EventRepository) ListOverCapacity(ctx context.Context) ([]domain.OverCapacityEvent, error) {
	query := `SELECT e.id, e.title, e.capacity, COUNT(res.id) AS reserved
			  FROM events e
			  JOIN reservations res
			  	ON res.event_id = e.id
			  	AND res.status = ANY($1)
			  WHERE e.capacity IS NOT NULL
			  GROUP BY e.id
			  HAVING COUNT(res.id) > e.capacity`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(domain.CountedStatuses))
	if err != nil {
		return nil, fmt.Errorf("list over capacity: %w", connErr(err))
	}
	defer rows.Close()

	var res []domain.OverCapacityEvent
	for rows.Next() {
		var oc domain.OverCapacityEvent
		if err = rows.Scan(&oc.EventID, &oc.Title, &oc.Capacity, &oc.Reserved); err != nil {
			return nil, fmt.Errorf("scan over capacity: %w", err)
		}
		res = append(res, oc)
	}

	return res, rows.Err()
}

func capacityParam(capacity *int) sql.NullInt64 {
	if capacity == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*capacity), Valid: true}
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var capacity sql.NullInt64
	if err := scan(
		&e.ID, &e.Title, &e.Description, &e.Venue, &e.School, &capacity,
		&e.RegistrationOpensAt, &e.RegistrationClosesAt, &e.StartsAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if capacity.Valid {
		c := int(capacity.Int64)
		e.Capacity = &c
	}
	return &e, nil
}
