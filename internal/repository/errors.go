package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
)

// connErr maps driver connection failures, after the retry budget is
// spent, onto ErrUnavailable so callers can answer 503 instead of an
// opaque 500. Class 08 is the postgres connection-exception family.
func connErr(err error) error {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return domain.ErrUnavailable
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), "08") {
		return domain.ErrUnavailable
	}
	return err
}
