package ports

import (
	"context"

	"github.com/reinstack44/CollegeEventSystem/internal/domain"
)

// AuditPublisher appends gate scan attempts to a durable trail.
// Publishing is best-effort: failures must never affect the check-in
// outcome.
type AuditPublisher interface {
	PublishScan(ctx context.Context, entry domain.ScanAudit) error
}
