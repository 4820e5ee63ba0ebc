package ports

import (
	"context"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// IdempotencyStore remembers which record a create request produced so a
// retried request with the same key returns that record instead of a new one.
type IdempotencyStore interface {
	// Lookup returns the ID stored for key within scope, if any.
	Lookup(ctx context.Context, scope, key string) (int64, bool, error)
	Remember(ctx context.Context, scope, key string, id int64) error
}
