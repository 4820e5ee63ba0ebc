package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

// idempotency wraps the store so that a failing backend degrades to plain,
// non-idempotent creates instead of failing the request.
type idempotency struct {
	store ports.IdempotencyStore
	log   zerolog.Logger
}

// replay returns the record an earlier request with the same key created.
// ok is false when there is no key, no stored entry, or the stored record is
// gone.
func replay[T any](ctx context.Context, idem idempotency, scope, key string, find func(context.Context, int64) (*T, error)) (*T, bool) {
	if key == "" {
		return nil, false
	}

	id, found, err := idem.store.Lookup(ctx, scope, key)
	if err != nil {
		idem.log.Warn().Err(err).Str("scope", scope).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil, false
	}
	if !found {
		return nil, false
	}

	rec, err := find(ctx, id)
	if err != nil {
		idem.log.Warn().Err(err).Str("scope", scope).Int64("id", id).Msg("idempotent record unavailable, creating again")
		return nil, false
	}

	idem.log.Info().Str("scope", scope).Str("idempotency_key", key).Int64("id", id).Msg("idempotent replay")
	return rec, true
}

func (i idempotency) remember(ctx context.Context, scope, key string, id int64) {
	if key == "" {
		return
	}
	if err := i.store.Remember(ctx, scope, key, id); err != nil {
		i.log.Warn().Err(err).Str("scope", scope).Str("idempotency_key", key).Msg("failed to store idempotency key")
	}
}

// auditor turns successful mutations into audit events. The event is
// attributed to the authenticated caller when there is one, otherwise to the
// owning user.
type auditor struct {
	rec ports.AuditRecorder
	now func() time.Time
}

func newAuditor(rec ports.AuditRecorder) auditor {
	return auditor{rec: rec, now: time.Now}
}

func (a auditor) record(ctx context.Context, action, entity string, entityID, ownerID int64) {
	userID := ownerID
	if actor, ok := domain.ActorFromContext(ctx); ok {
		userID = actor
	}
	a.rec.Record(domain.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: a.now().UTC(),
	})
}
