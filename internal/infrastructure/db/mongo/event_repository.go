package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

const collectionAuditEvents = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditEvents)}
}

type auditDoc struct {
	ID         string    `bson:"_id"`
	Action     string    `bson:"action"`
	Entity     string    `bson:"entity"`
	EntityID   int64     `bson:"entity_id"`
	UserID     int64     `bson:"user_id,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func toAuditDoc(event *domain.AuditEvent, recordedAt time.Time) auditDoc {
	return auditDoc{
		ID:         event.ID,
		Action:     event.Action,
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		UserID:     event.UserID,
		OccurredAt: event.OccurredAt.UTC(),
		RecordedAt: recordedAt.UTC(),
	}
}

// Insert persists event to the audit_events collection. Events without an ID
// get a random UUID.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if _, err := r.col.InsertOne(ctx, toAuditDoc(event, time.Now())); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Already recorded.
			return nil
		}
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the audit_events collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "occurred_at", Value: 1}}},
		{Keys: bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
