package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// Insert persists one auth event to the auth_events audit collection.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := bson.M{
		"subject":     event.Subject,
		"action":      event.Action,
		"at":          event.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.Detail != "" {
		doc["detail"] = event.Detail
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

// FindRecent returns up to limit events, newest first.
func (r *AuditRepository) FindRecent(ctx context.Context, limit int64) ([]*domain.AuthEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find auth events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*domain.AuthEvent{}
	for cursor.Next(ctx) {
		var doc struct {
			Subject string    `bson:"subject"`
			Action  string    `bson:"action"`
			At      time.Time `bson:"at"`
			Detail  string    `bson:"detail"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode auth event: %w", err)
		}
		events = append(events, &domain.AuthEvent{
			Subject: doc.Subject,
			Action:  doc.Action,
			At:      doc.At.UTC(),
			Detail:  doc.Detail,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate auth events: %w", err)
	}
	return events, nil
}
