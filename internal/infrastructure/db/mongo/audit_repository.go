package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/journalapp/admin-service/internal/core/domain"
)

const auditCollection = "admin_audit"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// Insert persists an entry to the admin_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := bson.M{
		"_id":         entry.ID,
		"action":      string(entry.Action),
		"user_name":   entry.UserName,
		"outcome":     string(entry.Outcome),
		"occurred_at": entry.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if entry.Error != "" {
		doc["error"] = entry.Error
	}
	if entry.RequestID != "" {
		doc["request_id"] = entry.RequestID
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
