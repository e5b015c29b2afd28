package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const configCollection = "config_app"

// ConfigRepository reads the application key/value settings that seed the
// app cache. It implements ports.CacheSource.
type ConfigRepository struct {
	coll *mongo.Collection
}

func NewConfigRepository(db *mongo.Database) *ConfigRepository {
	return &ConfigRepository{coll: db.Collection(configCollection)}
}

type configEntry struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}

func (r *ConfigRepository) LoadAll(ctx context.Context) (map[string]string, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find app config: %w", err)
	}

	var docs []configEntry
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode app config: %w", err)
	}

	out := make(map[string]string, len(docs))
	for _, d := range docs {
		if d.Key == "" {
			continue
		}
		out[d.Key] = d.Value
	}
	return out, nil
}
