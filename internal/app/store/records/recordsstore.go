// internal/app/store/records/recordsstore.go
package recordsstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/datavizz/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection the dashboard reads from.
const DefaultCollection = "Data"

// DefaultLimit is the number of documents served to the dashboard.
const DefaultLimit = 50

// Store provides read-only access to the insight records.
type Store struct {
	c *mongo.Collection
}

// New creates a records store over the named collection.
// An empty name selects DefaultCollection.
func New(db *mongo.Database, collection string) *Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{c: db.Collection(collection)}
}

// List returns up to limit records in natural order.
// A limit of 0 or less selects DefaultLimit. The result is never nil.
func (s *Store) List(ctx context.Context, limit int64) ([]models.Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.Record, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return out, nil
}
