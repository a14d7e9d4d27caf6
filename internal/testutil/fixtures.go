package testutil

import (
	"context"
	"testing"

	recordsstore "github.com/dalemusser/datavizz/internal/app/store/records"
	"github.com/dalemusser/datavizz/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateRecord inserts a record with the given sector, topic and region
// into the default collection and returns it.
func (f *Fixtures) CreateRecord(ctx context.Context, sector, topic, region string) models.Record {
	f.t.Helper()

	rec := models.Record{
		ID:         models.NewID(),
		EndYear:    "2027",
		StartYear:  "2017",
		Intensity:  6,
		Likelihood: 3,
		Relevance:  2,
		Sector:     models.Text(sector),
		Topic:      models.Text(topic),
		Region:     models.Text(region),
		Pestle:     "Industries",
		Source:     "EIA",
		Country:    "United States of America",
		Title:      "Test insight",
	}
	return f.InsertRecord(ctx, rec)
}

// InsertRecord inserts rec as-is, assigning an ID when it has none.
func (f *Fixtures) InsertRecord(ctx context.Context, rec models.Record) models.Record {
	f.t.Helper()

	if rec.ID == "" {
		rec.ID = models.NewID()
	}
	if _, err := f.db.Collection(recordsstore.DefaultCollection).InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test record: %v", err)
	}
	return rec
}

// CreateRawRecord inserts an arbitrary document, for testing how loosely
// typed source data decodes.
func (f *Fixtures) CreateRawRecord(ctx context.Context, doc map[string]any) {
	f.t.Helper()

	if _, err := f.db.Collection(recordsstore.DefaultCollection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create raw test record: %v", err)
	}
}
