package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tariff-tracker/backend/pkg/models"
)

const watchlistCollection = "watchlist"

// StoreError wraps any persistence failure. Callers must treat the store
// being down as non-fatal to the rest of the system.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("watchlist store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type WatchlistRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewWatchlistRepo(mongoURL, dbName string) (*WatchlistRepo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, &StoreError{Op: "connect", Err: err}
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, &StoreError{Op: "ping", Err: err}
	}

	coll := client.Database(dbName).Collection(watchlistCollection)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	// Indexes might already exist; not fatal.
	coll.Indexes().CreateMany(ctx, indexes)

	return &WatchlistRepo{client: client, coll: coll}, nil
}

func (r *WatchlistRepo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

// Add persists a new entry. CreatedAt is assigned here, at write time —
// callers never supply it. Repeated identical saves produce repeated entries;
// the query is not validated against any tariff source.
func (r *WatchlistRepo) Add(ctx context.Context, query string, country models.Country, tariffType models.TariffType) (*models.WatchlistEntry, error) {
	entry := &models.WatchlistEntry{
		Query:      query,
		Country:    country,
		TariffType: tariffType,
		CreatedAt:  time.Now().UTC(),
	}

	result, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return nil, &StoreError{Op: "add", Err: err}
	}
	entry.ID = result.InsertedID.(primitive.ObjectID)
	return entry, nil
}

// ListAllNewestFirst returns every entry ordered by created_at descending.
// Ties break by _id descending: ObjectIDs grow monotonically within a
// process, so of two entries written in the same instant the later insert
// still sorts first. An empty store yields an empty slice, not an error.
func (r *WatchlistRepo) ListAllNewestFirst(ctx context.Context) ([]models.WatchlistEntry, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer cursor.Close(ctx)

	entries := []models.WatchlistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return entries, nil
}
