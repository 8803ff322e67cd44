package sequence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "counters"

// Store hands out auto-incrementing integer IDs, one counter per
// collection name, backed by the counters collection.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

// Next atomically increments and returns the counter for name,
// creating it at 1 on first use. The increment-and-fetch is a single
// FindOneAndUpdate command, so concurrent callers never see the same
// value.
func (s *Store) Next(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Value int `bson:"sequence_value"`
	}
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"sequence_value": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next sequence value for %q: %w", name, err)
	}
	return counter.Value, nil
}

// Reset deletes the counter for name so the next allocation restarts
// at 1. There is no guard against in-flight allocations; only use it
// when wiping the database.
func (s *Store) Reset(ctx context.Context, name string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("reset sequence %q: %w", name, err)
	}
	return nil
}
