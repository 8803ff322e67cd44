package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection        = "users"
	profilesCollection     = "profiles"
	jobPostsCollection     = "job_posts"
	applicationsCollection = "applications"
)

// EnsureIndexes creates the unique indexes backing the uniqueness
// invariants: user email, one profile per user, one application per
// (user, job post) pair. The application-level pre-checks stay in
// place; these make the duplicate race lose at the storage level.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = db.Collection(profilesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create profiles user_id index: %w", err)
	}

	_, err = db.Collection(applicationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "job_post_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create applications user_id/job_post_id index: %w", err)
	}
	return nil
}

// findPage runs a count plus a skip/limit find against coll and
// decodes the current page.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, skip, limit int) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}

	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return items, total, nil
}
