// Command dbreset wipes every data collection and resets the ID
// counters so the next inserts start at 1. Destructive; meant for
// development databases only.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/weblanjutan/jobseeker-api/internal/config"
	"github.com/weblanjutan/jobseeker-api/internal/sequence"
)

var collections = []string{"users", "profiles", "job_posts", "applications"}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)

	seq := sequence.NewStore(db)
	for _, name := range collections {
		result, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
		if err := seq.Reset(ctx, name); err != nil {
			log.Fatalf("Failed to reset counter for %s: %v", name, err)
		}
		log.Printf("Cleared %s (%d documents), counter reset", name, result.DeletedCount)
	}
	log.Println("Database reset complete.")
}
