package db

import (
	"context"
	"time"

	"github.com/studenthub/apiserver/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names exposed by the persistence gateway.
const (
	CollUsers       = "users"
	CollPosts       = "blog_posts"
	CollPapers      = "papers"
	CollEbooks      = "ebooks"
	CollStudentInfo = "student_info"
)

const defaultPingTimeout = 5 * time.Second

// Connect opens a client against the configured MongoDB deployment and
// verifies connectivity with a bounded ping.
func Connect(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Database returns the application database handle.
func Database(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

// EnsureIndexes creates the indexes the application relies on. The
// unique email index makes duplicate registration a store-level
// conflict instead of a check-then-insert race.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(CollUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
