package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"feedapi/internal/config"
)

// NewMongo connects to MongoDB and verifies the server answers a ping
// before handing the database out.
func NewMongo(ctx context.Context, c config.MongoConfig) (*mongo.Database, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if c.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(c.Database), nil
}

// MongoPinger adapts a mongo database to the health check interface.
type MongoPinger struct {
	DB *mongo.Database
}

func (p MongoPinger) PingContext(ctx context.Context) error {
	return p.DB.Client().Ping(ctx, readpref.Primary())
}
