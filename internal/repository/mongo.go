package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDBClient initializes new mongoDB client and checks the connection.
func NewMongoDBClient(ctx context.Context, uri string) (*mongo.Client, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctxWithTimeout, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(ctxWithTimeout, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}
