// Package repository provides methods to initialize db and perform different db queries.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katiamach/weather-travel-planner/internal/model"
)

// DB collections.
const (
	plansCollection = "plans"
)

// DB errors.
var (
	ErrNoSuchPlan = errors.New("plan with the given id does not exist")
)

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates new repository from mongo database.
func New(ctx context.Context, uri, dbName string) (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	db := client.Database(dbName)

	err = createIndexes(ctxWithTimeout, db)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// CreateIndexes creates necessary indexes for collections.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "region", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}

	_, err := db.Collection(plansCollection).Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Disconnect(ctxWithTimeout); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// InsertPlan inserts a finished plan into plans collection.
func (r *Repository) InsertPlan(ctx context.Context, plan *model.Plan) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Collection(plansCollection).InsertOne(ctxWithTimeout, plan)
	if err != nil {
		return fmt.Errorf("failed to insert plan %s: %w", plan.ID, err)
	}

	return nil
}

// GetPlan gets plan by its id.
func (r *Repository) GetPlan(ctx context.Context, id string) (*model.Plan, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id": id,
	}

	plan := new(model.Plan)
	err := r.db.Collection(plansCollection).FindOne(ctxWithTimeout, filter).Decode(plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoSuchPlan
	}
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// ListPlans gets the newest plans, of one region if it is not empty.
func (r *Repository) ListPlans(ctx context.Context, region string, limit int) ([]*model.Plan, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if region != "" {
		filter["region"] = region
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	return r.filterPlans(ctxWithTimeout, filter, opts)
}

func (r *Repository) filterPlans(ctx context.Context, filter primitive.M, opts *options.FindOptions) ([]*model.Plan, error) {
	plans := make([]*model.Plan, 0)

	cur, err := r.db.Collection(plansCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		p := model.Plan{}
		err := cur.Decode(&p)
		if err != nil {
			return nil, err
		}

		plans = append(plans, &p)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
