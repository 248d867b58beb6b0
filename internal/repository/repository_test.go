package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tj/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/katiamach/weather-travel-planner/internal/model"
)

func newMockRepository(mt *mtest.T) *Repository {
	return &Repository{
		client: mt.Client,
		db:     mt.DB,
	}
}

func planDoc(id, region, city string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "region", Value: region},
		{Key: "year", Value: 2025},
		{Key: "recommendedCity", Value: city},
		{Key: "createdAt", Value: createdAt},
	}
}

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ns := "test.plans"
	created := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)

	mt.Run("create indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := createIndexes(context.Background(), mt.DB)
		assert.Nil(mt, err)
	})

	mt.Run("insert plan", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := newMockRepository(mt).InsertPlan(context.Background(), &model.Plan{ID: "p1", Region: "California"})
		assert.Nil(mt, err)
	})

	mt.Run("insert duplicate plan", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := newMockRepository(mt).InsertPlan(context.Background(), &model.Plan{ID: "p1"})
		assert.NotNil(mt, err)
	})

	mt.Run("get plan", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			planDoc("p1", "California", "Napa", created)))

		plan, err := newMockRepository(mt).GetPlan(context.Background(), "p1")
		assert.Nil(mt, err)
		assert.Equal(mt, "p1", plan.ID)
		assert.Equal(mt, "California", plan.Region)
		assert.Equal(mt, 2025, plan.Year)
		assert.Equal(mt, "Napa", plan.RecommendedCity)
		assert.True(mt, created.Equal(plan.CreatedAt))
	})

	mt.Run("get missing plan", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		plan, err := newMockRepository(mt).GetPlan(context.Background(), "missing")
		assert.Nil(mt, plan)
		assert.True(mt, errors.Is(err, ErrNoSuchPlan))
	})

	mt.Run("list plans", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			planDoc("p2", "Oregon", "Bend", created.Add(time.Hour)),
			planDoc("p1", "California", "Napa", created),
		))

		plans, err := newMockRepository(mt).ListPlans(context.Background(), "", 10)
		assert.Nil(mt, err)
		assert.Len(mt, plans, 2)
		assert.Equal(mt, "p2", plans[0].ID)
		assert.Equal(mt, "p1", plans[1].ID)
	})

	mt.Run("list no plans", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		plans, err := newMockRepository(mt).ListPlans(context.Background(), "Utah", 10)
		assert.Nil(mt, err)
		assert.Len(mt, plans, 0)
	})
}
