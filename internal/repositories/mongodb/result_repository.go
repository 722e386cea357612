package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure ResultRepository implements repositories.ResultRepository
var _ repositories.ResultRepository = (*ResultRepository)(nil)

// ResultRepository implements repositories.ResultRepository
type ResultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{
		collection: db.Collection(ResultsCollection),
	}
}

// Create inserts a new result, assigning its ID and timestamps
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	now := time.Now()
	result.ID = primitive.NewObjectID()
	result.CreatedAt = now
	result.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, result)
	return err
}

// FindByID finds a result by ID
func (r *ResultRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Result, error) {
	var result models.Result
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// FindAll returns all results, newest draw date first
func (r *ResultRepository) FindAll(ctx context.Context) ([]*models.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*models.Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	// Ensure an empty slice is returned instead of nil
	if results == nil {
		results = []*models.Result{}
	}
	return results, nil
}

// Delete removes a result and returns the removed document
func (r *ResultRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Result, error) {
	var result models.Result
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Count counts all results
func (r *ResultRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
