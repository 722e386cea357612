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

// Ensure TicketRepository implements repositories.TicketRepository
var _ repositories.TicketRepository = (*TicketRepository)(nil)

// TicketRepository implements repositories.TicketRepository
type TicketRepository struct {
	collection *mongo.Collection
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *mongo.Database) *TicketRepository {
	return &TicketRepository{
		collection: db.Collection(TicketsCollection),
	}
}

// Create inserts a new ticket, assigning its ID and timestamps
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	now := time.Now()
	ticket.ID = primitive.NewObjectID()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	if ticket.Images == nil {
		ticket.Images = []string{}
	}
	_, err := r.collection.InsertOne(ctx, ticket)
	return err
}

// FindByID finds a ticket by ID
func (r *TicketRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// FindAll returns all tickets, soonest draw date first
func (r *TicketRepository) FindAll(ctx context.Context) ([]*models.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []*models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}

	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	for _, t := range tickets {
		if t.Images == nil {
			t.Images = []string{}
		}
	}
	return tickets, nil
}

// Delete removes a ticket and returns the removed document
func (r *TicketRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// Count counts all tickets
func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountFromDate counts tickets drawn on or after date
func (r *TicketRepository) CountFromDate(ctx context.Context, date string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"date": bson.M{"$gte": date}})
}
