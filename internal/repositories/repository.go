package repositories

import (
	"context"
	"errors"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches the lookup
var ErrNotFound = errors.New("record not found")

// ResultRepository defines the interface for result data operations
type ResultRepository interface {
	Create(ctx context.Context, result *models.Result) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Result, error)
	// FindAll returns every result, newest draw date first
	FindAll(ctx context.Context) ([]*models.Result, error)
	// Delete removes the result and returns the removed document
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Result, error)
	Count(ctx context.Context) (int64, error)
}

// TicketRepository defines the interface for ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	// FindAll returns every ticket, soonest draw date first
	FindAll(ctx context.Context) ([]*models.Ticket, error)
	// Delete removes the ticket and returns the removed document
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	Count(ctx context.Context) (int64, error)
	// CountFromDate counts tickets drawn on or after date (YYYY-MM-DD)
	CountFromDate(ctx context.Context, date string) (int64, error)
}

// UserRepository defines the interface for admin account operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	DeleteAll(ctx context.Context) (int64, error)
}
