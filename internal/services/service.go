package services

import (
	"context"
	"errors"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidData is returned when a record fails schema validation
	ErrInvalidData = errors.New("invalid data")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ResultService defines the interface for result-related operations
type ResultService interface {
	// ListResults returns all results, newest draw date first
	ListResults(ctx context.Context) ([]*models.Result, error)
	GetResult(ctx context.Context, id primitive.ObjectID) (*models.Result, error)
	CreateResult(ctx context.Context, result *models.Result) (*models.Result, error)
	// DeleteResult removes a result and returns it so attached files can be cleaned up
	DeleteResult(ctx context.Context, id primitive.ObjectID) (*models.Result, error)
}

// TicketService defines the interface for ticket-related operations
type TicketService interface {
	// ListTickets returns all tickets, soonest draw date first
	ListTickets(ctx context.Context) ([]*models.Ticket, error)
	GetTicket(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)
	DeleteTicket(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// SeedAdmin creates an admin account; reset removes every existing account first
	SeedAdmin(ctx context.Context, email, password string, reset bool) (*models.User, error)
}

// DashboardService defines the interface for admin dashboard figures
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}
