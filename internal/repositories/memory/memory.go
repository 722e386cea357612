// Package memory provides process-local repository implementations used for
// local development without MongoDB and for tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repositories.ResultRepository = (*ResultRepository)(nil)
	_ repositories.TicketRepository = (*TicketRepository)(nil)
	_ repositories.UserRepository   = (*UserRepository)(nil)
)

// ErrDuplicateEmail mirrors the unique email index of the MongoDB users collection
var ErrDuplicateEmail = errors.New("email already exists")

// ResultRepository keeps results in insertion order
type ResultRepository struct {
	mu    sync.RWMutex
	items []models.Result
}

// NewResultRepository creates an empty ResultRepository
func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

func (r *ResultRepository) Create(_ context.Context, result *models.Result) error {
	now := time.Now()
	result.ID = primitive.NewObjectID()
	result.CreatedAt = now
	result.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *result)
	return nil
}

func (r *ResultRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			found := r.items[i]
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll returns results newest draw date first; equal dates keep the most recently created first
func (r *ResultRepository) FindAll(_ context.Context) ([]*models.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Result, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		item := r.items[i]
		out = append(out, &item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *ResultRepository) Delete(_ context.Context, id primitive.ObjectID) (*models.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			removed := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *ResultRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// TicketRepository keeps tickets in insertion order
type TicketRepository struct {
	mu    sync.RWMutex
	items []models.Ticket
}

// NewTicketRepository creates an empty TicketRepository
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

func (r *TicketRepository) Create(_ context.Context, ticket *models.Ticket) error {
	now := time.Now()
	ticket.ID = primitive.NewObjectID()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	if ticket.Images == nil {
		ticket.Images = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *copyTicket(ticket))
	return nil
}

// copyTicket copies t so callers never share the stored Images slice
func copyTicket(t *models.Ticket) *models.Ticket {
	c := *t
	c.Images = append([]string{}, t.Images...)
	return &c
}

func (r *TicketRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			return copyTicket(&r.items[i]), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll returns tickets soonest draw date first; equal dates keep creation order
func (r *TicketRepository) FindAll(_ context.Context) ([]*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Ticket, 0, len(r.items))
	for i := range r.items {
		out = append(out, copyTicket(&r.items[i]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *TicketRepository) Delete(_ context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			removed := copyTicket(&r.items[i])
			r.items = append(r.items[:i], r.items[i+1:]...)
			return removed, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *TicketRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *TicketRepository) CountFromDate(_ context.Context, date string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for i := range r.items {
		if r.items[i].Date >= date {
			n++
		}
	}
	return n, nil
}

// UserRepository stores admin accounts keyed by lower-cased email
type UserRepository struct {
	mu    sync.RWMutex
	items []models.User
}

// NewUserRepository creates an empty UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	email := strings.ToLower(strings.TrimSpace(user.Email))

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Email == email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now
	r.items = append(r.items, *user)
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].Email == email {
			found := r.items[i]
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			found := r.items[i]
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.items))
	r.items = nil
	return n, nil
}
