package services

import (
	"context"
	"fmt"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ticketService struct {
	ticketRepo repositories.TicketRepository
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo repositories.TicketRepository) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
	}
}

func (s *ticketService) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	tickets, err := s.ticketRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *ticketService) GetTicket(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket %s: %w", id.Hex(), err)
	}
	return ticket, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	if ticket.Type == "" {
		ticket.Type = models.TicketTypeDaily
	}
	if ticket.Images == nil {
		ticket.Images = []string{}
	}
	if err := validateRecord(ticket); err != nil {
		return nil, err
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return ticket, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete ticket %s: %w", id.Hex(), err)
	}
	return ticket, nil
}
