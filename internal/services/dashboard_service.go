package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"github.com/bhagyamlottery/agency-backend/internal/utils"
)

type dashboardService struct {
	resultRepo repositories.ResultRepository
	ticketRepo repositories.TicketRepository
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(resultRepo repositories.ResultRepository, ticketRepo repositories.TicketRepository) DashboardService {
	return &dashboardService{
		resultRepo: resultRepo,
		ticketRepo: ticketRepo,
		now:        time.Now,
	}
}

// GetStats counts all results, all tickets and the tickets whose draw is today or later
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	total, err := s.resultRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count results: %w", err)
	}

	tickets, err := s.ticketRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	active, err := s.ticketRepo.CountFromDate(ctx, utils.FormatDrawDate(s.now()))
	if err != nil {
		return nil, fmt.Errorf("count active tickets: %w", err)
	}

	return &models.DashboardStats{
		TotalResults:  total,
		TotalTickets:  tickets,
		ActiveTickets: active,
	}, nil
}
