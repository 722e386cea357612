package services

import (
	"context"
	"fmt"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type resultService struct {
	resultRepo repositories.ResultRepository
}

// NewResultService creates a new ResultService
func NewResultService(resultRepo repositories.ResultRepository) ResultService {
	return &resultService{
		resultRepo: resultRepo,
	}
}

func (s *resultService) ListResults(ctx context.Context) ([]*models.Result, error) {
	results, err := s.resultRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

func (s *resultService) GetResult(ctx context.Context, id primitive.ObjectID) (*models.Result, error) {
	result, err := s.resultRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", id.Hex(), err)
	}
	return result, nil
}

func (s *resultService) CreateResult(ctx context.Context, result *models.Result) (*models.Result, error) {
	if err := validateRecord(result); err != nil {
		return nil, err
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("create result: %w", err)
	}
	return result, nil
}

func (s *resultService) DeleteResult(ctx context.Context, id primitive.ObjectID) (*models.Result, error) {
	result, err := s.resultRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete result %s: %w", id.Hex(), err)
	}
	return result, nil
}
