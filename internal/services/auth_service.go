package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned when seeding an admin whose email is already taken
var ErrUserExists = errors.New("user already exists")

// MinPasswordLength applies to seeded admin passwords
const MinPasswordLength = 8

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Generate(userID, email string, isAdmin bool) (string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenIssuer
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login checks the credentials and issues a token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

// GetUserByID returns the account behind a token subject
func (s *authService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// SeedAdmin creates the admin account used to sign in to the admin API
func (s *authService) SeedAdmin(ctx context.Context, email, password string, reset bool) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidData, MinPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := validateRecord(user); err != nil {
		return nil, err
	}

	if reset {
		if _, err := s.userRepo.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("remove existing users: %w", err)
		}
	} else {
		_, err := s.userRepo.FindByEmail(ctx, email)
		if err == nil {
			return nil, ErrUserExists
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
