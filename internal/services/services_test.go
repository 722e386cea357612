package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"github.com/bhagyamlottery/agency-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTokens struct{}

func (fakeTokens) Generate(userID, email string, isAdmin bool) (string, error) {
	return "token-for-" + userID, nil
}

func newResult(name, date string) *models.Result {
	return &models.Result{Name: name, Date: date, Code: "SS-402", FirstPrize: "SB 123456", Prize: "75 Lakhs"}
}

func TestResultService(t *testing.T) {
	ctx := context.Background()
	svc := NewResultService(memory.NewResultRepository())

	for _, r := range []*models.Result{
		newResult("Win Win", "2025-01-13"),
		newResult("Sthree Sakthi", "2025-01-14"),
		newResult("Akshaya", "2024-12-29"),
	} {
		_, err := svc.CreateResult(ctx, r)
		require.NoError(t, err)
	}

	t.Run("list is newest first", func(t *testing.T) {
		results, err := svc.ListResults(ctx)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "2025-01-14", results[0].Date)
		assert.Equal(t, "2025-01-13", results[1].Date)
		assert.Equal(t, "2024-12-29", results[2].Date)
	})

	t.Run("missing required field", func(t *testing.T) {
		r := newResult("", "2025-01-15")
		_, err := svc.CreateResult(ctx, r)
		assert.ErrorIs(t, err, ErrInvalidData)

		results, _ := svc.ListResults(ctx)
		assert.Len(t, results, 3)
	})

	t.Run("whitespace only field", func(t *testing.T) {
		r := newResult("   ", "2025-01-15")
		_, err := svc.CreateResult(ctx, r)
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("values are stored as given", func(t *testing.T) {
		r := newResult(" Karunya ", "2025-01-10")
		r.Prize = "80 Lakhs "
		created, err := svc.CreateResult(ctx, r)
		require.NoError(t, err)

		found, err := svc.GetResult(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, " Karunya ", found.Name)
		assert.Equal(t, "80 Lakhs ", found.Prize)

		_, err = svc.DeleteResult(ctx, created.ID)
		require.NoError(t, err)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.GetResult(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		results, _ := svc.ListResults(ctx)
		removed, err := svc.DeleteResult(ctx, results[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Sthree Sakthi", removed.Name)

		remaining, err := svc.ListResults(ctx)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
		for _, r := range remaining {
			assert.NotEqual(t, removed.ID, r.ID)
		}

		_, err = svc.DeleteResult(ctx, results[0].ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestTicketService(t *testing.T) {
	ctx := context.Background()
	svc := NewTicketService(memory.NewTicketRepository())

	base := models.Ticket{Name: "Karunya", Code: "KR", Price: "40", FirstPrize: "80 Lakhs"}

	t.Run("defaults type and images", func(t *testing.T) {
		ticket := base
		ticket.Date = "2025-02-01"
		created, err := svc.CreateTicket(ctx, &ticket)
		require.NoError(t, err)
		assert.Equal(t, models.TicketTypeDaily, created.Type)
		assert.NotNil(t, created.Images)
		assert.False(t, created.ID.IsZero())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		ticket := base
		ticket.Date = "2025-02-02"
		ticket.Type = "monthly"
		_, err := svc.CreateTicket(ctx, &ticket)
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("list is soonest first", func(t *testing.T) {
		ticket := base
		ticket.Date = "2025-01-20"
		ticket.Type = models.TicketTypeBumper
		_, err := svc.CreateTicket(ctx, &ticket)
		require.NoError(t, err)

		tickets, err := svc.ListTickets(ctx)
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		assert.Equal(t, "2025-01-20", tickets[0].Date)
		assert.Equal(t, "2025-02-01", tickets[1].Date)
	})

	t.Run("get and delete", func(t *testing.T) {
		tickets, _ := svc.ListTickets(ctx)
		found, err := svc.GetTicket(ctx, tickets[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-20", found.Date)

		_, err = svc.DeleteTicket(ctx, found.ID)
		require.NoError(t, err)

		remaining, err := svc.ListTickets(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.NotEqual(t, found.ID, remaining[0].ID)

		_, err = svc.GetTicket(ctx, found.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		_, err := svc.DeleteTicket(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	svc := NewAuthService(users, fakeTokens{})

	admin, err := svc.SeedAdmin(ctx, " Admin@Example.com ", "s3cret-pass", false)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.True(t, admin.IsAdmin)
	assert.NotEqual(t, "s3cret-pass", admin.Password)

	t.Run("login", func(t *testing.T) {
		resp, err := svc.Login(ctx, &models.LoginRequest{Email: "ADMIN@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, admin.ID, resp.ID)
		assert.True(t, resp.IsAdmin)
		assert.Equal(t, "token-for-"+admin.ID.Hex(), resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &models.LoginRequest{Email: "who@example.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("seeding twice without reset", func(t *testing.T) {
		_, err := svc.SeedAdmin(ctx, "admin@example.com", "another-pass", false)
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("reset replaces every user", func(t *testing.T) {
		_, err := svc.SeedAdmin(ctx, "owner@example.com", "another-pass", true)
		require.NoError(t, err)

		_, err = users.FindByEmail(ctx, "admin@example.com")
		assert.True(t, errors.Is(err, repositories.ErrNotFound))
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.SeedAdmin(ctx, "x@example.com", "short", true)
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.SeedAdmin(ctx, "not-an-email", "long-enough", false)
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestDashboardService(t *testing.T) {
	ctx := context.Background()
	results := memory.NewResultRepository()
	tickets := memory.NewTicketRepository()

	require.NoError(t, results.Create(ctx, newResult("Win Win", "2025-01-13")))
	require.NoError(t, results.Create(ctx, newResult("Akshaya", "2025-01-12")))
	for _, date := range []string{"2025-01-14", "2025-01-15", "2025-01-13"} {
		require.NoError(t, tickets.Create(ctx, &models.Ticket{Name: "Karunya", Code: "KR", Date: date, Type: models.TicketTypeDaily, Price: "40", FirstPrize: "80 Lakhs"}))
	}

	svc := NewDashboardService(results, tickets).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2025, time.January, 14, 9, 0, 0, 0, time.Local) }

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalResults)
	assert.Equal(t, int64(3), stats.TotalTickets)
	assert.Equal(t, int64(2), stats.ActiveTickets)
}
