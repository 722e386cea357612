package memory

import (
	"context"
	"testing"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	for _, r := range []models.Result{
		{Name: "first", Date: "2025-01-10"},
		{Name: "second", Date: "2025-01-12"},
		{Name: "third", Date: "2025-01-10"},
	} {
		r := r
		require.NoError(t, repo.Create(ctx, &r))
	}

	results, err := repo.FindAll(ctx)
	require.NoError(t, err)
	names := []string{results[0].Name, results[1].Name, results[2].Name}
	assert.Equal(t, []string{"second", "third", "first"}, names)
}

func TestResultRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()
	r := &models.Result{Name: "Win Win", Date: "2025-01-13"}
	require.NoError(t, repo.Create(ctx, r))

	found, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	found.Name = "changed"

	again, _ := repo.FindByID(ctx, r.ID)
	assert.Equal(t, "Win Win", again.Name)
}

func TestTicketRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	for _, date := range []string{"2025-01-20", "2025-01-05", "2025-01-12"} {
		require.NoError(t, repo.Create(ctx, &models.Ticket{Name: "t-" + date, Date: date}))
	}

	tickets, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", tickets[0].Date)
	assert.Equal(t, "2025-01-20", tickets[2].Date)
	assert.NotNil(t, tickets[0].Images)

	n, err := repo.CountFromDate(ctx, "2025-01-12")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	removed, err := repo.Delete(ctx, tickets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", removed.Date)

	_, err = repo.Delete(ctx, tickets[0].ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	count, _ := repo.Count(ctx)
	assert.Equal(t, int64(2), count)
}

func TestTicketRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()
	ticket := &models.Ticket{Name: "Christmas Bumper", Date: "2025-01-22", Images: []string{"/uploads/images-1.jpg"}}
	require.NoError(t, repo.Create(ctx, ticket))

	list, err := repo.FindAll(ctx)
	require.NoError(t, err)
	list[0].Images[0] = "changed"

	found, err := repo.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images-1.jpg", found.Images[0])
	found.Images[0] = "changed"

	removed, err := repo.Delete(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/images-1.jpg"}, removed.Images)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "Admin@Example.com", IsAdmin: true}))
	assert.ErrorIs(t, repo.Create(ctx, &models.User{Email: "admin@example.com"}), ErrDuplicateEmail)

	user, err := repo.FindByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
