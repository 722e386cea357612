// Package storage opens the repositories for the configured storage driver.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/config"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"github.com/bhagyamlottery/agency-backend/internal/repositories/memory"
	mongorepo "github.com/bhagyamlottery/agency-backend/internal/repositories/mongodb"
	"github.com/bhagyamlottery/agency-backend/pkg/mongodb"
)

// Repositories groups the repository implementations of one driver
type Repositories struct {
	Results repositories.ResultRepository
	Tickets repositories.TicketRepository
	Users   repositories.UserRepository

	close func(ctx context.Context) error
}

// Close releases the driver's connections
func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// Open connects to the configured store. For MongoDB the indexes are created as well.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return &Repositories{
			Results: memory.NewResultRepository(),
			Tickets: memory.NewTicketRepository(),
			Users:   memory.NewUserRepository(),
		}, nil

	case config.StorageMongoDB:
		timeout := time.Duration(cfg.MongoDB.TimeoutSeconds) * time.Second
		client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, timeout)
		if err != nil {
			return nil, err
		}

		db := client.Database(cfg.MongoDB.Database)
		indexCtx, cancel := context.WithTimeout(ctx, client.Timeout())
		defer cancel()
		if err := mongorepo.EnsureIndexes(indexCtx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}

		return &Repositories{
			Results: mongorepo.NewResultRepository(db),
			Tickets: mongorepo.NewTicketRepository(db),
			Users:   mongorepo.NewUserRepository(db),
			close:   client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
