package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client represents a MongoDB client
type Client struct {
	client  *mongo.Client
	timeout time.Duration
}

// NewClient connects to MongoDB and verifies the connection with a ping.
// timeout bounds both the connect and the ping.
func NewClient(ctx context.Context, uri string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return &Client{
		client:  client,
		timeout: timeout,
	}, nil
}

// Database returns a handle for the named database
func (c *Client) Database(name string) *mongo.Database {
	return c.client.Database(name)
}

// Timeout is the bound applied to connect, ping and disconnect
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Disconnect disconnects from MongoDB, waiting at most the client timeout
func (c *Client) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Disconnect(ctx)
}
