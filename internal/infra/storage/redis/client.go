// Package redis stores scan checkpoints in Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const (
	// checkpointTTL bounds how long a checkpoint survives without a new scan
	// cycle. A stale checkpoint is dropped and scanning restarts at the head.
	checkpointTTL = 24 * time.Hour
)

type config struct {
	username string
	password string
	db       int
	prefix   string
	ttl      time.Duration
}

// Option configures the client.
type Option func(*config)

type client struct {
	conn   *redis.Client
	prefix string
	ttl    time.Duration
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and pings it. Defaults:
//
//   - no credentials, database 0
//   - no key prefix
//   - checkpoints expire after 24 hours
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{ttl: checkpointTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:   conn,
		prefix: cfg.prefix,
		ttl:    cfg.ttl,
	}, nil
}

// WithCredentials sets the ACL username and password.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithPrefix namespaces every key, e.g. "blockexplorer:".
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithTTL overrides the checkpoint expiration.
func WithTTL(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.ttl = d
		}
	}
}
