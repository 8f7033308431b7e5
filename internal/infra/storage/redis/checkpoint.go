package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/blockexplorer/internal/blockscan"

	"github.com/redis/go-redis/v9"
)

// checkpointKey returns the key holding the latest processed block of chain:
//
//	"<prefix>latest_block_height_processed_<chain>"
func (c *client) checkpointKey(chain string) string {
	return c.prefix + "latest_block_height_processed_" + chain
}

// SaveCheckpoint stores height as the latest processed block of chain and
// restarts its expiration.
func (c *client) SaveCheckpoint(ctx context.Context, chain string, height int64) error {
	return c.conn.Set(ctx, c.checkpointKey(chain), height, c.ttl).Err()
}

// LoadLatestCheckpoint returns the latest processed block of chain, or
// blockscan.ErrNoCheckpointFound when none was saved or it expired.
func (c *client) LoadLatestCheckpoint(ctx context.Context, chain string) (int64, error) {
	val, err := c.conn.Get(ctx, c.checkpointKey(chain)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = blockscan.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted checkpoint for %s: %w", chain, err)
	}

	return height, nil
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ blockscan.CheckpointStorage = new(client)
