package blockscan

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no height has
// been saved yet for the chain.
var ErrNoCheckpointFound = errors.New("no checkpoint found for chain")

// CheckpointStorage persists the latest block height processed per chain.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest processed block of chain,
	// overwriting any previous value.
	SaveCheckpoint(ctx context.Context, chain string, height int64) error

	// LoadLatestCheckpoint returns the latest processed block of chain, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, chain string) (int64, error)
}

// nopCheckpoint never remembers anything: every scan starts at the head.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, int64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (int64, error) {
	return 0, ErrNoCheckpointFound
}
