package blockscan

import (
	"context"

	"github.com/gabapcia/blockexplorer/internal/explorer"
)

// Chain is the block source of one chain. *explorer.Explorer implements it.
type Chain interface {
	// Chain names the chain, used as the checkpoint key.
	Chain() string

	// GetScanHead returns the highest block that is safe to scan.
	GetScanHead(ctx context.Context) (int64, error)

	// GetBatchBlockTxs returns the transfers of the blocks in [from, to].
	GetBatchBlockTxs(ctx context.Context, from, to int64) ([]explorer.TransferTx, error)
}

var _ Chain = (*explorer.Explorer)(nil)

// ScanResult is the outcome of one scan cycle of a chain.
//
// A cycle that found no new block has From > To and no transfers. When Err is
// set, the checkpoint was not advanced and the range will be scanned again.
type ScanResult struct {
	Chain     string                `json:"chain"`
	From      int64                 `json:"from"`
	To        int64                 `json:"to"`
	Transfers []explorer.TransferTx `json:"transfers"`
	Err       error                 `json:"-"`
}

// Empty reports whether the cycle covered no block.
func (r ScanResult) Empty() bool {
	return r.From > r.To
}
