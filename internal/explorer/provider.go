package explorer

import (
	"context"
	"time"
)

// Capabilities are the static traits of a provider that drive orchestration.
type Capabilities struct {
	// SupportBatchGetBlocks is set when the provider serves a whole block range
	// in one call (BatchBlockTxsProvider).
	SupportBatchGetBlocks bool

	// SupportGetBalanceBatch is set when the provider implements BalancesProvider.
	SupportGetBalanceBatch bool

	// TransactionDetailsBatch is set when the provider implements TxDetailsBatchProvider.
	TransactionDetailsBatch bool

	// GetBalancesMaxAddressNum bounds the addresses of one batch balance call.
	GetBalancesMaxAddressNum int

	// GetTxDetailsMaxNum bounds the hashes of one batch tx-details call.
	GetTxDetailsMaxNum int

	// GetBlocksMaxNum bounds the heights of one batch block-range call, and
	// of one fan-out round when ranges are fetched block by block.
	GetBlocksMaxNum int

	// BlockHeightOffset is subtracted from the reported head before scanning,
	// to reconcile providers lagging behind the chain tip.
	BlockHeightOffset int64

	// RateLimit is the minimum spacing between two requests to the provider.
	RateLimit time.Duration

	// MaxWorkersForGetBlock bounds concurrent per-block calls when a range is
	// fanned out over heights.
	MaxWorkersForGetBlock int
}

// Provider is one upstream data source for one chain.
type Provider interface {
	Name() string
	Capabilities() Capabilities
}

// BalanceProvider returns the balance of a single address.
type BalanceProvider interface {
	Provider
	GetBalance(ctx context.Context, address string) (Balance, error)
}

// BalancesProvider returns the balances of several addresses in one call.
type BalancesProvider interface {
	Provider
	GetBalances(ctx context.Context, addresses []string) ([]Balance, error)
}

// TxDetailsProvider returns the transfers of a transaction.
type TxDetailsProvider interface {
	Provider
	GetTxDetails(ctx context.Context, txHash string) ([]TransferTx, error)
}

// TxDetailsBatchProvider returns the transfers of several transactions, keyed by hash.
type TxDetailsBatchProvider interface {
	Provider
	GetTxDetailsBatch(ctx context.Context, txHashes []string) (map[string][]TransferTx, error)
}

// AddressTxsProvider returns the recent transfers involving an address.
type AddressTxsProvider interface {
	Provider
	GetAddressTxs(ctx context.Context, address string) ([]TransferTx, error)
}

// BlockTxsProvider returns the transfers of one block.
type BlockTxsProvider interface {
	Provider
	GetBlockTxs(ctx context.Context, height int64) ([]TransferTx, error)
}

// BatchBlockTxsProvider returns the transfers of the blocks in [from, to].
type BatchBlockTxsProvider interface {
	Provider
	GetBatchBlockTxs(ctx context.Context, from, to int64) ([]TransferTx, error)
}

// BlockHeadProvider returns the chain tip height.
type BlockHeadProvider interface {
	Provider
	GetBlockHead(ctx context.Context) (int64, error)
}

// Providers holds the ordered provider lists of one chain, one per operation
// category. Order is preference: the first entry is the primary.
//
// Batch operations use the providers of the matching single-item category,
// calling the batch variant when the provider's Capabilities advertise it.
type Providers struct {
	Balance    []BalanceProvider
	TxDetails  []TxDetailsProvider
	AddressTxs []AddressTxsProvider
	BlockTxs   []BlockTxsProvider
	BlockHead  []BlockHeadProvider
}
