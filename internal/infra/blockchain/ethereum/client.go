// Package ethereum reads balances and transfers from any EVM node through its
// JSON-RPC API.
package ethereum

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// RateLimit is the request spacing of public nodes.
	RateLimit = 100 * time.Millisecond

	maxBalanceAddresses = 100
	maxTxDetails        = 50
	maxBlocks           = 20

	// latest is the block tag balances are read at.
	latest = "latest"
)

// ErrInvalidAddress is returned for addresses that are not 20-byte hex strings.
var ErrInvalidAddress = errors.New("invalid address")

// Endpoints routes every JSON-RPC call to the node URL itself.
var Endpoints = http.Endpoints{jsonrpc.Operation: ""}

type config struct {
	name          string
	symbol        string
	tokens        *explorer.TokenRegistry
	blockReceipts bool
}

// Option configures the provider.
type Option func(*config)

// api implements the explorer provider interfaces for an EVM node.
type api struct {
	conn jsonrpc.Client
	cfg  config
}

var (
	_ explorer.BalanceProvider        = (*api)(nil)
	_ explorer.BalancesProvider       = (*api)(nil)
	_ explorer.TxDetailsProvider      = (*api)(nil)
	_ explorer.TxDetailsBatchProvider = (*api)(nil)
	_ explorer.BlockTxsProvider       = (*api)(nil)
	_ explorer.BatchBlockTxsProvider  = (*api)(nil)
	_ explorer.BlockHeadProvider      = (*api)(nil)
)

// New returns the provider of the node behind conn. Defaults:
//
//   - name "ethereum-rpc", native symbol "ETH"
//   - block receipts are read with eth_getBlockReceipts
//   - no token registry: ERC20 transfers are not reported
func New(conn jsonrpc.Client, opts ...Option) *api {
	cfg := config{
		name:          "ethereum-rpc",
		symbol:        "ETH",
		blockReceipts: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &api{conn: conn, cfg: cfg}
}

// Name implements explorer.Provider.
func (a *api) Name() string {
	return a.cfg.name
}

// Capabilities implements explorer.Provider.
func (a *api) Capabilities() explorer.Capabilities {
	return explorer.Capabilities{
		SupportBatchGetBlocks:    true,
		SupportGetBalanceBatch:   true,
		TransactionDetailsBatch:  true,
		GetBalancesMaxAddressNum: maxBalanceAddresses,
		GetTxDetailsMaxNum:       maxTxDetails,
		GetBlocksMaxNum:          maxBlocks,
		RateLimit:                RateLimit,
	}
}

func checkAddress(address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	return nil
}

// decode unmarshals raw into a T. Shapes that do not decode, and JSON null,
// are reported as absent.
func decode[T any](raw json.RawMessage) *T {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	return &v
}

// WithName sets the provider name, e.g. "polygon-rpc".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSymbol sets the native coin symbol of the chain.
func WithSymbol(symbol string) Option {
	return func(c *config) {
		c.symbol = symbol
	}
}

// WithTokens enables ERC20 transfers, converted with the decimals of tokens.
func WithTokens(tokens *explorer.TokenRegistry) Option {
	return func(c *config) {
		c.tokens = tokens
	}
}

// WithBlockReceipts toggles eth_getBlockReceipts for nodes lacking it. Without
// receipts, block transfers carry no fee, status or token movement.
func WithBlockReceipts(enabled bool) Option {
	return func(c *config) {
		c.blockReceipts = enabled
	}
}
