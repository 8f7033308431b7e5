// Package cardano reads ADA balances and transfers from the BitQuery GraphQL API.
//
// BitQuery reports Cardano activity as separate input and output records;
// the parser folds them back into one transfer per address and transaction.
package cardano

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/graphql"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
)

const (
	// Symbol is the native currency of the chain.
	Symbol = "ADA"

	// DefaultURL is the BitQuery GraphQL endpoint.
	DefaultURL = "https://graphql.bitquery.io"

	// RateLimit is the request spacing the BitQuery plans tolerate.
	RateLimit = 6 * time.Second

	network = "cardano"

	defaultPageSize     = 500
	defaultMaxPages     = 20
	maxBalanceAddresses = 25
)

const (
	opBalance    = "get_balance"
	opAddressTxs = "get_address_txs"
	opBlockTxs   = "get_block_txs"
	opTxDetails  = "get_tx_details"
	opBlockHead  = "get_block_head"
)

// Endpoints maps every operation to the GraphQL endpoint itself.
var Endpoints = http.Endpoints{
	opBalance:    "",
	opAddressTxs: "",
	opBlockTxs:   "",
	opTxDetails:  "",
	opBlockHead:  "",
}

const utxoFields = `
      block {
        height
        timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") }
      }
      transaction { hash feeValue }
      value
      currency { symbol }`

const (
	balanceQuery = `query ($network: CardanoNetwork!, $addresses: [String!]) {
  cardano(network: $network) {
    address(address: {in: $addresses}) {
      address { address }
      balance { currency { symbol } value }
    }
  }
}`

	addressTxsQuery = `query ($network: CardanoNetwork!, $address: String!, $from: ISO8601DateTime, $limit: Int!, $offset: Int!) {
  cardano(network: $network) {
    blocks(options: {desc: "height", limit: 1}) { height }
    inputs(inputAddress: {is: $address}, date: {since: $from}, options: {desc: "block.height", limit: $limit, offset: $offset}) {
      inputAddress { address }` + utxoFields + `
    }
    outputs(outputAddress: {is: $address}, date: {since: $from}, options: {desc: "block.height", limit: $limit, offset: $offset}) {
      outputAddress { address }` + utxoFields + `
    }
  }
}`

	blockTxsQuery = `query ($network: CardanoNetwork!, $from: Int!, $to: Int!, $limit: Int!, $offset: Int!) {
  cardano(network: $network) {
    blocks(options: {desc: "height", limit: 1}) { height }
    inputs(height: {between: [$from, $to]}, options: {asc: "block.height", limit: $limit, offset: $offset}) {
      inputAddress { address }` + utxoFields + `
    }
    outputs(height: {between: [$from, $to]}, options: {asc: "block.height", limit: $limit, offset: $offset}) {
      outputAddress { address }` + utxoFields + `
    }
  }
}`

	txDetailsQuery = `query ($network: CardanoNetwork!, $hash: String!) {
  cardano(network: $network) {
    blocks(options: {desc: "height", limit: 1}) { height }
    inputs(txHash: {is: $hash}) {
      inputAddress { address }` + utxoFields + `
    }
    outputs(txHash: {is: $hash}) {
      outputAddress { address }` + utxoFields + `
    }
  }
}`

	blockHeadQuery = `query ($network: CardanoNetwork!) {
  cardano(network: $network) {
    blocks(options: {desc: "height", limit: 1}) { height }
  }
}`
)

type (
	addressRef struct {
		Address string `json:"address"`
	}

	currencyRef struct {
		Symbol string `json:"symbol"`
	}

	timestampRef struct {
		Time string `json:"time"`
	}

	blockRef struct {
		Height    int64         `json:"height"`
		Timestamp *timestampRef `json:"timestamp"`
	}

	transactionRef struct {
		Hash     string      `json:"hash"`
		FeeValue json.Number `json:"feeValue"`
	}

	// utxo is one input or output record. Exactly one of InputAddress and
	// OutputAddress is queried.
	utxo struct {
		Block         *blockRef       `json:"block"`
		InputAddress  *addressRef     `json:"inputAddress"`
		OutputAddress *addressRef     `json:"outputAddress"`
		Transaction   *transactionRef `json:"transaction"`
		Value         json.Number     `json:"value"`
		Currency      *currencyRef    `json:"currency"`
	}

	currencyBalance struct {
		Currency *currencyRef `json:"currency"`
		Value    json.Number  `json:"value"`
	}

	addressBalance struct {
		Address *addressRef       `json:"address"`
		Balance []currencyBalance `json:"balance"`
	}

	cardanoData struct {
		Blocks  []blockRef       `json:"blocks"`
		Address []addressBalance `json:"address"`
		Inputs  []utxo           `json:"inputs"`
		Outputs []utxo           `json:"outputs"`
	}

	response struct {
		Cardano *cardanoData `json:"cardano"`
	}
)

type config struct {
	pageSize int
	maxPages int
	lookback time.Duration
	now      func() time.Time
}

// Option configures the BitQuery provider.
type Option func(*config)

type api struct {
	conn graphql.Client
	cfg  config
}

var (
	_ explorer.BalanceProvider       = (*api)(nil)
	_ explorer.BalancesProvider      = (*api)(nil)
	_ explorer.TxDetailsProvider     = (*api)(nil)
	_ explorer.AddressTxsProvider    = (*api)(nil)
	_ explorer.BlockTxsProvider      = (*api)(nil)
	_ explorer.BatchBlockTxsProvider = (*api)(nil)
	_ explorer.BlockHeadProvider     = (*api)(nil)
)

// New returns the BitQuery provider. Defaults:
//
//   - 500 records per page, at most 20 pages per query
//   - address history since the start of the current UTC day
func New(conn graphql.Client, opts ...Option) *api {
	cfg := config{
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &api{conn: conn, cfg: cfg}
}

// Name implements explorer.Provider.
func (a *api) Name() string {
	return "cardano-bitquery"
}

// Capabilities implements explorer.Provider.
func (a *api) Capabilities() explorer.Capabilities {
	return explorer.Capabilities{
		SupportBatchGetBlocks:    true,
		SupportGetBalanceBatch:   true,
		GetBalancesMaxAddressNum: maxBalanceAddresses,
		RateLimit:                RateLimit,
	}
}

// query runs a GraphQL query and decodes its data. A nil response means the
// provider sent nothing usable and is rejected by the validators.
func (a *api) query(ctx context.Context, operation, query string, variables map[string]any) (*response, error) {
	variables["network"] = network

	raw, err := a.conn.Query(ctx, operation, query, variables)
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Debug(ctx, "unexpected bitquery response shape", "operation", operation, "error", err)
		return nil, nil
	}

	return &resp, nil
}

// pagedTransfers runs a transfer query page by page until both the inputs and
// the outputs of a page come back short, then folds every record at once so
// change is netted across page boundaries.
func (a *api) pagedTransfers(ctx context.Context, operation, query string, variables map[string]any) ([]explorer.TransferTx, error) {
	var merged *response
	for page := 0; ; page++ {
		if page == a.cfg.maxPages {
			return nil, fmt.Errorf("%w: %s has more than %d pages of %d records", explorer.ErrResultTruncated, operation, a.cfg.maxPages, a.cfg.pageSize)
		}

		vars := maps.Clone(variables)
		vars["limit"] = a.cfg.pageSize
		vars["offset"] = page * a.cfg.pageSize

		resp, err := a.query(ctx, operation, query, vars)
		if err != nil {
			return nil, err
		}

		if merged != nil && (resp == nil || resp.Cardano == nil) {
			return nil, fmt.Errorf("%w: %s page %d is unreadable", http.ErrMalformedResponse, operation, page)
		}

		if !validateTransfersResponse(resp) {
			break
		}

		if merged == nil {
			merged = resp
		} else {
			merged.Cardano.Inputs = append(merged.Cardano.Inputs, resp.Cardano.Inputs...)
			merged.Cardano.Outputs = append(merged.Cardano.Outputs, resp.Cardano.Outputs...)
		}

		if len(resp.Cardano.Inputs) < a.cfg.pageSize && len(resp.Cardano.Outputs) < a.cfg.pageSize {
			break
		}
	}

	if merged == nil {
		return []explorer.TransferTx{}, nil
	}

	return parseTransfers(merged, 0), nil
}

// GetBalance implements explorer.BalanceProvider.
func (a *api) GetBalance(ctx context.Context, address string) (explorer.Balance, error) {
	balances, err := a.GetBalances(ctx, []string{address})
	if err != nil {
		return explorer.Balance{}, err
	}

	for _, b := range balances {
		if b.Address == address {
			return b, nil
		}
	}

	return explorer.Balance{}, fmt.Errorf("%w: no %s balance for %s", http.ErrMalformedResponse, Symbol, address)
}

// GetBalances implements explorer.BalancesProvider. Addresses whose entry
// fails validation are left out of the result.
func (a *api) GetBalances(ctx context.Context, addresses []string) ([]explorer.Balance, error) {
	resp, err := a.query(ctx, opBalance, balanceQuery, map[string]any{"addresses": addresses})
	if err != nil {
		return nil, err
	}

	if !validateBalanceResponse(resp) {
		return []explorer.Balance{}, nil
	}

	return parseBalances(resp), nil
}

// GetAddressTxs implements explorer.AddressTxsProvider.
func (a *api) GetAddressTxs(ctx context.Context, address string) ([]explorer.TransferTx, error) {
	since := a.cfg.now().UTC().Truncate(24 * time.Hour).Add(-a.cfg.lookback)

	return a.pagedTransfers(ctx, opAddressTxs, addressTxsQuery, map[string]any{
		"address": address,
		"from":    since.Format(time.RFC3339),
	})
}

// GetTxDetails implements explorer.TxDetailsProvider.
func (a *api) GetTxDetails(ctx context.Context, txHash string) ([]explorer.TransferTx, error) {
	resp, err := a.query(ctx, opTxDetails, txDetailsQuery, map[string]any{"hash": txHash})
	if err != nil {
		return nil, err
	}

	if !validateTransfersResponse(resp) {
		return []explorer.TransferTx{}, nil
	}

	return parseTransfers(resp, 0), nil
}

// GetBlockTxs implements explorer.BlockTxsProvider.
func (a *api) GetBlockTxs(ctx context.Context, height int64) ([]explorer.TransferTx, error) {
	return a.GetBatchBlockTxs(ctx, height, height)
}

// GetBatchBlockTxs implements explorer.BatchBlockTxsProvider.
func (a *api) GetBatchBlockTxs(ctx context.Context, from, to int64) ([]explorer.TransferTx, error) {
	return a.pagedTransfers(ctx, opBlockTxs, blockTxsQuery, map[string]any{
		"from": from,
		"to":   to,
	})
}

// GetBlockHead implements explorer.BlockHeadProvider.
func (a *api) GetBlockHead(ctx context.Context) (int64, error) {
	resp, err := a.query(ctx, opBlockHead, blockHeadQuery, map[string]any{})
	if err != nil {
		return 0, err
	}

	if !validateBlockHeadResponse(resp) {
		return 0, explorer.ErrNoBlockHead
	}

	return parseBlockHead(resp), nil
}

// WithPageSize sets the number of input and output records fetched per query.
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxPages bounds the pages fetched for one query. Queries with more
// records fail with explorer.ErrResultTruncated.
func WithMaxPages(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// WithLookback extends the address history window back from the start of the
// current UTC day.
func WithLookback(d time.Duration) Option {
	return func(c *config) {
		c.lookback = d
	}
}
