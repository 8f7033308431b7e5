// Package polkadot reads DOT balances and transfers from the Polaris GraphQL
// indexer.
package polkadot

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
	Symbol = "DOT"

	// Precision is the number of decimals of a planck amount.
	Precision = 10

	// DefaultURL is the Polaris GraphQL endpoint.
	DefaultURL = "https://polaris.polkadot.io/graphql"

	// RateLimit is the request spacing Polaris tolerates.
	RateLimit = time.Second

	// blockHeightOffset keeps scans behind the indexer head, whose latest
	// blocks may still miss transfers.
	blockHeightOffset = 2

	defaultPageSize = 100
	defaultMaxPages = 50
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

const transferFields = `
    extrinsicHash
    blockNumber
    blockHash
    timestamp
    amount
    fee
    success
    symbol
    from { id }
    to { id }`

const (
	balanceQuery = `query ($address: String!) {
  account: accountById(id: $address) {
    id
    balance { free symbol }
  }
}`

	addressTxsQuery = `query ($address: String!, $since: DateTime!, $limit: Int!, $offset: Int!) {
  squidStatus { height }
  transfers(
    where: {timestamp_gte: $since, OR: [{from: {id_eq: $address}}, {to: {id_eq: $address}}]}
    orderBy: blockNumber_DESC
    limit: $limit
    offset: $offset
  ) {` + transferFields + `
  }
}`

	blockTxsQuery = `query ($from: Int!, $to: Int!, $limit: Int!, $offset: Int!) {
  squidStatus { height }
  transfers(
    where: {blockNumber_gte: $from, blockNumber_lte: $to}
    orderBy: blockNumber_ASC
    limit: $limit
    offset: $offset
  ) {` + transferFields + `
  }
}`

	txDetailsQuery = `query ($hash: String!) {
  squidStatus { height }
  transfers(where: {extrinsicHash_eq: $hash}) {` + transferFields + `
  }
}`

	blockHeadQuery = `query {
  squidStatus { height }
}`
)

type (
	accountRef struct {
		ID string `json:"id"`
	}

	balanceRef struct {
		Free   json.Number `json:"free"`
		Symbol string      `json:"symbol"`
	}

	account struct {
		ID      string      `json:"id"`
		Balance *balanceRef `json:"balance"`
	}

	transfer struct {
		ExtrinsicHash string      `json:"extrinsicHash"`
		BlockNumber   int64       `json:"blockNumber"`
		BlockHash     string      `json:"blockHash"`
		Timestamp     string      `json:"timestamp"`
		Amount        json.Number `json:"amount"`
		Fee           json.Number `json:"fee"`
		Success       *bool       `json:"success"`
		Symbol        string      `json:"symbol"`
		From          *accountRef `json:"from"`
		To            *accountRef `json:"to"`
	}

	squidStatus struct {
		Height int64 `json:"height"`
	}

	response struct {
		Account     *account     `json:"account"`
		SquidStatus *squidStatus `json:"squidStatus"`
		Transfers   []transfer   `json:"transfers"`
	}
)

type config struct {
	pageSize int
	maxPages int
	lookback time.Duration
	now      func() time.Time
}

// Option configures the Polaris provider.
type Option func(*config)

type api struct {
	conn graphql.Client
	cfg  config
}

var (
	_ explorer.BalanceProvider       = (*api)(nil)
	_ explorer.TxDetailsProvider     = (*api)(nil)
	_ explorer.AddressTxsProvider    = (*api)(nil)
	_ explorer.BlockTxsProvider      = (*api)(nil)
	_ explorer.BatchBlockTxsProvider = (*api)(nil)
	_ explorer.BlockHeadProvider     = (*api)(nil)
)

// New returns the Polaris provider. Defaults:
//
//   - 100 transfers per page, at most 50 pages per query
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
	return "polkadot-polaris"
}

// Capabilities implements explorer.Provider.
func (a *api) Capabilities() explorer.Capabilities {
	return explorer.Capabilities{
		SupportBatchGetBlocks: true,
		BlockHeightOffset:     blockHeightOffset,
		RateLimit:             RateLimit,
	}
}

func (a *api) query(ctx context.Context, operation, query string, variables map[string]any) (*response, error) {
	raw, err := a.conn.Query(ctx, operation, query, variables)
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Debug(ctx, "unexpected polaris response shape", "operation", operation, "error", err)
		return nil, nil
	}

	return &resp, nil
}

// transfers runs a transfer query and parses its answer.
func (a *api) transfers(ctx context.Context, operation, query string, variables map[string]any) ([]explorer.TransferTx, error) {
	resp, err := a.query(ctx, operation, query, variables)
	if err != nil {
		return nil, err
	}

	if !validateTransfersResponse(resp) {
		return []explorer.TransferTx{}, nil
	}

	return parseTransfers(resp)
}

// pagedTransfers runs a transfer query with a growing offset until a page
// comes back short.
func (a *api) pagedTransfers(ctx context.Context, operation, query string, variables map[string]any) ([]explorer.TransferTx, error) {
	var merged *response
	for page := 0; ; page++ {
		if page == a.cfg.maxPages {
			return nil, fmt.Errorf("%w: %s has more than %d pages of %d transfers", explorer.ErrResultTruncated, operation, a.cfg.maxPages, a.cfg.pageSize)
		}

		vars := maps.Clone(variables)
		vars["limit"] = a.cfg.pageSize
		vars["offset"] = page * a.cfg.pageSize

		resp, err := a.query(ctx, operation, query, vars)
		if err != nil {
			return nil, err
		}

		if merged != nil && resp == nil {
			return nil, fmt.Errorf("%w: %s page %d is unreadable", http.ErrMalformedResponse, operation, page)
		}

		if !validateTransfersResponse(resp) {
			break
		}

		if merged == nil {
			merged = resp
		} else {
			merged.Transfers = append(merged.Transfers, resp.Transfers...)
		}

		if len(resp.Transfers) < a.cfg.pageSize {
			break
		}
	}

	if merged == nil {
		return []explorer.TransferTx{}, nil
	}

	return parseTransfers(merged)
}

// GetBalance implements explorer.BalanceProvider.
func (a *api) GetBalance(ctx context.Context, address string) (explorer.Balance, error) {
	resp, err := a.query(ctx, opBalance, balanceQuery, map[string]any{"address": address})
	if err != nil {
		return explorer.Balance{}, err
	}

	if !validateBalanceResponse(resp) {
		return explorer.Balance{}, fmt.Errorf("%w: no %s balance for %s", http.ErrMalformedResponse, Symbol, address)
	}

	return parseBalance(resp)
}

// GetAddressTxs implements explorer.AddressTxsProvider.
func (a *api) GetAddressTxs(ctx context.Context, address string) ([]explorer.TransferTx, error) {
	since := a.cfg.now().UTC().Truncate(24 * time.Hour).Add(-a.cfg.lookback)

	return a.pagedTransfers(ctx, opAddressTxs, addressTxsQuery, map[string]any{
		"address": address,
		"since":   since.Format(time.RFC3339),
	})
}

// GetTxDetails implements explorer.TxDetailsProvider.
func (a *api) GetTxDetails(ctx context.Context, txHash string) ([]explorer.TransferTx, error) {
	return a.transfers(ctx, opTxDetails, txDetailsQuery, map[string]any{"hash": txHash})
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

// GetBlockHead implements explorer.BlockHeadProvider. It reports the height
// the indexer has processed, not the chain tip.
func (a *api) GetBlockHead(ctx context.Context) (int64, error) {
	resp, err := a.query(ctx, opBlockHead, blockHeadQuery, nil)
	if err != nil {
		return 0, err
	}

	if !validateBlockHeadResponse(resp) {
		return 0, explorer.ErrNoBlockHead
	}

	return resp.SquidStatus.Height, nil
}

// WithPageSize sets the number of transfers fetched per query.
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxPages bounds the pages fetched for one query. Queries with more
// transfers fail with explorer.ErrResultTruncated.
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
