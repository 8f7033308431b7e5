// Package blockscan reads balances and transfers from the Etherscan family of
// explorers (Etherscan, BscScan, PolygonScan...), which share one REST API.
package blockscan

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/evm"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// DefaultURL is the Etherscan API host.
	DefaultURL = "https://api.etherscan.io"

	// RateLimit matches the 5 calls per second of the free plans.
	RateLimit = 200 * time.Millisecond

	maxBalanceAddresses = 20
	defaultPageSize     = 50
)

const (
	opBalance    = "get_balance"
	opBalances   = "get_balances"
	opAddressTxs = "get_address_txs"
	opTokenTxs   = "get_token_txs"
	opTx         = "get_tx"
	opReceipt    = "get_tx_receipt"
	opBlockHead  = "get_block_head"
)

// Endpoints are the request templates of the Etherscan API.
var Endpoints = http.Endpoints{
	opBalance:    "api?module=account&action=balance&address={address}&tag=latest&apikey={apikey}",
	opBalances:   "api?module=account&action=balancemulti&address={addresses}&tag=latest&apikey={apikey}",
	opAddressTxs: "api?module=account&action=txlist&address={address}&startblock=0&endblock=99999999&page=1&offset={limit}&sort=desc&apikey={apikey}",
	opTokenTxs:   "api?module=account&action=tokentx&address={address}&startblock=0&endblock=99999999&page=1&offset={limit}&sort=desc&apikey={apikey}",
	opTx:         "api?module=proxy&action=eth_getTransactionByHash&txhash={hash}&apikey={apikey}",
	opReceipt:    "api?module=proxy&action=eth_getTransactionReceipt&txhash={hash}&apikey={apikey}",
	opBlockHead:  "api?module=proxy&action=eth_blockNumber&apikey={apikey}",
}

// noRecordsMessages are the status "0" answers that mean an empty result.
var noRecordsMessages = []string{"No transactions found", "No records found", "No token transfers found"}

type (
	rpcError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// envelope wraps both the account module answers, which carry status and
	// message, and the proxy module answers, which are JSON-RPC documents.
	envelope struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"`
		Error   *rpcError       `json:"error"`
	}

	balanceEntry struct {
		Account string `json:"account"`
		Balance string `json:"balance"`
	}

	// accountTx is an entry of txlist or tokentx. The token fields are empty
	// for txlist entries.
	accountTx struct {
		BlockNumber     string `json:"blockNumber"`
		TimeStamp       string `json:"timeStamp"`
		Hash            string `json:"hash"`
		BlockHash       string `json:"blockHash"`
		From            string `json:"from"`
		To              string `json:"to"`
		Value           string `json:"value"`
		GasPrice        string `json:"gasPrice"`
		GasUsed         string `json:"gasUsed"`
		IsError         string `json:"isError"`
		TxReceiptStatus string `json:"txreceipt_status"`
		Confirmations   string `json:"confirmations"`
		ContractAddress string `json:"contractAddress"`
		TokenSymbol     string `json:"tokenSymbol"`
		TokenDecimal    string `json:"tokenDecimal"`
	}
)

// Doer sends a logical request through a provider transport.
type Doer interface {
	Do(ctx context.Context, req http.Request) (json.RawMessage, error)
}

type config struct {
	name     string
	symbol   string
	pageSize int
	tokens   *explorer.TokenRegistry
}

// Option configures the provider.
type Option func(*config)

type api struct {
	conn Doer
	cfg  config
}

var (
	_ explorer.BalanceProvider    = (*api)(nil)
	_ explorer.BalancesProvider   = (*api)(nil)
	_ explorer.TxDetailsProvider  = (*api)(nil)
	_ explorer.AddressTxsProvider = (*api)(nil)
	_ explorer.BlockHeadProvider  = (*api)(nil)
)

// New returns a provider of the Etherscan family. Defaults:
//
//   - name "etherscan", native symbol "ETH"
//   - 50 transfers per history page
//   - no token registry: ERC20 transfers are not reported
func New(conn Doer, opts ...Option) *api {
	cfg := config{
		name:     "etherscan",
		symbol:   "ETH",
		pageSize: defaultPageSize,
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
		SupportGetBalanceBatch:   true,
		GetBalancesMaxAddressNum: maxBalanceAddresses,
		RateLimit:                RateLimit,
	}
}

func noRecords(message string) bool {
	return slices.ContainsFunc(noRecordsMessages, func(m string) bool {
		return strings.HasPrefix(message, m)
	})
}

// notOK classifies a status "0" answer. Etherscan reports throttling and key
// problems with HTTP 200, so they are mapped onto the transport error kinds.
func (a *api) notOK(env envelope) error {
	var detail string
	if err := json.Unmarshal(env.Result, &detail); err != nil || detail == "" {
		detail = env.Message
	}

	kind := http.ErrClientRejected
	switch lower := strings.ToLower(detail); {
	case strings.Contains(lower, "rate limit"):
		kind = http.ErrRateLimited
	case strings.Contains(lower, "api key"):
		kind = http.ErrForbidden
	}

	return fmt.Errorf("%w: %s: %s", kind, a.cfg.name, detail)
}

// call sends operation and returns the unwrapped result. Answers that cannot
// be decoded, or that report no records, yield a nil result.
func (a *api) call(ctx context.Context, operation string, params map[string]string) (json.RawMessage, error) {
	raw, err := a.conn.Do(ctx, http.Request{Operation: operation, Params: params})
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Debug(ctx, "unexpected blockscan response shape", "provider", a.cfg.name, "operation", operation, "error", err)
		return nil, nil
	}

	if env.Error != nil {
		return nil, &jsonrpc.ProviderError{Code: env.Error.Code, Message: env.Error.Message}
	}

	if env.Status == "0" {
		if noRecords(env.Message) {
			return nil, nil
		}
		return nil, a.notOK(env)
	}

	return env.Result, nil
}

// decode unmarshals raw into a T, nil when raw is absent or has another shape.
func decode[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	return &v
}

// GetBalance implements explorer.BalanceProvider.
func (a *api) GetBalance(ctx context.Context, address string) (explorer.Balance, error) {
	result, err := a.call(ctx, opBalance, map[string]string{"address": address})
	if err != nil {
		return explorer.Balance{}, err
	}

	wei := decode[string](result)
	if !validateBalanceResult(wei) {
		return explorer.Balance{}, fmt.Errorf("%w: no %s balance for %s", http.ErrMalformedResponse, a.cfg.symbol, address)
	}

	return parseBalance(address, *wei, a.cfg.symbol)
}

// GetBalances implements explorer.BalancesProvider.
func (a *api) GetBalances(ctx context.Context, addresses []string) ([]explorer.Balance, error) {
	result, err := a.call(ctx, opBalances, map[string]string{"addresses": strings.Join(addresses, ",")})
	if err != nil {
		return nil, err
	}

	entries := decode[[]balanceEntry](result)
	if entries == nil {
		return []explorer.Balance{}, nil
	}

	return parseBalances(*entries, a.cfg.symbol)
}

// GetAddressTxs implements explorer.AddressTxsProvider. Token transfers are
// included when a token registry is configured.
func (a *api) GetAddressTxs(ctx context.Context, address string) ([]explorer.TransferTx, error) {
	params := map[string]string{
		"address": address,
		"limit":   strconv.Itoa(a.cfg.pageSize),
	}

	result, err := a.call(ctx, opAddressTxs, params)
	if err != nil {
		return nil, err
	}

	txs := []explorer.TransferTx{}
	if list := decode[[]accountTx](result); list != nil {
		native, err := parseNativeTxs(*list, a.cfg.symbol)
		if err != nil {
			return nil, err
		}
		txs = append(txs, native...)
	}

	if a.cfg.tokens == nil {
		return txs, nil
	}

	result, err = a.call(ctx, opTokenTxs, params)
	if err != nil {
		return nil, err
	}

	if list := decode[[]accountTx](result); list != nil {
		tokens, err := parseTokenTxs(ctx, *list, a.cfg.tokens)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tokens...)
	}

	slices.SortStableFunc(txs, func(x, y explorer.TransferTx) int {
		return cmp.Compare(y.BlockHeight, x.BlockHeight)
	})

	return txs, nil
}

// GetTxDetails implements explorer.TxDetailsProvider through the proxy
// module: the transaction, its receipt and the head are fetched in turn.
func (a *api) GetTxDetails(ctx context.Context, txHash string) ([]explorer.TransferTx, error) {
	params := map[string]string{"hash": txHash}

	result, err := a.call(ctx, opTx, params)
	if err != nil {
		return nil, err
	}

	tx := decode[evm.Transaction](result)
	if !evm.ValidateTransaction(tx) {
		return []explorer.TransferTx{}, nil
	}

	result, err = a.call(ctx, opReceipt, params)
	if err != nil {
		return nil, err
	}

	receipt := decode[evm.Receipt](result)
	if !evm.ValidateReceipt(receipt, tx.Hash) {
		receipt = nil
	}

	head, err := a.GetBlockHead(ctx)
	if err != nil && !errors.Is(err, explorer.ErrNoBlockHead) {
		return nil, err
	}

	txs, err := evm.Transfers(ctx, *tx, receipt, evm.Context{
		Symbol: a.cfg.symbol,
		Head:   head,
		Tokens: a.cfg.tokens,
	})
	if err != nil {
		return nil, err
	}

	if txs == nil {
		return []explorer.TransferTx{}, nil
	}

	return txs, nil
}

// GetBlockHead implements explorer.BlockHeadProvider.
func (a *api) GetBlockHead(ctx context.Context) (int64, error) {
	result, err := a.call(ctx, opBlockHead, nil)
	if err != nil {
		return 0, err
	}

	number := decode[string](result)
	if number == nil {
		return 0, explorer.ErrNoBlockHead
	}

	head, err := hexutil.DecodeUint64(*number)
	if err != nil || head == 0 {
		return 0, explorer.ErrNoBlockHead
	}

	return int64(head), nil
}

// WithName sets the provider name, e.g. "bscscan".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSymbol sets the native coin symbol of the chain, e.g. "BNB".
func WithSymbol(symbol string) Option {
	return func(c *config) {
		c.symbol = symbol
	}
}

// WithPageSize sets the number of history entries fetched per call.
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithTokens enables ERC20 transfers, converted with the decimals of tokens.
func WithTokens(tokens *explorer.TokenRegistry) Option {
	return func(c *config) {
		c.tokens = tokens
	}
}
