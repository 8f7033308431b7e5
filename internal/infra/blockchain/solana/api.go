// Package solana reads SOL balances and native transfers from a Solana
// JSON-RPC node.
//
// Heights are slots: GetBlockHead returns the latest finalized slot and
// GetBlockTxs takes a slot number.
package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/gagliardetto/solana-go"
)

const (
	// Symbol is the native currency of the chain.
	Symbol = "SOL"

	// Precision is the number of decimals of a lamport amount.
	Precision = 9

	// DefaultURL is the public mainnet-beta RPC node.
	DefaultURL = "https://api.mainnet-beta.solana.com"

	// RateLimit is the request spacing public RPC nodes tolerate.
	RateLimit = 250 * time.Millisecond

	maxBalanceAddresses    = 100
	maxTxDetails           = 25
	maxBlocks              = 10
	defaultSignaturesLimit = 25
)

// JSON-RPC error codes a node answers with for slots that hold no block.
const (
	codeSlotSkipped            = -32007
	codeSlotNotAvailable       = -32009
	codeLongTermStorageSkipped = -32004
)

// ErrInvalidAddress is returned for strings that are not base58 public keys.
var ErrInvalidAddress = errors.New("invalid solana address")

// Endpoints maps JSON-RPC requests to the node URL.
var Endpoints = http.Endpoints{jsonrpc.Operation: ""}

var (
	finalized = map[string]any{"commitment": "finalized"}

	transactionOpts = map[string]any{
		"commitment":                     "finalized",
		"encoding":                       "jsonParsed",
		"maxSupportedTransactionVersion": 0,
	}

	blockOpts = map[string]any{
		"commitment":                     "finalized",
		"encoding":                       "jsonParsed",
		"transactionDetails":             "full",
		"rewards":                        false,
		"maxSupportedTransactionVersion": 0,
	}
)

type (
	balanceResult struct {
		Value *json.Number `json:"value"`
	}

	signatureInfo struct {
		Signature string          `json:"signature"`
		Slot      int64           `json:"slot"`
		Err       json.RawMessage `json:"err"`
	}

	transferInfo struct {
		Source      string      `json:"source"`
		Destination string      `json:"destination"`
		Lamports    json.Number `json:"lamports"`
	}

	parsedInstruction struct {
		Type string        `json:"type"`
		Info *transferInfo `json:"info"`
	}

	// instruction is an outer instruction of a jsonParsed transaction. Parsed
	// is an object for the system program and a bare string for spl-memo.
	instruction struct {
		Program   string          `json:"program"`
		ProgramID string          `json:"programId"`
		Parsed    json.RawMessage `json:"parsed"`
	}

	message struct {
		Instructions []instruction `json:"instructions"`
	}

	transaction struct {
		Signatures []string `json:"signatures"`
		Message    *message `json:"message"`
	}

	transactionMeta struct {
		Err json.RawMessage `json:"err"`
		Fee json.Number     `json:"fee"`
	}

	// transactionResult is the answer of getTransaction. Slot and BlockTime
	// are absent from the transactions embedded in a block.
	transactionResult struct {
		Slot        int64            `json:"slot"`
		BlockTime   *int64           `json:"blockTime"`
		Meta        *transactionMeta `json:"meta"`
		Transaction *transaction     `json:"transaction"`
	}

	blockResult struct {
		Blockhash    string              `json:"blockhash"`
		BlockTime    *int64              `json:"blockTime"`
		Transactions []transactionResult `json:"transactions"`
	}
)

type config struct {
	signaturesLimit int
}

// Option configures the Solana provider.
type Option func(*config)

type api struct {
	conn jsonrpc.Client
	cfg  config
}

var (
	_ explorer.BalanceProvider        = (*api)(nil)
	_ explorer.BalancesProvider       = (*api)(nil)
	_ explorer.TxDetailsProvider      = (*api)(nil)
	_ explorer.TxDetailsBatchProvider = (*api)(nil)
	_ explorer.AddressTxsProvider     = (*api)(nil)
	_ explorer.BlockTxsProvider       = (*api)(nil)
	_ explorer.BatchBlockTxsProvider  = (*api)(nil)
	_ explorer.BlockHeadProvider      = (*api)(nil)
)

// New returns the Solana RPC provider. By default GetAddressTxs looks at the
// 25 latest signatures of the address.
func New(conn jsonrpc.Client, opts ...Option) *api {
	cfg := config{signaturesLimit: defaultSignaturesLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &api{conn: conn, cfg: cfg}
}

// Name implements explorer.Provider.
func (a *api) Name() string {
	return "solana-rpc"
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
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidAddress, address, err)
	}

	return nil
}

// decode unmarshals a validated-later result. Shapes that do not decode are
// reported as absent so the validators reject them.
func decode[T any](raw json.RawMessage) *T {
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	return v
}

// headOf reads the slot answered to a getSlot call of a batch, zero when
// the node could not tell.
func headOf(result jsonrpc.Result) int64 {
	if result.Err != nil {
		return 0
	}

	slot := decode[int64](result.Result)
	if !validateSlotResponse(slot) {
		return 0
	}

	return *slot
}

// isEmptySlot reports whether err means the slot holds no block.
func isEmptySlot(err error) bool {
	var providerErr *jsonrpc.ProviderError
	if !errors.As(err, &providerErr) {
		return false
	}

	switch providerErr.Code {
	case codeSlotSkipped, codeSlotNotAvailable, codeLongTermStorageSkipped:
		return true
	default:
		return false
	}
}

// GetBalance implements explorer.BalanceProvider.
func (a *api) GetBalance(ctx context.Context, address string) (explorer.Balance, error) {
	if err := checkAddress(address); err != nil {
		return explorer.Balance{}, err
	}

	raw, err := a.conn.Fetch(ctx, "getBalance", address, finalized)
	if err != nil {
		return explorer.Balance{}, err
	}

	result := decode[balanceResult](raw)
	if !validateBalanceResponse(result) {
		return explorer.Balance{}, fmt.Errorf("%w: no %s balance for %s", http.ErrMalformedResponse, Symbol, address)
	}

	return parseBalance(address, result)
}

// GetBalances implements explorer.BalancesProvider with one JSON-RPC batch.
// Addresses whose answer fails validation are left out of the result.
func (a *api) GetBalances(ctx context.Context, addresses []string) ([]explorer.Balance, error) {
	calls := make([]jsonrpc.Call, len(addresses))
	for i, address := range addresses {
		if err := checkAddress(address); err != nil {
			return nil, err
		}
		calls[i] = jsonrpc.Call{Method: "getBalance", Params: []any{address, finalized}}
	}

	results, err := a.conn.BatchFetch(ctx, calls)
	if err != nil {
		return nil, err
	}

	balances := make([]explorer.Balance, 0, len(addresses))
	for i, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}

		result := decode[balanceResult](r.Result)
		if !validateBalanceResponse(result) {
			continue
		}

		balance, err := parseBalance(addresses[i], result)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

// GetTxDetails implements explorer.TxDetailsProvider.
func (a *api) GetTxDetails(ctx context.Context, txHash string) ([]explorer.TransferTx, error) {
	details, err := a.GetTxDetailsBatch(ctx, []string{txHash})
	if err != nil {
		return nil, err
	}

	return details[txHash], nil
}

// GetTxDetailsBatch implements explorer.TxDetailsBatchProvider. The chain tip
// is read in the same batch to compute confirmations.
func (a *api) GetTxDetailsBatch(ctx context.Context, txHashes []string) (map[string][]explorer.TransferTx, error) {
	calls := make([]jsonrpc.Call, 0, len(txHashes)+1)
	for _, hash := range txHashes {
		calls = append(calls, jsonrpc.Call{Method: "getTransaction", Params: []any{hash, transactionOpts}})
	}
	calls = append(calls, jsonrpc.Call{Method: "getSlot", Params: []any{finalized}})

	results, err := a.conn.BatchFetch(ctx, calls)
	if err != nil {
		return nil, err
	}

	head := headOf(results[len(txHashes)])

	details := make(map[string][]explorer.TransferTx, len(txHashes))
	for i, hash := range txHashes {
		if results[i].Err != nil {
			return nil, results[i].Err
		}

		tx := decode[transactionResult](results[i].Result)
		if !validateTransactionResponse(tx) {
			details[hash] = []explorer.TransferTx{}
			continue
		}

		transfers, err := parseTransaction(*tx, tx.Slot, "", tx.BlockTime, head)
		if err != nil {
			return nil, err
		}
		details[hash] = transfers
	}

	return details, nil
}

// GetAddressTxs implements explorer.AddressTxsProvider. It lists the latest
// signatures of address, then fetches them in one batch and keeps the
// transfers address takes part in.
func (a *api) GetAddressTxs(ctx context.Context, address string) ([]explorer.TransferTx, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}

	raw, err := a.conn.Fetch(ctx, "getSignaturesForAddress", address, map[string]any{
		"commitment": "finalized",
		"limit":      a.cfg.signaturesLimit,
	})
	if err != nil {
		return nil, err
	}

	signatures := decode[[]signatureInfo](raw)
	if !validateSignaturesResponse(signatures) {
		return []explorer.TransferTx{}, nil
	}

	hashes := parseSignatures(*signatures)
	if len(hashes) == 0 {
		return []explorer.TransferTx{}, nil
	}

	details, err := a.GetTxDetailsBatch(ctx, hashes)
	if err != nil {
		return nil, err
	}

	txs := []explorer.TransferTx{}
	for _, hash := range hashes {
		for _, tx := range details[hash] {
			if tx.FromAddress == address || tx.ToAddress == address {
				txs = append(txs, tx)
			}
		}
	}

	return txs, nil
}

// GetBlockTxs implements explorer.BlockTxsProvider.
func (a *api) GetBlockTxs(ctx context.Context, slot int64) ([]explorer.TransferTx, error) {
	return a.GetBatchBlockTxs(ctx, slot, slot)
}

// GetBatchBlockTxs implements explorer.BatchBlockTxsProvider with one
// JSON-RPC batch of getBlock calls. Skipped slots contribute nothing.
func (a *api) GetBatchBlockTxs(ctx context.Context, from, to int64) ([]explorer.TransferTx, error) {
	if from > to {
		return []explorer.TransferTx{}, nil
	}

	n := int(to - from + 1)

	calls := make([]jsonrpc.Call, 0, n+1)
	for slot := from; slot <= to; slot++ {
		calls = append(calls, jsonrpc.Call{Method: "getBlock", Params: []any{slot, blockOpts}})
	}
	calls = append(calls, jsonrpc.Call{Method: "getSlot", Params: []any{finalized}})

	results, err := a.conn.BatchFetch(ctx, calls)
	if err != nil {
		return nil, err
	}

	head := headOf(results[n])

	txs := []explorer.TransferTx{}
	for i, r := range results[:n] {
		if isEmptySlot(r.Err) {
			continue
		}
		if r.Err != nil {
			return nil, r.Err
		}

		block := decode[blockResult](r.Result)
		if !validateBlockResponse(block) {
			continue
		}

		transfers, err := parseBlock(*block, from+int64(i), head)
		if err != nil {
			return nil, err
		}
		txs = append(txs, transfers...)
	}

	return txs, nil
}

// GetBlockHead implements explorer.BlockHeadProvider.
func (a *api) GetBlockHead(ctx context.Context) (int64, error) {
	raw, err := a.conn.Fetch(ctx, "getSlot", finalized)
	if err != nil {
		return 0, err
	}

	slot := decode[int64](raw)
	if !validateSlotResponse(slot) {
		return 0, explorer.ErrNoBlockHead
	}

	return *slot, nil
}

// WithSignaturesLimit sets how many of the latest signatures of an address
// GetAddressTxs inspects.
func WithSignaturesLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.signaturesLimit = n
		}
	}
}
