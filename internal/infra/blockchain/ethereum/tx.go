package ethereum

import (
	"context"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/evm"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"
)

// GetTxDetails implements explorer.TxDetailsProvider.
func (a *api) GetTxDetails(ctx context.Context, txHash string) ([]explorer.TransferTx, error) {
	details, err := a.GetTxDetailsBatch(ctx, []string{txHash})
	if err != nil {
		return nil, err
	}

	return details[txHash], nil
}

// GetTxDetailsBatch implements explorer.TxDetailsBatchProvider. Each hash
// costs a transaction and a receipt call; the chain tip is read in the same
// batch to compute confirmations.
func (a *api) GetTxDetailsBatch(ctx context.Context, txHashes []string) (map[string][]explorer.TransferTx, error) {
	calls := make([]jsonrpc.Call, 0, 2*len(txHashes)+1)
	for _, hash := range txHashes {
		calls = append(calls,
			jsonrpc.Call{Method: "eth_getTransactionByHash", Params: []any{hash}},
			jsonrpc.Call{Method: "eth_getTransactionReceipt", Params: []any{hash}},
		)
	}
	calls = append(calls, jsonrpc.Call{Method: "eth_blockNumber"})

	results, err := a.conn.BatchFetch(ctx, calls)
	if err != nil {
		return nil, err
	}

	head := headOf(results[len(calls)-1])

	details := make(map[string][]explorer.TransferTx, len(txHashes))
	for i, hash := range txHashes {
		txResult, receiptResult := results[2*i], results[2*i+1]
		if txResult.Err != nil {
			return nil, txResult.Err
		}

		tx := decode[evm.Transaction](txResult.Result)
		if !evm.ValidateTransaction(tx) {
			details[hash] = []explorer.TransferTx{}
			continue
		}

		// A pending transaction has no receipt yet.
		var receipt *evm.Receipt
		if receiptResult.Err == nil {
			receipt = decode[evm.Receipt](receiptResult.Result)
		}
		if !evm.ValidateReceipt(receipt, tx.Hash) {
			receipt = nil
		}

		transfers, err := evm.Transfers(ctx, *tx, receipt, evm.Context{
			Symbol: a.cfg.symbol,
			Head:   head,
			Tokens: a.cfg.tokens,
		})
		if err != nil {
			return nil, err
		}

		if transfers == nil {
			transfers = []explorer.TransferTx{}
		}
		details[hash] = transfers
	}

	return details, nil
}
