package ethereum

import (
	"context"
	"strings"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/evm"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// headOf decodes an eth_blockNumber answer, zero when unusable.
func headOf(result jsonrpc.Result) int64 {
	if result.Err != nil {
		return 0
	}

	return evm.Int64(decode[hexutil.Big](result.Result))
}

// GetBlockHead implements explorer.BlockHeadProvider.
func (a *api) GetBlockHead(ctx context.Context) (int64, error) {
	raw, err := a.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	head := evm.Int64(decode[hexutil.Big](raw))
	if head <= 0 {
		return 0, explorer.ErrNoBlockHead
	}

	return head, nil
}

// GetBlockTxs implements explorer.BlockTxsProvider.
func (a *api) GetBlockTxs(ctx context.Context, height int64) ([]explorer.TransferTx, error) {
	return a.GetBatchBlockTxs(ctx, height, height)
}

// GetBatchBlockTxs implements explorer.BatchBlockTxsProvider. Every block of
// the range, its receipts and the chain tip travel in one JSON-RPC batch.
func (a *api) GetBatchBlockTxs(ctx context.Context, from, to int64) ([]explorer.TransferTx, error) {
	if from > to {
		return []explorer.TransferTx{}, nil
	}

	perBlock := 1
	if a.cfg.blockReceipts {
		perBlock = 2
	}

	n := int(to - from + 1)

	calls := make([]jsonrpc.Call, 0, perBlock*n+1)
	for height := from; height <= to; height++ {
		number := hexutil.EncodeUint64(uint64(height))
		calls = append(calls, jsonrpc.Call{Method: "eth_getBlockByNumber", Params: []any{number, true}})
		if a.cfg.blockReceipts {
			calls = append(calls, jsonrpc.Call{Method: "eth_getBlockReceipts", Params: []any{number}})
		}
	}
	calls = append(calls, jsonrpc.Call{Method: "eth_blockNumber"})

	results, err := a.conn.BatchFetch(ctx, calls)
	if err != nil {
		return nil, err
	}

	head := headOf(results[len(calls)-1])

	txs := []explorer.TransferTx{}
	for i := range n {
		blockResult := results[perBlock*i]
		if blockResult.Err != nil {
			return nil, blockResult.Err
		}

		block := decode[evm.Block](blockResult.Result)
		if !evm.ValidateBlock(block) {
			continue
		}

		var receipts map[string]*evm.Receipt
		if a.cfg.blockReceipts {
			receipts = a.receiptsOf(ctx, results[perBlock*i+1])
		}

		transfers, err := a.parseBlock(ctx, *block, receipts, head)
		if err != nil {
			return nil, err
		}
		txs = append(txs, transfers...)
	}

	return txs, nil
}

// receiptsOf indexes an eth_getBlockReceipts answer by transaction hash. A
// failed call yields no receipts rather than failing the block.
func (a *api) receiptsOf(ctx context.Context, result jsonrpc.Result) map[string]*evm.Receipt {
	if result.Err != nil {
		logger.Debug(ctx, "block receipts unavailable", "provider", a.cfg.name, "error", result.Err)
		return nil
	}

	list := decode[[]evm.Receipt](result.Result)
	if list == nil {
		return nil
	}

	receipts := make(map[string]*evm.Receipt, len(*list))
	for i := range *list {
		r := &(*list)[i]
		receipts[strings.ToLower(r.TransactionHash)] = r
	}

	return receipts
}

func (a *api) parseBlock(ctx context.Context, block evm.Block, receipts map[string]*evm.Receipt, head int64) ([]explorer.TransferTx, error) {
	c := evm.Context{
		Symbol: a.cfg.symbol,
		Date:   evm.Date(block.Timestamp),
		Head:   head,
		Tokens: a.cfg.tokens,
	}

	var txs []explorer.TransferTx
	for _, tx := range block.Transactions {
		if !evm.ValidateTransaction(&tx) {
			continue
		}

		if tx.BlockHash == "" {
			tx.BlockHash = block.Hash
		}
		if tx.BlockNumber == nil {
			tx.BlockNumber = block.Number
		}

		receipt := receipts[strings.ToLower(tx.Hash)]
		transfers, err := evm.Transfers(ctx, tx, receipt, c)
		if err != nil {
			return nil, err
		}
		txs = append(txs, transfers...)
	}

	return txs, nil
}
