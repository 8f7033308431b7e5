package explorer

import (
	"context"
	"iter"
	"maps"
	"slices"

	"github.com/alitto/pond/v2"
)

// chunkSize returns the batch size for n items given a provider maximum,
// where a non-positive maximum means unbounded.
func chunkSize(maximum, n int) int {
	if maximum <= 0 || maximum > n {
		return n
	}

	return maximum
}

// balancesFrom returns the balances of addresses from a single provider.
func balancesFrom(ctx context.Context, p BalanceProvider, addresses []string) ([]Balance, error) {
	balances := make([]Balance, 0, len(addresses))

	caps := p.Capabilities()
	if batch, ok := p.(BalancesProvider); ok && caps.SupportGetBalanceBatch {
		for chunk := range slices.Chunk(addresses, chunkSize(caps.GetBalancesMaxAddressNum, len(addresses))) {
			part, err := batch.GetBalances(ctx, chunk)
			if err != nil {
				return nil, err
			}
			balances = append(balances, part...)
		}

		return balances, nil
	}

	for _, address := range addresses {
		balance, err := p.GetBalance(ctx, address)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

// txDetailsFrom returns the transfers of every hash from a single provider.
// Every hash is present in the result.
func txDetailsFrom(ctx context.Context, p TxDetailsProvider, txHashes []string) (map[string][]TransferTx, error) {
	details := make(map[string][]TransferTx, len(txHashes))

	caps := p.Capabilities()
	if batch, ok := p.(TxDetailsBatchProvider); ok && caps.TransactionDetailsBatch {
		for chunk := range slices.Chunk(txHashes, chunkSize(caps.GetTxDetailsMaxNum, len(txHashes))) {
			part, err := batch.GetTxDetailsBatch(ctx, chunk)
			if err != nil {
				return nil, err
			}
			maps.Copy(details, part)
		}
	} else {
		for _, hash := range txHashes {
			txs, err := p.GetTxDetails(ctx, hash)
			if err != nil {
				return nil, err
			}
			details[hash] = txs
		}
	}

	for _, hash := range txHashes {
		if details[hash] == nil {
			details[hash] = []TransferTx{}
		}
	}

	return details, nil
}

// blockChunks splits [from, to] into consecutive ranges of at most size
// heights. A non-positive size yields the whole range.
func blockChunks(from, to int64, size int) iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		step := int64(size)
		if step <= 0 {
			step = to - from + 1
		}

		for lo := from; lo <= to; lo += step {
			if !yield(lo, min(lo+step-1, to)) {
				return
			}
		}
	}
}

// blockRangeFrom returns the transfers of the blocks in [from, to] from a
// single provider, in height order.
func blockRangeFrom(ctx context.Context, p BlockTxsProvider, from, to int64) ([]TransferTx, error) {
	caps := p.Capabilities()
	batch, ok := p.(BatchBlockTxsProvider)
	ok = ok && caps.SupportBatchGetBlocks

	txs := []TransferTx{}
	for lo, hi := range blockChunks(from, to, caps.GetBlocksMaxNum) {
		var (
			part []TransferTx
			err  error
		)
		if ok {
			part, err = batch.GetBatchBlockTxs(ctx, lo, hi)
		} else {
			part, err = fanOutBlocks(ctx, p, lo, hi, caps.MaxWorkersForGetBlock)
		}
		if err != nil {
			return nil, err
		}
		txs = append(txs, part...)
	}

	return txs, nil
}

// fanOutBlocks fetches [from, to] one height per task. The first failure
// cancels the tasks still running and skips the ones not started.
func fanOutBlocks(ctx context.Context, p BlockTxsProvider, from, to int64, workers int) ([]TransferTx, error) {
	pool := pond.NewResultPool[[]TransferTx](max(workers, 1))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for height := from; height <= to; height++ {
		group.SubmitErr(func() ([]TransferTx, error) {
			if err := taskCtx.Err(); err != nil {
				return nil, err
			}

			txs, err := p.GetBlockTxs(taskCtx, height)
			if err != nil {
				cancel()
			}
			return txs, err
		})
	}

	blocks, err := group.Wait()
	if err != nil {
		return nil, err
	}

	var txs []TransferTx
	for _, block := range blocks {
		txs = append(txs, block...)
	}

	return txs, nil
}
