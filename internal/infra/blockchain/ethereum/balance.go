package ethereum

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/evm"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func (a *api) parseBalance(address string, wei *hexutil.Big) (explorer.Balance, error) {
	amount, err := units.FromUnit(wei.ToInt(), evm.Precision)
	if err != nil {
		return explorer.Balance{}, err
	}

	return explorer.Balance{
		Currency: a.cfg.symbol,
		Address:  address,
		Amount:   amount,
	}, nil
}

// GetBalance implements explorer.BalanceProvider.
func (a *api) GetBalance(ctx context.Context, address string) (explorer.Balance, error) {
	if err := checkAddress(address); err != nil {
		return explorer.Balance{}, err
	}

	raw, err := a.conn.Fetch(ctx, "eth_getBalance", address, latest)
	if err != nil {
		return explorer.Balance{}, err
	}

	wei := decode[hexutil.Big](raw)
	if wei == nil {
		return explorer.Balance{}, fmt.Errorf("%w: no %s balance for %s", http.ErrMalformedResponse, a.cfg.symbol, address)
	}

	return a.parseBalance(address, wei)
}

// GetBalances implements explorer.BalancesProvider with one JSON-RPC batch.
func (a *api) GetBalances(ctx context.Context, addresses []string) ([]explorer.Balance, error) {
	calls := make([]jsonrpc.Call, len(addresses))
	for i, address := range addresses {
		if err := checkAddress(address); err != nil {
			return nil, err
		}
		calls[i] = jsonrpc.Call{Method: "eth_getBalance", Params: []any{address, latest}}
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

		wei := decode[hexutil.Big](r.Result)
		if wei == nil {
			continue
		}

		balance, err := a.parseBalance(addresses[i], wei)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}
