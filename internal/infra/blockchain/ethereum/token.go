package ethereum

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const erc20ABI = `[
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"}
]`

// TokenResolver reads ERC20 metadata with eth_call.
type TokenResolver struct {
	conn jsonrpc.Client
	abi  abi.ABI
}

var _ explorer.TokenResolver = (*TokenResolver)(nil)

// NewTokenResolver returns a resolver calling the contracts through conn.
func NewTokenResolver(conn jsonrpc.Client) (*TokenResolver, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &TokenResolver{conn: conn, abi: parsed}, nil
}

func (r *TokenResolver) call(contract, method string) (jsonrpc.Call, error) {
	data, err := r.abi.Pack(method)
	if err != nil {
		return jsonrpc.Call{}, err
	}

	return jsonrpc.Call{
		Method: "eth_call",
		Params: []any{map[string]string{"to": contract, "data": hexutil.Encode(data)}, latest},
	}, nil
}

// unpack decodes the single output of method from an eth_call answer.
func (r *TokenResolver) unpack(method string, result jsonrpc.Result) (any, error) {
	if result.Err != nil {
		return nil, result.Err
	}

	encoded := decode[string](result.Result)
	if encoded == nil {
		return nil, fmt.Errorf("empty %s answer", method)
	}

	data, err := hexutil.Decode(*encoded)
	if err != nil {
		return nil, err
	}

	out, err := r.abi.Unpack(method, data)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

// ResolveToken implements explorer.TokenResolver. Contracts that do not
// answer decimals() are reported as explorer.ErrUnknownToken; a symbol()
// that cannot be decoded leaves the symbol empty.
func (r *TokenResolver) ResolveToken(ctx context.Context, contract string) (explorer.Token, error) {
	if err := checkAddress(contract); err != nil {
		return explorer.Token{}, err
	}

	decimalsCall, err := r.call(contract, "decimals")
	if err != nil {
		return explorer.Token{}, err
	}

	symbolCall, err := r.call(contract, "symbol")
	if err != nil {
		return explorer.Token{}, err
	}

	results, err := r.conn.BatchFetch(ctx, []jsonrpc.Call{decimalsCall, symbolCall})
	if err != nil {
		return explorer.Token{}, err
	}

	if results[0].Err != nil {
		return explorer.Token{}, results[0].Err
	}

	decimals, err := r.unpack("decimals", results[0])
	if err != nil {
		return explorer.Token{}, fmt.Errorf("%w: %s: %w", explorer.ErrUnknownToken, contract, err)
	}

	token := explorer.Token{
		Contract: strings.ToLower(contract),
		Decimals: int32(decimals.(uint8)),
	}

	if symbol, err := r.unpack("symbol", results[1]); err == nil {
		token.Symbol, _ = symbol.(string)
	}

	return token, nil
}
