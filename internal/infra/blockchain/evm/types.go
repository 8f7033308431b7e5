// Package evm holds the wire types and transfer extraction shared by the
// providers of EVM chains.
package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Precision is the number of decimals of a wei amount.
const Precision = 18

type (
	// Transaction is a transaction object as returned by eth_getTransactionByHash
	// and full eth_getBlockByNumber answers.
	Transaction struct {
		Hash        string       `json:"hash"`
		BlockHash   string       `json:"blockHash"`
		BlockNumber *hexutil.Big `json:"blockNumber"`
		From        string       `json:"from"`
		To          string       `json:"to"`
		Value       *hexutil.Big `json:"value"`
		Gas         *hexutil.Big `json:"gas"`
		GasPrice    *hexutil.Big `json:"gasPrice"`
		Input       string       `json:"input"`
	}

	// Log is an event emitted during a transaction.
	Log struct {
		Address string   `json:"address"`
		Topics  []string `json:"topics"`
		Data    string   `json:"data"`
	}

	// Receipt is the outcome of a mined transaction.
	Receipt struct {
		TransactionHash   string          `json:"transactionHash"`
		Status            *hexutil.Uint64 `json:"status"`
		GasUsed           *hexutil.Big    `json:"gasUsed"`
		EffectiveGasPrice *hexutil.Big    `json:"effectiveGasPrice"`
		Logs              []Log           `json:"logs"`
	}

	// Block is a full block, transactions included.
	Block struct {
		Number       *hexutil.Big  `json:"number"`
		Hash         string        `json:"hash"`
		Timestamp    *hexutil.Big  `json:"timestamp"`
		Transactions []Transaction `json:"transactions"`
	}
)

// Int64 returns n as an int64, or zero when n is nil or out of range.
func Int64(n *hexutil.Big) int64 {
	if n == nil {
		return 0
	}

	v := n.ToInt()
	if !v.IsInt64() {
		return 0
	}

	return v.Int64()
}

// BigOf returns n as a big.Int, zero when n is nil.
func BigOf(n *hexutil.Big) *big.Int {
	if n == nil {
		return new(big.Int)
	}

	return n.ToInt()
}

// Fee returns the wei paid for the transaction: gas used times the effective
// gas price, falling back to the price offered by the transaction. ok is false
// when either factor is unknown.
func Fee(tx Transaction, receipt *Receipt) (fee *big.Int, ok bool) {
	if receipt == nil || receipt.GasUsed == nil {
		return nil, false
	}

	price := receipt.EffectiveGasPrice
	if price == nil {
		price = tx.GasPrice
	}
	if price == nil {
		return nil, false
	}

	return new(big.Int).Mul(receipt.GasUsed.ToInt(), price.ToInt()), true
}
