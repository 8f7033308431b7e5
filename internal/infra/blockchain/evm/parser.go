package evm

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// TransferEventTopic is the topic of the ERC20 Transfer(address,address,uint256) event.
var TransferEventTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// Context carries what a transaction alone does not tell.
type Context struct {
	// Symbol of the native coin.
	Symbol string

	// Date of the block, zero when unknown.
	Date time.Time

	// Head is the chain tip, zero when unknown.
	Head int64

	// Tokens resolves the decimals of ERC20 contracts. Nil skips token transfers.
	Tokens *explorer.TokenRegistry
}

// Address normalizes s to its lowercase hex form.
func Address(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToLower(common.HexToAddress(s).Hex())
}

// Date converts a unix timestamp to UTC.
func Date(timestamp *hexutil.Big) time.Time {
	seconds := Int64(timestamp)
	if seconds <= 0 {
		return time.Time{}
	}

	return time.Unix(seconds, 0).UTC()
}

// Transfers returns the value movements of tx: the native transfer when it
// carries value, then one entry per ERC20 Transfer log of receipt. receipt may
// be nil, in which case the transaction is assumed successful and no fee or
// token transfer is reported.
func Transfers(ctx context.Context, tx Transaction, receipt *Receipt, c Context) ([]explorer.TransferTx, error) {
	height := Int64(tx.BlockNumber)

	base := explorer.TransferTx{
		TxHash:        tx.Hash,
		BlockHeight:   height,
		BlockHash:     tx.BlockHash,
		Date:          c.Date,
		Success:       receipt == nil || receipt.Status == nil || *receipt.Status == 1,
		Confirmations: explorer.Confirmations(c.Head, height),
	}

	if wei, ok := Fee(tx, receipt); ok {
		fee, err := units.FromUnit(wei, Precision)
		if err != nil {
			return nil, err
		}
		base.TxFee = decimal.NewNullDecimal(fee)
	}

	var txs []explorer.TransferTx

	if value := BigOf(tx.Value); value.Sign() > 0 {
		amount, err := units.FromUnit(value, Precision)
		if err != nil {
			return nil, err
		}

		native := base
		native.FromAddress = Address(tx.From)
		native.ToAddress = Address(tx.To)
		native.Value = amount
		native.Symbol = c.Symbol
		txs = append(txs, native)
	}

	if receipt == nil || c.Tokens == nil {
		return txs, nil
	}

	for _, l := range receipt.Logs {
		from, to, raw, ok := decodeTransferLog(l)
		if !ok {
			continue
		}

		token, err := c.Tokens.Lookup(ctx, l.Address)
		if errors.Is(err, explorer.ErrUnknownToken) {
			logger.Debug(ctx, "skipping transfer of unknown token", "contract", l.Address, "tx_hash", tx.Hash)
			continue
		}
		if err != nil {
			return nil, err
		}

		amount, err := units.FromUnit(raw, token.Decimals)
		if err != nil {
			return nil, err
		}

		transfer := base
		transfer.FromAddress = from
		transfer.ToAddress = to
		transfer.Value = amount
		transfer.Symbol = token.Symbol
		transfer.Token = Address(l.Address)
		txs = append(txs, transfer)
	}

	return txs, nil
}

// decodeTransferLog extracts an ERC20 Transfer event. ERC721 transfers share
// the topic but index the token id as a fourth topic and are ignored.
func decodeTransferLog(l Log) (from, to string, amount *big.Int, ok bool) {
	if len(l.Topics) != 3 || common.HexToHash(l.Topics[0]) != TransferEventTopic || !ValidAddress(l.Address) {
		return "", "", nil, false
	}

	data, err := hexutil.Decode(l.Data)
	if err != nil || len(data) != common.HashLength {
		return "", "", nil, false
	}

	from = strings.ToLower(common.BytesToAddress(common.HexToHash(l.Topics[1]).Bytes()).Hex())
	to = strings.ToLower(common.BytesToAddress(common.HexToHash(l.Topics[2]).Bytes()).Hex())

	return from, to, new(big.Int).SetBytes(data), true
}
