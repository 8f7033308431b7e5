package blockscan

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/evm"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/shopspring/decimal"
)

func parseBalance(address, wei, symbol string) (explorer.Balance, error) {
	amount, err := units.FromUnitString(wei, evm.Precision)
	if err != nil {
		return explorer.Balance{}, err
	}

	return explorer.Balance{
		Currency: symbol,
		Address:  address,
		Amount:   amount,
	}, nil
}

func parseBalances(entries []balanceEntry, symbol string) ([]explorer.Balance, error) {
	balances := make([]explorer.Balance, 0, len(entries))
	for _, e := range entries {
		if !validateBalanceEntry(e) {
			continue
		}

		balance, err := parseBalance(e.Account, e.Balance, symbol)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return v
}

func dateOf(timestamp string) time.Time {
	seconds := parseInt(timestamp)
	if seconds <= 0 {
		return time.Time{}
	}

	return time.Unix(seconds, 0).UTC()
}

// newTransfer fills the fields shared by native and token entries.
func newTransfer(tx accountTx) (explorer.TransferTx, error) {
	transfer := explorer.TransferTx{
		TxHash:        tx.Hash,
		BlockHeight:   parseInt(tx.BlockNumber),
		BlockHash:     tx.BlockHash,
		Date:          dateOf(tx.TimeStamp),
		Success:       tx.IsError != "1" && tx.TxReceiptStatus != "0",
		Confirmations: parseInt(tx.Confirmations),
		FromAddress:   evm.Address(tx.From),
		ToAddress:     evm.Address(tx.To),
	}

	if validInt(tx.GasUsed) && validInt(tx.GasPrice) {
		gasUsed, _ := new(big.Int).SetString(tx.GasUsed, 10)
		gasPrice, _ := new(big.Int).SetString(tx.GasPrice, 10)

		fee, err := units.FromUnit(new(big.Int).Mul(gasUsed, gasPrice), evm.Precision)
		if err != nil {
			return explorer.TransferTx{}, err
		}
		transfer.TxFee = decimal.NewNullDecimal(fee)
	}

	return transfer, nil
}

// parseNativeTxs converts txlist entries. Entries moving no value are
// contract calls and are left out.
func parseNativeTxs(list []accountTx, symbol string) ([]explorer.TransferTx, error) {
	txs := make([]explorer.TransferTx, 0, len(list))
	for _, tx := range list {
		if !validateAccountTx(tx) {
			continue
		}

		value, err := units.FromUnitString(tx.Value, evm.Precision)
		if err != nil {
			return nil, err
		}
		if value.IsZero() {
			continue
		}

		transfer, err := newTransfer(tx)
		if err != nil {
			return nil, err
		}
		transfer.Value = value
		transfer.Symbol = symbol

		txs = append(txs, transfer)
	}

	return txs, nil
}

// tokenOf looks the contract of tx up in tokens. Contracts the registry does
// not know are learned from the metadata the explorer attaches to the entry.
func tokenOf(ctx context.Context, tx accountTx, tokens *explorer.TokenRegistry) (explorer.Token, bool, error) {
	token, err := tokens.Lookup(ctx, tx.ContractAddress)
	if err == nil {
		return token, true, nil
	}

	if !errors.Is(err, explorer.ErrUnknownToken) {
		return explorer.Token{}, false, err
	}

	decimals, convErr := strconv.ParseInt(tx.TokenDecimal, 10, 32)
	if convErr != nil || decimals < 0 || tx.TokenSymbol == "" {
		logger.Debug(ctx, "skipping transfer of unknown token", "contract", tx.ContractAddress, "tx_hash", tx.Hash)
		return explorer.Token{}, false, nil
	}

	token = explorer.Token{
		Contract: evm.Address(tx.ContractAddress),
		Symbol:   tx.TokenSymbol,
		Decimals: int32(decimals),
	}
	tokens.Register(token)

	return token, true, nil
}

// parseTokenTxs converts tokentx entries.
func parseTokenTxs(ctx context.Context, list []accountTx, tokens *explorer.TokenRegistry) ([]explorer.TransferTx, error) {
	txs := make([]explorer.TransferTx, 0, len(list))
	for _, tx := range list {
		if !validateTokenTx(tx) {
			continue
		}

		token, ok, err := tokenOf(ctx, tx, tokens)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		value, err := units.FromUnitString(tx.Value, token.Decimals)
		if err != nil {
			return nil, err
		}

		transfer, err := newTransfer(tx)
		if err != nil {
			return nil, err
		}
		transfer.Value = value
		transfer.Symbol = token.Symbol
		transfer.Token = evm.Address(tx.ContractAddress)

		txs = append(txs, transfer)
	}

	return txs, nil
}
