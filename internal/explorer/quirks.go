package explorer

import (
	"github.com/gabapcia/blockexplorer/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// applyQuirks applies the chain rules configured on the explorer to txs and
// checks the TransferTx invariants of the result.
func (e *Explorer) applyQuirks(txs []TransferTx) ([]TransferTx, error) {
	txs = ZeroInvalidSenders(txs, e.cfg.invalidSenders)
	if e.cfg.feeDeduction {
		txs = DeductFees(txs)
	}

	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
	}

	return txs, nil
}

// ZeroInvalidSenders sets to zero the value of every transfer sent from one of
// the invalid addresses. Providers attribute phantom outflows to burn and
// genesis addresses; counting them would corrupt balances downstream.
//
// txs is modified in place and returned.
func ZeroInvalidSenders(txs []TransferTx, invalid types.Set[string]) []TransferTx {
	if len(invalid) == 0 {
		return txs
	}

	for i := range txs {
		if invalid.Has(txs[i].FromAddress) {
			txs[i].Value = decimal.Zero
		}
	}

	return txs
}

// NetOutgoingValue is the value that actually left a UTXO wallet: what its
// inputs spent, minus what came back as change, minus the fee. It is never
// negative.
func NetOutgoingValue(input, change, fee decimal.Decimal) decimal.Decimal {
	net := input.Sub(change).Sub(fee)
	if net.IsNegative() {
		return decimal.Zero
	}

	return net
}

// DeductFees removes the fee from the first outgoing transfer of each
// transaction whose fee is known. Incoming transfers are untouched.
//
// txs is modified in place and returned.
func DeductFees(txs []TransferTx) []TransferTx {
	charged := types.NewSet[string]()

	for i := range txs {
		tx := &txs[i]
		if tx.FromAddress == "" || !tx.TxFee.Valid || charged.Has(tx.TxHash) {
			continue
		}

		tx.Value = NetOutgoingValue(tx.Value, decimal.Zero, tx.TxFee.Decimal)
		charged.Add(tx.TxHash)
	}

	return txs
}
