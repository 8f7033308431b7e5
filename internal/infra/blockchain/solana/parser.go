package solana

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/shopspring/decimal"
)

func parseBalance(address string, result *balanceResult) (explorer.Balance, error) {
	amount, err := units.FromUnitString(result.Value.String(), Precision)
	if err != nil {
		return explorer.Balance{}, err
	}

	return explorer.Balance{
		Currency: Symbol,
		Address:  address,
		Amount:   amount,
	}, nil
}

// parseSignatures returns the signatures in the order the node listed them,
// newest first.
func parseSignatures(signatures []signatureInfo) []string {
	hashes := make([]string, 0, len(signatures))
	for _, s := range signatures {
		if s.Signature != "" {
			hashes = append(hashes, s.Signature)
		}
	}

	return hashes
}

func succeeded(err json.RawMessage) bool {
	return len(err) == 0 || string(err) == "null"
}

func dateOf(blockTime *int64) time.Time {
	if blockTime == nil || *blockTime <= 0 {
		return time.Time{}
	}

	return time.Unix(*blockTime, 0).UTC()
}

// memoOf returns the text of the spl-memo instructions of msg.
func memoOf(msg *message) string {
	var memos []string
	for _, ix := range msg.Instructions {
		if ix.Program != "spl-memo" {
			continue
		}

		var memo string
		if json.Unmarshal(ix.Parsed, &memo) == nil && memo != "" {
			memos = append(memos, memo)
		}
	}

	return strings.Join(memos, " ")
}

// parseTransaction returns one transfer per system transfer instruction of
// tx, all carrying the transaction fee and status.
func parseTransaction(tx transactionResult, slot int64, blockHash string, blockTime *int64, head int64) ([]explorer.TransferTx, error) {
	var fee decimal.NullDecimal
	if validLamports(tx.Meta.Fee) {
		amount, err := units.FromUnitString(tx.Meta.Fee.String(), Precision)
		if err != nil {
			return nil, err
		}
		fee = decimal.NewNullDecimal(amount)
	}

	var (
		hash    = tx.Transaction.Signatures[0]
		memo    = memoOf(tx.Transaction.Message)
		success = succeeded(tx.Meta.Err)
		date    = dateOf(blockTime)
	)

	txs := []explorer.TransferTx{}
	for _, ix := range tx.Transaction.Message.Instructions {
		info, ok := transferOf(ix)
		if !ok {
			continue
		}

		value, err := units.FromUnitString(info.Lamports.String(), Precision)
		if err != nil {
			return nil, err
		}

		txs = append(txs, explorer.TransferTx{
			TxHash:        hash,
			BlockHeight:   slot,
			BlockHash:     blockHash,
			Date:          date,
			Success:       success,
			Confirmations: explorer.Confirmations(head, slot),
			FromAddress:   info.Source,
			ToAddress:     info.Destination,
			Value:         value,
			Symbol:        Symbol,
			Memo:          memo,
			TxFee:         fee,
		})
	}

	return txs, nil
}

// parseBlock returns the transfers of every valid transaction of block.
func parseBlock(block blockResult, slot, head int64) ([]explorer.TransferTx, error) {
	txs := []explorer.TransferTx{}
	for _, tx := range block.Transactions {
		if !validateBlockTransaction(tx) {
			continue
		}

		transfers, err := parseTransaction(tx, slot, block.Blockhash, block.BlockTime, head)
		if err != nil {
			return nil, err
		}
		txs = append(txs, transfers...)
	}

	return txs, nil
}
