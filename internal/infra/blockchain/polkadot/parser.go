package polkadot

import (
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/shopspring/decimal"
)

func parseBalance(resp *response) (explorer.Balance, error) {
	amount, err := units.FromUnitString(resp.Account.Balance.Free.String(), Precision)
	if err != nil {
		return explorer.Balance{}, err
	}

	return explorer.Balance{
		Currency: Symbol,
		Address:  resp.Account.ID,
		Amount:   amount,
	}, nil
}

func idOf(ref *accountRef) string {
	if ref == nil {
		return ""
	}

	return ref.ID
}

func dateOf(timestamp string) time.Time {
	date, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return time.Time{}
	}

	return date.UTC()
}

// parseTransfers returns one TransferTx per valid transfer record. The
// indexer height of the response drives confirmations.
func parseTransfers(resp *response) ([]explorer.TransferTx, error) {
	var head int64
	if validateBlockHeadResponse(resp) {
		head = resp.SquidStatus.Height
	}

	txs := make([]explorer.TransferTx, 0, len(resp.Transfers))
	for _, t := range resp.Transfers {
		if !validateTransfer(t) {
			continue
		}

		value, err := units.FromUnitString(t.Amount.String(), Precision)
		if err != nil {
			return nil, err
		}

		var fee decimal.NullDecimal
		if validPlanck(t.Fee) {
			amount, err := units.FromUnitString(t.Fee.String(), Precision)
			if err != nil {
				return nil, err
			}
			fee = decimal.NewNullDecimal(amount)
		}

		txs = append(txs, explorer.TransferTx{
			TxHash:        t.ExtrinsicHash,
			BlockHeight:   t.BlockNumber,
			BlockHash:     t.BlockHash,
			Date:          dateOf(t.Timestamp),
			Success:       t.Success == nil || *t.Success,
			Confirmations: explorer.Confirmations(head, t.BlockNumber),
			FromAddress:   idOf(t.From),
			ToAddress:     idOf(t.To),
			Value:         value,
			Symbol:        Symbol,
			TxFee:         fee,
		})
	}

	return txs, nil
}
