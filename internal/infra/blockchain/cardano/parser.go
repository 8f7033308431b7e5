package cardano

import (
	"encoding/json"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/shopspring/decimal"
)

// amountOf parses a validated amount.
func amountOf(n json.Number) decimal.Decimal {
	d, _ := units.ParseDecimal(n.String())
	return d
}

func feeOf(tx *transactionRef) decimal.NullDecimal {
	if tx == nil || tx.FeeValue == "" {
		return decimal.NullDecimal{}
	}

	d, err := units.ParseDecimal(tx.FeeValue.String())
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}

func dateOf(b *blockRef) time.Time {
	if b == nil || b.Timestamp == nil {
		return time.Time{}
	}

	date, err := time.Parse(time.RFC3339, b.Timestamp.Time)
	if err != nil {
		return time.Time{}
	}

	return date.UTC()
}

func parseBalances(resp *response) []explorer.Balance {
	balances := make([]explorer.Balance, 0, len(resp.Cardano.Address))
	for _, b := range resp.Cardano.Address {
		if !validateAddressBalance(b) {
			continue
		}

		amount := decimal.Zero
		for _, entry := range b.Balance {
			amount = amount.Add(amountOf(entry.Value))
		}

		balances = append(balances, explorer.Balance{
			Currency: Symbol,
			Address:  b.Address.Address,
			Amount:   amount,
		})
	}

	return balances
}

func parseBlockHead(resp *response) int64 {
	return resp.Cardano.Blocks[0].Height
}

// highestBlock returns the greatest height of blocks, zero when empty.
func highestBlock(blocks []blockRef) int64 {
	var head int64
	for _, b := range blocks {
		head = max(head, b.Height)
	}

	return head
}

func newTransfer(u utxo, head int64) explorer.TransferTx {
	return explorer.TransferTx{
		TxHash:        u.Transaction.Hash,
		BlockHeight:   u.Block.Height,
		Date:          dateOf(u.Block),
		Success:       true,
		Confirmations: explorer.Confirmations(head, u.Block.Height),
		Value:         amountOf(u.Value),
		Symbol:        Symbol,
		TxFee:         feeOf(u.Transaction),
	}
}

// utxoKey identifies the side of one address in one transaction.
type utxoKey struct {
	address string
	txHash  string
}

// parseTransfers folds the input and output records of resp into transfers.
//
// Inputs of one address in one transaction collapse into a single outflow.
// An output paying back an address that also spent in the same transaction is
// change and is netted out of that outflow. Other outputs to the same address
// and transaction accumulate into a single inflow.
//
// head is the chain tip used for confirmations; when not positive, the
// highest block of the response is used instead.
func parseTransfers(resp *response, head int64) []explorer.TransferTx {
	data := resp.Cardano
	if head <= 0 {
		head = highestBlock(data.Blocks)
	}

	var (
		txs      = make([]explorer.TransferTx, 0, len(data.Inputs)+len(data.Outputs))
		spent    = make(map[utxoKey]int)
		received = make(map[utxoKey]int)
	)

	for _, in := range data.Inputs {
		if !validateInput(in) {
			continue
		}

		key := utxoKey{address: in.InputAddress.Address, txHash: in.Transaction.Hash}
		if i, ok := spent[key]; ok {
			txs[i].Value = txs[i].Value.Add(amountOf(in.Value))
			continue
		}

		tx := newTransfer(in, head)
		tx.FromAddress = key.address

		spent[key] = len(txs)
		txs = append(txs, tx)
	}

	for _, out := range data.Outputs {
		if !validateOutput(out) {
			continue
		}

		key := utxoKey{address: out.OutputAddress.Address, txHash: out.Transaction.Hash}
		if i, ok := spent[key]; ok {
			txs[i].Value = txs[i].Value.Sub(amountOf(out.Value))
			continue
		}

		if i, ok := received[key]; ok {
			txs[i].Value = txs[i].Value.Add(amountOf(out.Value))
			continue
		}

		tx := newTransfer(out, head)
		tx.ToAddress = key.address

		received[key] = len(txs)
		txs = append(txs, tx)
	}

	return settleChange(txs)
}

// settleChange turns outflows that got more back than they spent into
// inflows of the difference.
func settleChange(txs []explorer.TransferTx) []explorer.TransferTx {
	for i := range txs {
		if txs[i].Value.IsNegative() {
			txs[i].ToAddress = txs[i].FromAddress
			txs[i].FromAddress = ""
			txs[i].Value = txs[i].Value.Abs()
		}
	}

	return txs
}
