package cardano

import (
	"encoding/json"

	"github.com/gabapcia/blockexplorer/internal/pkg/units"
)

// validAmount reports whether n is a non-negative decimal number.
func validAmount(n json.Number) bool {
	if n == "" {
		return false
	}

	d, err := units.ParseDecimal(n.String())
	return err == nil && !d.IsNegative()
}

func validateBalanceResponse(resp *response) bool {
	return resp != nil && resp.Cardano != nil && len(resp.Cardano.Address) > 0
}

// validateAddressBalance rejects entries reporting any currency other than ADA.
func validateAddressBalance(b addressBalance) bool {
	if b.Address == nil || b.Address.Address == "" || len(b.Balance) == 0 {
		return false
	}

	for _, entry := range b.Balance {
		if entry.Currency == nil || entry.Currency.Symbol != Symbol || !validAmount(entry.Value) {
			return false
		}
	}

	return true
}

func validateTransfersResponse(resp *response) bool {
	if resp == nil || resp.Cardano == nil {
		return false
	}

	data := resp.Cardano
	return data.Inputs != nil && data.Outputs != nil && len(data.Inputs)+len(data.Outputs) > 0
}

func validateUTXO(u utxo) bool {
	return u.Block != nil && u.Block.Height > 0 &&
		u.Transaction != nil && u.Transaction.Hash != "" &&
		u.Currency != nil && u.Currency.Symbol == Symbol &&
		validAmount(u.Value)
}

func validateInput(u utxo) bool {
	return validateUTXO(u) && u.InputAddress != nil && u.InputAddress.Address != ""
}

func validateOutput(u utxo) bool {
	return validateUTXO(u) && u.OutputAddress != nil && u.OutputAddress.Address != ""
}

func validateBlockHeadResponse(resp *response) bool {
	return resp != nil && resp.Cardano != nil && len(resp.Cardano.Blocks) > 0 && resp.Cardano.Blocks[0].Height > 0
}
