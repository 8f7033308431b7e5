package polkadot

import (
	"encoding/json"

	"github.com/gabapcia/blockexplorer/internal/pkg/units"
)

// validPlanck reports whether n is a non-negative integer amount.
func validPlanck(n json.Number) bool {
	if n == "" {
		return false
	}

	v, err := units.ParseInt(n.String())
	return err == nil && v.Sign() >= 0
}

func validateBalanceResponse(resp *response) bool {
	if resp == nil || resp.Account == nil || resp.Account.ID == "" {
		return false
	}

	b := resp.Account.Balance
	return b != nil && b.Symbol == Symbol && validPlanck(b.Free)
}

func validateTransfersResponse(resp *response) bool {
	return resp != nil && len(resp.Transfers) > 0
}

func validateTransfer(t transfer) bool {
	hasFrom := t.From != nil && t.From.ID != ""
	hasTo := t.To != nil && t.To.ID != ""

	return t.ExtrinsicHash != "" &&
		t.BlockNumber > 0 &&
		(hasFrom || hasTo) &&
		t.Symbol == Symbol &&
		validPlanck(t.Amount)
}

func validateBlockHeadResponse(resp *response) bool {
	return resp != nil && resp.SquidStatus != nil && resp.SquidStatus.Height > 0
}
