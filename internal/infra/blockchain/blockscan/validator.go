package blockscan

import (
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/evm"
	"github.com/gabapcia/blockexplorer/internal/pkg/units"
)

// validInt reports whether s is a non-negative base-10 integer.
func validInt(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	_, err := units.ParseInt(s)
	return err == nil
}

func validateBalanceResult(wei *string) bool {
	return wei != nil && validInt(*wei)
}

func validateBalanceEntry(e balanceEntry) bool {
	return evm.ValidAddress(e.Account) && validInt(e.Balance)
}

func validateAccountTx(tx accountTx) bool {
	return evm.ValidHash(tx.Hash) &&
		evm.ValidAddress(tx.From) &&
		(tx.To == "" || evm.ValidAddress(tx.To)) &&
		validInt(tx.BlockNumber) &&
		validInt(tx.Value)
}

func validateTokenTx(tx accountTx) bool {
	return validateAccountTx(tx) && tx.To != "" && evm.ValidAddress(tx.ContractAddress)
}
