package solana

import (
	"encoding/json"

	"github.com/gabapcia/blockexplorer/internal/pkg/units"

	"github.com/gagliardetto/solana-go"
)

// systemTransfers are the system program instructions that move lamports.
var systemTransfers = map[string]bool{
	"transfer":         true,
	"transferWithSeed": true,
}

func validLamports(n json.Number) bool {
	v, err := units.ParseInt(n.String())
	return n != "" && err == nil && v.Sign() >= 0
}

func validAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

func validateBalanceResponse(result *balanceResult) bool {
	return result != nil && result.Value != nil && validLamports(*result.Value)
}

func validateSlotResponse(slot *int64) bool {
	return slot != nil && *slot > 0
}

func validateSignaturesResponse(signatures *[]signatureInfo) bool {
	return signatures != nil && len(*signatures) > 0
}

func validateTransactionResponse(tx *transactionResult) bool {
	return tx != nil && tx.Slot > 0 && validateBlockTransaction(*tx)
}

// validateBlockTransaction checks a transaction as embedded in a block.
func validateBlockTransaction(tx transactionResult) bool {
	return tx.Meta != nil &&
		tx.Transaction != nil &&
		len(tx.Transaction.Signatures) > 0 && tx.Transaction.Signatures[0] != "" &&
		tx.Transaction.Message != nil
}

func validateBlockResponse(block *blockResult) bool {
	return block != nil && block.Blockhash != "" && block.Transactions != nil
}

// transferOf returns the lamport movement of a system transfer instruction,
// or false for any other instruction.
func transferOf(ix instruction) (transferInfo, bool) {
	if ix.Program != "system" || len(ix.Parsed) == 0 {
		return transferInfo{}, false
	}

	var parsed parsedInstruction
	if err := json.Unmarshal(ix.Parsed, &parsed); err != nil {
		return transferInfo{}, false
	}

	if !systemTransfers[parsed.Type] || parsed.Info == nil {
		return transferInfo{}, false
	}

	info := *parsed.Info
	if !validAddress(info.Source) || !validAddress(info.Destination) || !validLamports(info.Lamports) {
		return transferInfo{}, false
	}

	return info, true
}
