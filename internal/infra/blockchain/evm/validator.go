package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidAddress reports whether s is a 20-byte hex address.
func ValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ValidHash reports whether s is a 32-byte hex hash.
func ValidHash(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*common.HashLength {
		return false
	}

	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}

	return true
}

// ValidateTransaction reports whether tx can be parsed. Contract creations
// have no receiver and are accepted.
func ValidateTransaction(tx *Transaction) bool {
	if tx == nil || !ValidHash(tx.Hash) || !ValidAddress(tx.From) || tx.Value == nil {
		return false
	}

	return tx.To == "" || ValidAddress(tx.To)
}

// ValidateReceipt reports whether receipt belongs to the transaction hash.
func ValidateReceipt(receipt *Receipt, hash string) bool {
	return receipt != nil && strings.EqualFold(receipt.TransactionHash, hash)
}

// ValidateBlock reports whether block carries a number and a hash.
func ValidateBlock(block *Block) bool {
	return block != nil && block.Number != nil && block.Number.ToInt().Sign() > 0 && ValidHash(block.Hash)
}
