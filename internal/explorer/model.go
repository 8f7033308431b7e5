package explorer

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoBlockHead is returned when a provider has no usable chain tip.
	// Callers must treat it as "confirmations unknown", never as zero.
	ErrNoBlockHead = errors.New("no block head available")

	// ErrResultTruncated is returned when a provider has more records for a
	// query than it is willing to page through.
	ErrResultTruncated = errors.New("result truncated")

	// ErrInvalidTransfer is returned by TransferTx.Validate.
	ErrInvalidTransfer = errors.New("invalid transfer")
)

// TransferTx is the normalized record of one side (or the net) of a value
// movement. Direction is conveyed by which of FromAddress and ToAddress is set.
type TransferTx struct {
	TxHash string `json:"tx_hash"`

	// BlockHeight is zero when the height is unknown.
	BlockHeight int64 `json:"block_height"`

	// BlockHash is empty when unknown.
	BlockHash string `json:"block_hash"`

	// Date is the zero time when unknown and UTC otherwise.
	Date time.Time `json:"date"`

	Success bool `json:"success"`

	// Confirmations is zero whenever the height or the head is unknown.
	Confirmations int64 `json:"confirmations"`

	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`

	// Value is never negative.
	Value  decimal.Decimal `json:"value"`
	Symbol string          `json:"symbol"`

	Memo  string              `json:"memo"`
	TxFee decimal.NullDecimal `json:"tx_fee"`

	// Token is the contract address of a token transfer, empty for the native coin.
	Token string `json:"token"`
}

// Validate checks the TransferTx invariants: at least one address is set and
// the value is not negative.
func (t TransferTx) Validate() error {
	if t.FromAddress == "" && t.ToAddress == "" {
		return fmt.Errorf("%w: %s has neither sender nor receiver", ErrInvalidTransfer, t.TxHash)
	}

	if t.Value.IsNegative() {
		return fmt.Errorf("%w: %s has negative value %s", ErrInvalidTransfer, t.TxHash, t.Value)
	}

	return nil
}

// Balance is the unit-converted amount held by an address.
type Balance struct {
	Currency string          `json:"currency"`
	Address  string          `json:"address"`
	Amount   decimal.Decimal `json:"amount"`
}

// Confirmations returns head - height, or zero when either is unknown (zero)
// or the height is above the head.
func Confirmations(head, height int64) int64 {
	if head <= 0 || height <= 0 || height > head {
		return 0
	}

	return head - height
}
