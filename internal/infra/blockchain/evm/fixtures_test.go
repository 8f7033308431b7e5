package evm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gabapcia/blockexplorer/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init("error")
}

const (
	hashA    = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
	addrFrom = "0xa7d9ddbe1f17865597fbd27ec712455208b6b76d"
	addrTo   = "0xf02c1c8e6114b1dbe8937a39260b5b0a374432bb"
	usdt     = "0xdac17f958d2ee523a2206206994597c13d831ec7"
)

// topicOf left-pads an address to a 32-byte topic.
func topicOf(address string) string {
	return "0x" + strings.Repeat("0", 24) + strings.TrimPrefix(address, "0x")
}

// amountData encodes a 32-byte big-endian amount given in hex digits.
func amountData(hexDigits string) string {
	return "0x" + strings.Repeat("0", 64-len(hexDigits)) + hexDigits
}

func mustDecode[T any](t *testing.T, raw string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}
