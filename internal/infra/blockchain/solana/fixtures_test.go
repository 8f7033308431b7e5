package solana

import (
	"fmt"
)

const (
	addrA = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	addrB = "Vote111111111111111111111111111111111111111"
	addrC = "11111111111111111111111111111111"
)

func transferIx(source, destination string, lamports uint64) string {
	return fmt.Sprintf(`{
		"program": "system",
		"programId": "11111111111111111111111111111111",
		"parsed": {"type": "transfer", "info": {"source": %q, "destination": %q, "lamports": %d}}
	}`, source, destination, lamports)
}

func memoIx(memo string) string {
	return fmt.Sprintf(`{"program": "spl-memo", "programId": "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr", "parsed": %q}`, memo)
}

// txJSON renders a transaction as embedded in a block, or as returned by
// getTransaction when slot is positive.
func txJSON(signature string, slot int64, err string, instructions ...string) string {
	header := ""
	if slot > 0 {
		header = fmt.Sprintf(`"slot": %d, "blockTime": 1714557600,`, slot)
	}

	ixs := ""
	for i, ix := range instructions {
		if i > 0 {
			ixs += ","
		}
		ixs += ix
	}

	return fmt.Sprintf(`{
		%s
		"meta": {"err": %s, "fee": 5000},
		"transaction": {"signatures": [%q], "message": {"instructions": [%s]}}
	}`, header, err, signature, ixs)
}
