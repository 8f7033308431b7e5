package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/validator"

	"gopkg.in/yaml.v3"
)

// Provider kinds, one per upstream API family.
const (
	KindBitquery  = "bitquery"
	KindSolanaRPC = "solana-rpc"
	KindPolaris   = "polaris"
	KindEtherscan = "etherscan"
	KindEVMRPC    = "evm-rpc"
)

// Operation categories a provider can be listed under.
const (
	OpBalance    = "balance"
	OpTxDetails  = "tx_details"
	OpAddressTxs = "address_txs"
	OpBlockTxs   = "block_txs"
	OpBlockHead  = "block_head"
)

//go:embed providers.yaml
var defaultTable []byte

// ProviderSpec is one row of the provider table.
type ProviderSpec struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"oneof=bitquery solana-rpc polaris etherscan evm-rpc"`

	// URL overrides the default endpoint of the kind. Required for evm-rpc.
	URL string `yaml:"url" validate:"omitempty,url"`

	// APIKeyHeader sends the API key in this header instead of, or besides,
	// the {apikey} URL placeholder.
	APIKeyHeader string `yaml:"api_key_header"`

	Proxy       string        `yaml:"proxy" validate:"omitempty,url"`
	Timeout     time.Duration `yaml:"timeout" validate:"omitempty,positive_duration"`
	RateLimit   time.Duration `yaml:"rate_limit" validate:"omitempty,positive_duration"`
	Backoff     time.Duration `yaml:"backoff" validate:"omitempty,positive_duration"`
	Reliability uint          `yaml:"reliability"`

	// TLSCert and TLSKey are PEM files of a client certificate for
	// providers requiring mutual TLS.
	TLSCert string `yaml:"tls_cert" validate:"required_with=TLSKey"`
	TLSKey  string `yaml:"tls_key" validate:"required_with=TLSCert"`

	// PageSize bounds history queries: records per page, or signatures for
	// solana-rpc.
	PageSize int           `yaml:"page_size" validate:"min=0"`
	Lookback time.Duration `yaml:"lookback" validate:"min=0"`

	// BlockReceipts toggles eth_getBlockReceipts on evm-rpc nodes.
	BlockReceipts *bool `yaml:"block_receipts"`

	// Operations restricts the categories the provider serves. Empty means
	// every category it implements.
	Operations []string `yaml:"operations" validate:"dive,oneof=balance tx_details address_txs block_txs block_head"`
}

// ChainSpec lists the providers of a chain in order of preference.
type ChainSpec struct {
	// Symbol is the native coin of EVM chains.
	Symbol string `yaml:"symbol"`

	FeeDeduction         bool             `yaml:"fee_deduction"`
	FailoverOnMalformed  bool             `yaml:"failover_on_malformed"`
	InvalidFromAddresses []string         `yaml:"invalid_from_addresses"`
	Tokens               []explorer.Token `yaml:"tokens" validate:"dive"`

	// ResolveTokens reads unknown ERC20 metadata from the first evm-rpc provider.
	ResolveTokens bool `yaml:"resolve_tokens"`

	Providers []ProviderSpec `yaml:"providers" validate:"min=1,dive"`
}

// Table is the provider table, keyed by chain name.
type Table struct {
	Chains map[string]ChainSpec `yaml:"chains" validate:"min=1,dive"`
}

// DecodeTable reads and validates a YAML provider table.
func DecodeTable(r io.Reader) (Table, error) {
	var table Table

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return Table{}, fmt.Errorf("decoding provider table: %w", err)
	}

	if err := validator.Validate(table); err != nil {
		return Table{}, err
	}

	return table, nil
}

// LoadTable reads the table at path, or the embedded default when path is empty.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DecodeTable(bytes.NewReader(defaultTable))
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	return DecodeTable(f)
}
