// Package registry assembles the explorers of every configured chain from the
// provider table and the process settings.
package registry

import (
	"cmp"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/cardano"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/polkadot"
	"github.com/gabapcia/blockexplorer/internal/infra/blockchain/solana"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/graphql"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"

	etherscan "github.com/gabapcia/blockexplorer/internal/infra/blockchain/blockscan"
)

var (
	// ErrUnknownChain is returned by Explorer for a chain missing from the table.
	ErrUnknownChain = errors.New("unknown chain")

	// ErrMissingURL is returned for a provider kind without a default endpoint
	// and no configured URL.
	ErrMissingURL = errors.New("provider url is required")

	// ErrUnsupportedOperation is returned when a provider is listed under an
	// operation category it does not implement.
	ErrUnsupportedOperation = errors.New("provider does not support operation")
)

// reliableStatusCodes are the answers the opt-in same-provider retry repeats.
var reliableStatusCodes = []int{
	nethttp.StatusInternalServerError,
	nethttp.StatusBadGateway,
	nethttp.StatusServiceUnavailable,
	nethttp.StatusGatewayTimeout,
}

// Registry holds one Explorer per configured chain.
type Registry struct {
	explorers map[string]*explorer.Explorer
}

// Build creates the transports, providers and explorers described by table.
// API keys and URL overrides are taken from cfg, keyed by provider name.
func Build(ctx context.Context, cfg Config, table Table, opts ...explorer.Option) (*Registry, error) {
	r := &Registry{explorers: make(map[string]*explorer.Explorer, len(table.Chains))}

	for chain, spec := range table.Chains {
		exp, err := buildChain(ctx, cfg, chain, spec, opts)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", chain, err)
		}
		r.explorers[chain] = exp
	}

	return r, nil
}

// Explorer returns the Explorer of chain.
func (r *Registry) Explorer(chain string) (*explorer.Explorer, error) {
	exp, ok := r.explorers[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}

	return exp, nil
}

// Chains returns the configured chain names, sorted.
func (r *Registry) Chains() []string {
	chains := make([]string, 0, len(r.explorers))
	for chain := range r.explorers {
		chains = append(chains, chain)
	}
	slices.Sort(chains)

	return chains
}

// Explorers returns every configured explorer, sorted by chain name.
func (r *Registry) Explorers() []*explorer.Explorer {
	explorers := make([]*explorer.Explorer, 0, len(r.explorers))
	for _, chain := range r.Chains() {
		explorers = append(explorers, r.explorers[chain])
	}

	return explorers
}

func buildChain(ctx context.Context, cfg Config, chain string, spec ChainSpec, opts []explorer.Option) (*explorer.Explorer, error) {
	transports := make([]*http.Client, len(spec.Providers))
	for i, p := range spec.Providers {
		t, err := newTransport(cfg, p)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name, err)
		}
		transports[i] = t
	}

	tokens, err := newTokenRegistry(spec, transports)
	if err != nil {
		return nil, err
	}

	var providers explorer.Providers
	for i, p := range spec.Providers {
		provider := newProvider(p, spec, transports[i], tokens)
		if err := assign(provider, p.Operations, &providers); err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name, err)
		}
	}

	chainOpts := []explorer.Option{
		explorer.WithFailoverOnMalformed(spec.FailoverOnMalformed),
		explorer.WithInvalidFromAddresses(spec.InvalidFromAddresses...),
	}
	if spec.FeeDeduction {
		chainOpts = append(chainOpts, explorer.WithFeeDeduction())
	}

	logger.Debug(ctx, "explorer assembled",
		"chain", chain,
		"providers", len(spec.Providers),
		"tokens", tokens.Len(),
	)

	return explorer.New(chain, providers, append(chainOpts, opts...)...), nil
}

// defaults returns the endpoint table, default URL and request spacing of kind.
func defaults(kind string) (http.Endpoints, string, time.Duration) {
	switch kind {
	case KindBitquery:
		return cardano.Endpoints, cardano.DefaultURL, cardano.RateLimit
	case KindSolanaRPC:
		return solana.Endpoints, solana.DefaultURL, solana.RateLimit
	case KindPolaris:
		return polkadot.Endpoints, polkadot.DefaultURL, polkadot.RateLimit
	case KindEtherscan:
		return etherscan.Endpoints, etherscan.DefaultURL, etherscan.RateLimit
	default:
		return ethereum.Endpoints, "", ethereum.RateLimit
	}
}

func newTransport(cfg Config, spec ProviderSpec) (*http.Client, error) {
	endpoints, baseURL, rateLimit := defaults(spec.Kind)
	if u := cfg.URLs[spec.Name]; u != "" {
		baseURL = u
	} else if spec.URL != "" {
		baseURL = spec.URL
	}
	if baseURL == "" {
		return nil, ErrMissingURL
	}

	opts := []http.Option{
		http.WithName(spec.Name),
		http.WithRateLimit(cmp.Or(spec.RateLimit, rateLimit)),
	}

	if key := cfg.APIKeys[spec.Name]; key != "" {
		opts = append(opts, http.WithAPIKey(key))
		if spec.APIKeyHeader != "" {
			opts = append(opts, http.WithHeader(spec.APIKeyHeader, key))
		}
	}
	if spec.Timeout > 0 {
		opts = append(opts, http.WithTimeout(spec.Timeout))
	}
	if spec.Backoff > 0 {
		opts = append(opts, http.WithBackoffTime(spec.Backoff))
	}
	if spec.Reliability > 1 {
		opts = append(opts, http.WithReliability(spec.Reliability, reliableStatusCodes...))
	}
	if spec.Proxy != "" {
		proxy, err := url.Parse(spec.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy: %w", err)
		}
		opts = append(opts, http.WithProxy(proxy))
	}
	if spec.TLSCert != "" {
		cert, err := tls.LoadX509KeyPair(spec.TLSCert, spec.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("loading client certificate: %w", err)
		}
		opts = append(opts, http.WithTLSClientCertificate(cert))
	}

	return http.NewClient(baseURL, endpoints, opts...), nil
}

// newTokenRegistry returns the token registry of an EVM chain. With
// ResolveTokens set, unknown contracts are read from the first evm-rpc node.
func newTokenRegistry(spec ChainSpec, transports []*http.Client) (*explorer.TokenRegistry, error) {
	var resolver explorer.TokenResolver

	if spec.ResolveTokens {
		for i, p := range spec.Providers {
			if p.Kind != KindEVMRPC {
				continue
			}

			r, err := ethereum.NewTokenResolver(jsonrpc.NewClient(transports[i]))
			if err != nil {
				return nil, err
			}
			resolver = r
			break
		}
	}

	return explorer.NewTokenRegistry(resolver, spec.Tokens...), nil
}

func newProvider(spec ProviderSpec, chain ChainSpec, conn *http.Client, tokens *explorer.TokenRegistry) explorer.Provider {
	switch spec.Kind {
	case KindBitquery:
		return cardano.New(graphql.NewClient(conn),
			cardano.WithPageSize(spec.PageSize),
			cardano.WithLookback(spec.Lookback),
		)
	case KindSolanaRPC:
		return solana.New(jsonrpc.NewClient(conn),
			solana.WithSignaturesLimit(spec.PageSize),
		)
	case KindPolaris:
		return polkadot.New(graphql.NewClient(conn),
			polkadot.WithPageSize(spec.PageSize),
			polkadot.WithLookback(spec.Lookback),
		)
	case KindEtherscan:
		opts := []etherscan.Option{
			etherscan.WithName(spec.Name),
			etherscan.WithPageSize(spec.PageSize),
			etherscan.WithTokens(tokens),
		}
		if chain.Symbol != "" {
			opts = append(opts, etherscan.WithSymbol(chain.Symbol))
		}
		return etherscan.New(conn, opts...)
	default:
		opts := []ethereum.Option{
			ethereum.WithName(spec.Name),
			ethereum.WithTokens(tokens),
		}
		if chain.Symbol != "" {
			opts = append(opts, ethereum.WithSymbol(chain.Symbol))
		}
		if spec.BlockReceipts != nil {
			opts = append(opts, ethereum.WithBlockReceipts(*spec.BlockReceipts))
		}
		return ethereum.New(jsonrpc.NewClient(conn), opts...)
	}
}

// assign lists p under the requested operation categories, or under every
// category it implements when operations is empty.
func assign(p explorer.Provider, operations []string, dst *explorer.Providers) error {
	all := len(operations) == 0
	want := func(op string) bool { return all || slices.Contains(operations, op) }

	categories := []struct {
		op  string
		add func() bool
	}{
		{OpBalance, func() bool {
			bp, ok := p.(explorer.BalanceProvider)
			if ok {
				dst.Balance = append(dst.Balance, bp)
			}
			return ok
		}},
		{OpTxDetails, func() bool {
			tp, ok := p.(explorer.TxDetailsProvider)
			if ok {
				dst.TxDetails = append(dst.TxDetails, tp)
			}
			return ok
		}},
		{OpAddressTxs, func() bool {
			ap, ok := p.(explorer.AddressTxsProvider)
			if ok {
				dst.AddressTxs = append(dst.AddressTxs, ap)
			}
			return ok
		}},
		{OpBlockTxs, func() bool {
			bp, ok := p.(explorer.BlockTxsProvider)
			if ok {
				dst.BlockTxs = append(dst.BlockTxs, bp)
			}
			return ok
		}},
		{OpBlockHead, func() bool {
			hp, ok := p.(explorer.BlockHeadProvider)
			if ok {
				dst.BlockHead = append(dst.BlockHead, hp)
			}
			return ok
		}},
	}

	for _, c := range categories {
		if !want(c.op) {
			continue
		}
		if !c.add() && !all {
			return fmt.Errorf("%w: %s", ErrUnsupportedOperation, c.op)
		}
	}

	return nil
}
