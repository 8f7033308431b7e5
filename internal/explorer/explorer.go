// Package explorer implements the multi-provider blockchain explorer of a chain.
//
// An Explorer holds an ordered provider list per operation category. Each call
// tries the providers in order and returns the first successful answer, even
// an empty one. Transport-level failures (see shouldFailover) move on to the
// next provider; anything else, such as a unit conversion or parser error, is
// returned immediately. Results from two providers are never mixed.
package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/blockexplorer/internal/explorer"

var (
	// ErrNoProviders is returned when no provider is configured for an operation.
	ErrNoProviders = errors.New("no providers configured")

	// ErrProvidersExhausted is returned when every provider of an operation
	// failed. It wraps the error of the last provider.
	ErrProvidersExhausted = errors.New("all providers failed")

	// ErrInvalidRange is returned by GetBatchBlockTxs when from > to.
	ErrInvalidRange = errors.New("invalid block range")
)

// config holds the optional settings of an Explorer.
type config struct {
	failoverOnMalformed bool
	invalidSenders      types.Set[string]
	feeDeduction        bool
	meterProvider       metric.MeterProvider
	tracerProvider      trace.TracerProvider
}

// Option configures an Explorer.
type Option func(*config)

// Explorer is the failover front of one chain.
type Explorer struct {
	chain     string
	providers Providers
	cfg       config

	tracer   trace.Tracer
	requests metric.Int64Counter
	failures metric.Int64Counter
}

// New returns the Explorer of chain. Defaults:
//
//   - malformed responses do not trigger failover
//   - no invalid senders, no fee deduction
//   - global OpenTelemetry meter and tracer providers
func New(chain string, providers Providers, opts ...Option) *Explorer {
	cfg := config{
		invalidSenders: types.NewSet[string](),
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	requests, err := meter.Int64Counter("explorer.provider.requests",
		metric.WithDescription("Provider calls made by the explorer"),
	)
	if err != nil {
		requests = noop.Int64Counter{}
	}

	failures, err := meter.Int64Counter("explorer.provider.failures",
		metric.WithDescription("Provider calls that failed over to the next provider"),
	)
	if err != nil {
		failures = noop.Int64Counter{}
	}

	return &Explorer{
		chain:     chain,
		providers: providers,
		cfg:       cfg,
		tracer:    cfg.tracerProvider.Tracer(instrumentationName),
		requests:  requests,
		failures:  failures,
	}
}

// Chain returns the chain the explorer serves.
func (e *Explorer) Chain() string {
	return e.chain
}

// attempt runs call against providers in order and returns the first success.
func attempt[P Provider, T any](ctx context.Context, e *Explorer, operation string, providers []P, call func(context.Context, P) (T, error)) (T, error) {
	var zero T
	if len(providers) == 0 {
		return zero, fmt.Errorf("%w: %s %s", ErrNoProviders, e.chain, operation)
	}

	var lastErr error
	for _, p := range providers {
		attrs := []attribute.KeyValue{
			attribute.String("chain", e.chain),
			attribute.String("operation", operation),
			attribute.String("provider", p.Name()),
		}

		spanCtx, span := e.tracer.Start(ctx, "explorer."+operation, trace.WithAttributes(attrs...))
		result, err := call(spanCtx, p)
		e.requests.Add(ctx, 1, metric.WithAttributes(attrs...))

		if err == nil {
			span.End()
			return result, nil
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()

		if ctx.Err() != nil || !e.shouldFailover(err) {
			return zero, err
		}

		kind := errorKind(err)
		e.failures.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("kind", kind))...))

		keysAndValues := []any{
			"chain", e.chain,
			"operation", operation,
			"provider", p.Name(),
			"kind", kind,
			"error", err,
		}
		if isOperatorAlert(err) {
			logger.Error(ctx, "provider rejected credentials, failing over", keysAndValues...)
		} else {
			logger.Warn(ctx, "provider failed, failing over", keysAndValues...)
		}

		lastErr = err
	}

	return zero, fmt.Errorf("%w: %s %s: %w", ErrProvidersExhausted, e.chain, operation, lastErr)
}

// GetBalance returns the balance of address.
func (e *Explorer) GetBalance(ctx context.Context, address string) (Balance, error) {
	return attempt(ctx, e, "get_balance", e.providers.Balance, func(ctx context.Context, p BalanceProvider) (Balance, error) {
		return p.GetBalance(ctx, address)
	})
}

// GetBalances returns the balances of addresses, all from the same provider.
// Providers advertising SupportGetBalanceBatch are called in chunks of at most
// GetBalancesMaxAddressNum addresses; the others once per address.
func (e *Explorer) GetBalances(ctx context.Context, addresses []string) ([]Balance, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	return attempt(ctx, e, "get_balances", e.providers.Balance, func(ctx context.Context, p BalanceProvider) ([]Balance, error) {
		return balancesFrom(ctx, p, addresses)
	})
}

// GetTxDetails returns the transfers of the transaction txHash.
func (e *Explorer) GetTxDetails(ctx context.Context, txHash string) ([]TransferTx, error) {
	return attempt(ctx, e, "get_tx_details", e.providers.TxDetails, func(ctx context.Context, p TxDetailsProvider) ([]TransferTx, error) {
		txs, err := p.GetTxDetails(ctx, txHash)
		if err != nil {
			return nil, err
		}
		return e.applyQuirks(txs)
	})
}

// GetTxDetailsBatch returns the transfers of every transaction in txHashes,
// keyed by hash, all from the same provider. Hashes the provider does not know
// map to an empty list.
func (e *Explorer) GetTxDetailsBatch(ctx context.Context, txHashes []string) (map[string][]TransferTx, error) {
	if len(txHashes) == 0 {
		return map[string][]TransferTx{}, nil
	}

	return attempt(ctx, e, "get_tx_details_batch", e.providers.TxDetails, func(ctx context.Context, p TxDetailsProvider) (map[string][]TransferTx, error) {
		details, err := txDetailsFrom(ctx, p, txHashes)
		if err != nil {
			return nil, err
		}

		for hash, txs := range details {
			if details[hash], err = e.applyQuirks(txs); err != nil {
				return nil, err
			}
		}

		return details, nil
	})
}

// GetAddressTxs returns the recent transfers involving address.
func (e *Explorer) GetAddressTxs(ctx context.Context, address string) ([]TransferTx, error) {
	return attempt(ctx, e, "get_address_txs", e.providers.AddressTxs, func(ctx context.Context, p AddressTxsProvider) ([]TransferTx, error) {
		txs, err := p.GetAddressTxs(ctx, address)
		if err != nil {
			return nil, err
		}
		return e.applyQuirks(txs)
	})
}

// GetBlockTxs returns the transfers of the block at height.
func (e *Explorer) GetBlockTxs(ctx context.Context, height int64) ([]TransferTx, error) {
	return attempt(ctx, e, "get_block_txs", e.providers.BlockTxs, func(ctx context.Context, p BlockTxsProvider) ([]TransferTx, error) {
		txs, err := p.GetBlockTxs(ctx, height)
		if err != nil {
			return nil, err
		}
		return e.applyQuirks(txs)
	})
}

// GetBatchBlockTxs returns the transfers of every block in [from, to], all
// from the same provider. The range is split into chunks of at most
// GetBlocksMaxNum heights. Providers advertising SupportBatchGetBlocks are
// called once per chunk; for the others, the heights of a chunk are fetched
// concurrently by at most MaxWorkersForGetBlock workers.
func (e *Explorer) GetBatchBlockTxs(ctx context.Context, from, to int64) ([]TransferTx, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}

	return attempt(ctx, e, "get_batch_block_txs", e.providers.BlockTxs, func(ctx context.Context, p BlockTxsProvider) ([]TransferTx, error) {
		txs, err := blockRangeFrom(ctx, p, from, to)
		if err != nil {
			return nil, err
		}
		return e.applyQuirks(txs)
	})
}

// GetBlockHead returns the chain tip height as reported by the first working
// provider. ErrNoBlockHead is returned as is: it is an answer, not a failure.
func (e *Explorer) GetBlockHead(ctx context.Context) (int64, error) {
	return attempt(ctx, e, "get_block_head", e.providers.BlockHead, func(ctx context.Context, p BlockHeadProvider) (int64, error) {
		return p.GetBlockHead(ctx)
	})
}

// GetScanHead returns the highest block safe to scan: the chain tip minus the
// BlockHeightOffset of the provider that reported it.
func (e *Explorer) GetScanHead(ctx context.Context) (int64, error) {
	return attempt(ctx, e, "get_scan_head", e.providers.BlockHead, func(ctx context.Context, p BlockHeadProvider) (int64, error) {
		head, err := p.GetBlockHead(ctx)
		if err != nil {
			return 0, err
		}
		return max(head-p.Capabilities().BlockHeightOffset, 0), nil
	})
}

// WithFailoverOnMalformed makes responses that are not valid JSON trigger
// failover too. Default: false, a malformed answer is returned as an error.
func WithFailoverOnMalformed(enabled bool) Option {
	return func(c *config) {
		c.failoverOnMalformed = enabled
	}
}

// WithInvalidFromAddresses lists burn or otherwise invalid sender addresses
// whose transfers are reported with a zero value.
func WithInvalidFromAddresses(addresses ...string) Option {
	return func(c *config) {
		c.invalidSenders.Add(addresses...)
	}
}

// WithFeeDeduction subtracts the transaction fee from the value of outgoing
// transfers, for UTXO chains whose providers report gross spent amounts.
func WithFeeDeduction() Option {
	return func(c *config) {
		c.feeDeduction = true
	}
}

// WithMeterProvider sets the provider of the failover counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider sets the provider of the per-attempt spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}
