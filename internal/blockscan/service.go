// Package blockscan walks the chains block range by block range, resuming
// from the height saved by the previous cycle.
//
// A cycle reads the checkpoint, asks the chain for its scan head, fetches the
// transfers of the blocks in between, and saves the last height it covered.
// Without a checkpoint the scan starts at the current head.
package blockscan

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/blockexplorer/internal/explorer"
	"github.com/gabapcia/blockexplorer/internal/pkg/logger"
	"github.com/gabapcia/blockexplorer/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockexplorer/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned by Start on a running service.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultInterval = 30 * time.Second
	defaultMaxRange = 50

	scanResultChannelBufferSize = 10
)

// Service scans its chains periodically.
type Service interface {
	// Start launches one scan loop per chain and returns the channel of
	// successful, non-empty cycles. The channel is closed by Close or when
	// ctx is canceled.
	Start(ctx context.Context) (<-chan ScanResult, error)

	// ScanOnce runs a single cycle for chain.
	ScanOnce(ctx context.Context, chain Chain) ScanResult

	// Close stops the loops and waits for them to return.
	Close()
}

type failureHandler func(ctx context.Context, result ScanResult)

type config struct {
	interval          time.Duration
	maxRange          int64
	retry             retry.Retry
	checkpointStorage CheckpointStorage
	failureHandler    failureHandler
}

// Option configures the service.
type Option func(*config)

type service struct {
	mu        sync.Mutex
	isStarted bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	chains []Chain
	cfg    config
}

var _ Service = (*service)(nil)

// New returns a service scanning chains. Defaults:
//
//   - one cycle every 30 seconds
//   - at most 50 blocks per cycle
//   - no retry: a failed cycle is retried by the next one
//   - no checkpoint storage: every cycle starts at the head
//   - failures are logged at error level
func New(chains []Chain, opts ...Option) *service {
	cfg := config{
		interval:          defaultInterval,
		maxRange:          defaultMaxRange,
		checkpointStorage: nopCheckpoint{},
		failureHandler:    defaultOnFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chains: chains,
		cfg:    cfg,
	}
}

func defaultOnFailure(ctx context.Context, result ScanResult) {
	logger.Error(ctx, "block scan failed",
		"scan.chain", result.Chain,
		"scan.from", result.From,
		"scan.to", result.To,
		"error", result.Err,
	)
}

// fetch reads the transfers of [from, to], through the retry policy if any.
func (s *service) fetch(ctx context.Context, chain Chain, from, to int64) ([]explorer.TransferTx, error) {
	if s.cfg.retry == nil {
		return chain.GetBatchBlockTxs(ctx, from, to)
	}

	var txs []explorer.TransferTx
	err := s.cfg.retry.Execute(ctx, func() error {
		var err error
		txs, err = chain.GetBatchBlockTxs(ctx, from, to)
		return err
	})

	return txs, err
}

// ScanOnce implements Service.
func (s *service) ScanOnce(ctx context.Context, chain Chain) ScanResult {
	result := ScanResult{Chain: chain.Chain()}

	last, err := s.cfg.checkpointStorage.LoadLatestCheckpoint(ctx, result.Chain)
	hasCheckpoint := err == nil
	if err != nil && !errors.Is(err, ErrNoCheckpointFound) {
		result.Err = err
		return result
	}

	head, err := chain.GetScanHead(ctx)
	if err != nil {
		result.Err = err
		return result
	}

	result.From = head
	if hasCheckpoint {
		result.From = last + 1
	}
	result.To = min(head, result.From+s.cfg.maxRange-1)

	if result.Empty() {
		return result
	}

	result.Transfers, result.Err = s.fetch(ctx, chain, result.From, result.To)
	if result.Err != nil {
		return result
	}

	result.Err = s.cfg.checkpointStorage.SaveCheckpoint(ctx, result.Chain, result.To)
	return result
}

// scan runs the cycles of chain until ctx is done.
func (s *service) scan(ctx context.Context, chain Chain, resultsCh chan<- ScanResult) {
	for {
		result := s.ScanOnce(ctx, chain)

		switch {
		case ctx.Err() != nil:
			return
		case result.Err != nil:
			s.cfg.failureHandler(ctx, result)
		case !result.Empty():
			if ok := chflow.Send(ctx, resultsCh, result); !ok {
				return
			}
		}

		if ok := chflow.Sleep(ctx, s.cfg.interval); !ok {
			return
		}
	}
}

// Start implements Service.
func (s *service) Start(ctx context.Context) (<-chan ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	resultsCh := make(chan ScanResult, scanResultChannelBufferSize)
	for _, chain := range s.chains {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.scan(ctx, chain, resultsCh)
		}()
	}

	go func() {
		s.wg.Wait()
		close(resultsCh)
	}()

	s.isStarted = true
	return resultsCh, nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	s.isStarted = false
	s.cancel = nil
}

// WithInterval sets the pause between two cycles of a chain.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithMaxRange bounds the number of blocks a cycle covers.
func WithMaxRange(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxRange = n
		}
	}
}

// WithRetry repeats a failed block fetch within the cycle.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCheckpointStorage sets where cycles resume from.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithFailureHandler replaces the logging of failed cycles.
func WithFailureHandler(f failureHandler) Option {
	return func(c *config) {
		c.failureHandler = f
	}
}
