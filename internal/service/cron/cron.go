package cron

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/storage"
)

const (
	// NativePriceInterval is how often the native asset price is sampled
	// into its history series.
	NativePriceInterval = 5 * time.Minute

	// ZeroPriceSweepInterval is how often unpriced tokens are retried.
	ZeroPriceSweepInterval = 30 * time.Minute
)

// Resolver resolves a coin type to a USD price.
type Resolver interface {
	Resolve(ctx context.Context, coinType string) (*price.ResolvedPrice, error)
}

// Service runs the background jobs: periodic native price sampling and the
// zero-price sweep that retries tokens no source could price yet.
type Service struct {
	resolver Resolver
	tokens   storage.TokenStore
	history  storage.HistoryStore

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates the background job runner.
func NewService(resolver Resolver, tokens storage.TokenStore, history storage.HistoryStore) *Service {
	return &Service{
		resolver: resolver,
		tokens:   tokens,
		history:  history,
	}
}

// Start launches the job loops. Each job also runs once immediately so a
// fresh deployment has data before the first tick.
func (s *Service) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(2)
	go s.loop(ctx, NativePriceInterval, s.sampleNativePrice)
	go s.loop(ctx, ZeroPriceSweepInterval, s.sweepZeroPrices)

	logger.Info("background jobs started",
		zap.Duration("native_price_interval", NativePriceInterval),
		zap.Duration("zero_price_sweep_interval", ZeroPriceSweepInterval))
}

// Stop cancels the job loops and waits for them to drain.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	logger.Info("background jobs stopped")
}

func (s *Service) loop(ctx context.Context, interval time.Duration, job func(context.Context)) {
	defer s.wg.Done()

	job(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job(ctx)
		}
	}
}

// sampleNativePrice resolves the native asset and appends the result to its
// price history.
func (s *Service) sampleNativePrice(ctx context.Context) {
	resolved, err := s.resolver.Resolve(ctx, sui.NativeCoinType)
	if err != nil {
		logger.Error("native price sample failed", zap.Error(err))
		return
	}

	if err := s.history.InsertNativePrice(ctx, resolved.Price, resolved.FetchedAt); err != nil {
		logger.Error("failed to append native price history", zap.Error(err))
		return
	}

	logger.Debug("sampled native price",
		zap.Float64("price", resolved.Price),
		zap.String("source", string(resolved.Source)))
}

// sweepZeroPrices retries every token stored with a zero price. Tokens that
// resolve get their record updated by the cascade's write-back; the rest
// stay zero until the next sweep.
func (s *Service) sweepZeroPrices(ctx context.Context) {
	coinTypes, err := s.tokens.ListZeroPrice(ctx)
	if err != nil {
		logger.Error("failed to list unpriced tokens", zap.Error(err))
		return
	}
	if len(coinTypes) == 0 {
		return
	}

	logger.Info("sweeping unpriced tokens", zap.Int("count", len(coinTypes)))

	resolvedCount := 0
	for _, coinType := range coinTypes {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.resolver.Resolve(ctx, coinType); err == nil {
			resolvedCount++
		}
	}

	logger.Info("zero price sweep finished",
		zap.Int("total", len(coinTypes)),
		zap.Int("resolved", resolvedCount))
}

// SweepNow runs the zero-price sweep once, outside the schedule. Exposed
// for the manual refresh mutation.
func (s *Service) SweepNow(ctx context.Context) {
	s.sweepZeroPrices(ctx)
}

// SampleNativeNow samples the native price once, outside the schedule.
func (s *Service) SampleNativeNow(ctx context.Context) {
	s.sampleNativePrice(ctx)
}
