package interfaces

import (
	"context"

	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/types"
)

// PortfolioService scans and serves wallet snapshots.
type PortfolioService interface {
	// Scan builds a fresh snapshot, or serves the cached one unless refresh
	// is set.
	Scan(ctx context.Context, address string, refresh bool) (*types.Wallet, error)

	// Stored returns the last persisted snapshot without touching the chain.
	Stored(ctx context.Context, address string) (*types.Wallet, error)
}

// PriceService resolves coin types to USD prices.
type PriceService interface {
	Resolve(ctx context.Context, coinType string) (*price.ResolvedPrice, error)
}

// HistoryService serves the stored time series.
type HistoryService interface {
	ListWalletHistory(ctx context.Context, address string, since int64) ([]types.WalletHistoryEntry, error)
	ListNativePrices(ctx context.Context, since int64) ([]types.NativePriceEntry, error)
}

// TokenService lists cached token records.
type TokenService interface {
	List(ctx context.Context, limit, offset int32) ([]types.Token, error)
	Get(ctx context.Context, coinType string) (*types.Token, error)
}

// JobService exposes the background jobs for manual triggering.
type JobService interface {
	SampleNativeNow(ctx context.Context)
	SweepNow(ctx context.Context)
}
