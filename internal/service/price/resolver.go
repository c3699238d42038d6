package price

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/berkayoztunc/suiport/internal/client/dexscreener"
	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/metrics"
	"github.com/berkayoztunc/suiport/internal/retry"
)

// Source identifies which stage of the cascade produced a price.
type Source string

const (
	SourceCache       Source = "cache"
	SourceSDK         Source = "sdk"
	SourceCoinGecko   Source = "coingecko"
	SourceDexReserve  Source = "dex_reserve"
	SourceDexScreener Source = "dexscreener"
)

var (
	// ErrPriceUnavailable means every stage of the cascade came up empty.
	ErrPriceUnavailable = errors.New("price unavailable from all sources")

	// ErrInvalidCoinType means the coin type is not a well-formed
	// address::module::name identifier.
	ErrInvalidCoinType = errors.New("invalid coin type")
)

// coinGeckoIDs maps coin types to their canonical CoinGecko ids. Only the
// native asset has one; everything else resolves through the market stages.
var coinGeckoIDs = map[string]string{
	sui.NativeCoinType: "sui",
}

// ResolvedPrice is the outcome of one cascade run. FetchedAt is epoch
// milliseconds.
type ResolvedPrice struct {
	Price     float64 `json:"price"`
	Source    Source  `json:"source"`
	FetchedAt int64   `json:"fetchedAt"`
}

// SDKPriceSource is the primary aggregator price feed.
type SDKPriceSource interface {
	GetTokenPrice(ctx context.Context, coinType string) (float64, error)
}

// ReferenceIndex quotes coins that have a canonical listing id.
type ReferenceIndex interface {
	GetSimplePrice(ctx context.Context, coinID string) (float64, error)
}

// MarketAggregator searches DEX trading pairs across venues.
type MarketAggregator interface {
	SearchPairs(ctx context.Context, tokenAddress string) ([]dexscreener.Pair, error)
}

// PoolReader reads on-chain pool objects for the reserve pricing stage.
type PoolReader interface {
	GetObjectFields(ctx context.Context, objectID string) (map[string]json.RawMessage, error)
}

// ResolverConfig carries the cascade tuning knobs.
type ResolverConfig struct {
	RetryAttempts  int
	RetryBaseDelay time.Duration

	// DexReservePricingEnabled turns on the on-chain pool reserve stage.
	// Off by default; the aggregator stages cover the same ground with
	// better data.
	DexReservePricingEnabled bool
	CetusPoolID              string
}

// Resolver runs the multi-source price cascade: cache, SDK aggregator,
// reference index carve-out, optional on-chain reserves, then the market
// aggregator. Every external call runs under the shared retry policy.
type Resolver struct {
	cache  *Cache
	sdk    SDKPriceSource
	index  ReferenceIndex
	market MarketAggregator
	pools  PoolReader
	cfg    ResolverConfig
	now    func() time.Time
}

// NewResolver wires the cascade together. pools may be nil when reserve
// pricing is disabled.
func NewResolver(cache *Cache, sdk SDKPriceSource, index ReferenceIndex, market MarketAggregator, pools PoolReader, cfg ResolverConfig) *Resolver {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	return &Resolver{
		cache:  cache,
		sdk:    sdk,
		index:  index,
		market: market,
		pools:  pools,
		cfg:    cfg,
		now:    time.Now,
	}
}

// validPrice rejects NaN, infinities and non-positive values.
func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
}

// ValidateCoinType checks the address::module::name shape.
func ValidateCoinType(coinType string) error {
	parts := strings.Split(coinType, "::")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ErrInvalidCoinType
	}
	if !strings.HasPrefix(parts[0], "0x") {
		return ErrInvalidCoinType
	}
	return nil
}

// Resolve returns the USD price for a coin type, running the cascade as far
// as needed. A successful resolution from any external stage is written back
// to the cache.
func (r *Resolver) Resolve(ctx context.Context, coinType string) (*ResolvedPrice, error) {
	if err := ValidateCoinType(coinType); err != nil {
		return nil, err
	}

	if cached, ok := r.cache.Fresh(ctx, coinType); ok {
		metrics.PriceResolutions.WithLabelValues(string(SourceCache), "hit").Inc()
		return r.resolved(cached, SourceCache), nil
	}

	sdkPrice, sdkOK := retry.Do(ctx, r.cfg.RetryAttempts, r.cfg.RetryBaseDelay, func(ctx context.Context) (float64, error) {
		return r.sdk.GetTokenPrice(ctx, coinType)
	})
	sdkOK = sdkOK && validPrice(sdkPrice)

	// Coins with a canonical listing id are quoted off the reference index
	// instead: always for the native asset, and as a rescue when the
	// aggregator has no price. Once this branch is taken the index result is
	// final, hit or miss; the remaining stages never run. In practice only
	// the native asset is mapped, so unlisted tokens fall through to the
	// market stages below.
	if coinID, mapped := coinGeckoIDs[coinType]; mapped && (coinType == sui.NativeCoinType || !sdkOK) {
		indexPrice, ok := retry.Do(ctx, r.cfg.RetryAttempts, r.cfg.RetryBaseDelay, func(ctx context.Context) (float64, error) {
			return r.index.GetSimplePrice(ctx, coinID)
		})
		if ok && validPrice(indexPrice) {
			metrics.PriceResolutions.WithLabelValues(string(SourceCoinGecko), "hit").Inc()
			return r.writeBack(ctx, coinType, indexPrice, SourceCoinGecko), nil
		}
		metrics.PriceResolutions.WithLabelValues(string(SourceCoinGecko), "miss").Inc()
		return nil, ErrPriceUnavailable
	}

	if sdkOK {
		metrics.PriceResolutions.WithLabelValues(string(SourceSDK), "hit").Inc()
		return r.writeBack(ctx, coinType, sdkPrice, SourceSDK), nil
	}
	metrics.PriceResolutions.WithLabelValues(string(SourceSDK), "miss").Inc()

	if r.cfg.DexReservePricingEnabled && r.pools != nil {
		if reservePrice, ok := r.priceFromReserves(ctx); ok {
			metrics.PriceResolutions.WithLabelValues(string(SourceDexReserve), "hit").Inc()
			return r.writeBack(ctx, coinType, reservePrice, SourceDexReserve), nil
		}
		metrics.PriceResolutions.WithLabelValues(string(SourceDexReserve), "miss").Inc()
	}

	if marketPrice, ok := r.priceFromMarket(ctx, coinType); ok {
		metrics.PriceResolutions.WithLabelValues(string(SourceDexScreener), "hit").Inc()
		return r.writeBack(ctx, coinType, marketPrice, SourceDexScreener), nil
	}
	metrics.PriceResolutions.WithLabelValues(string(SourceDexScreener), "miss").Inc()

	return nil, ErrPriceUnavailable
}

// priceFromReserves derives the native price from the configured pool's
// reserves. The pool pairs the 9-decimal native coin against 6-decimal USDC.
func (r *Resolver) priceFromReserves(ctx context.Context) (float64, bool) {
	fields, ok := retry.Do(ctx, r.cfg.RetryAttempts, r.cfg.RetryBaseDelay, func(ctx context.Context) (map[string]json.RawMessage, error) {
		return r.pools.GetObjectFields(ctx, r.cfg.CetusPoolID)
	})
	if !ok {
		return 0, false
	}

	reserveA, okA := reserveField(fields, "coin_a_reserve")
	reserveB, okB := reserveField(fields, "coin_b_reserve")
	if !okA || !okB || reserveA == 0 {
		return 0, false
	}

	price := (reserveB / 1e6) / (reserveA / 1e9)
	if !validPrice(price) {
		return 0, false
	}
	return price, true
}

func reserveField(fields map[string]json.RawMessage, name string) (float64, bool) {
	raw, exists := fields[name]
	if !exists {
		return 0, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// priceFromMarket searches the market aggregator and quotes the pair with
// the deepest USD liquidity among everything the search returned.
func (r *Resolver) priceFromMarket(ctx context.Context, coinType string) (float64, bool) {
	pairs, ok := retry.Do(ctx, r.cfg.RetryAttempts, r.cfg.RetryBaseDelay, func(ctx context.Context) ([]dexscreener.Pair, error) {
		return r.market.SearchPairs(ctx, coinType)
	})
	if !ok {
		return 0, false
	}

	var best *dexscreener.Pair
	for i := range pairs {
		pair := &pairs[i]
		if best == nil || pair.Liquidity.USD > best.Liquidity.USD {
			best = pair
		}
	}
	if best == nil {
		return 0, false
	}

	price, err := strconv.ParseFloat(best.PriceUSD, 64)
	if err != nil || !validPrice(price) {
		return 0, false
	}

	logger.Debug("resolved price from market pair",
		zap.String("coin_type", coinType),
		zap.String("pair", best.PairAddr),
		zap.Float64("liquidity_usd", best.Liquidity.USD))

	return price, true
}

func (r *Resolver) resolved(price float64, source Source) *ResolvedPrice {
	return &ResolvedPrice{Price: price, Source: source, FetchedAt: r.now().UnixMilli()}
}

// writeBack persists the resolved price. Cache failures are logged and
// ignored; a storage hiccup must not fail a successful resolution.
func (r *Resolver) writeBack(ctx context.Context, coinType string, price float64, source Source) *ResolvedPrice {
	if err := r.cache.Put(ctx, coinType, price); err != nil {
		logger.Error("failed to write price back to cache",
			zap.String("coin_type", coinType),
			zap.Error(err))
	}
	return r.resolved(price, source)
}
