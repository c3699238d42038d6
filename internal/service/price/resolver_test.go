package price_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/berkayoztunc/suiport/internal/client/dexscreener"
	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/mocks"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

type resolverMocks struct {
	store  *mocks.MockTokenStore
	sdk    *mocks.MockSDKPriceSource
	index  *mocks.MockReferenceIndex
	market *mocks.MockMarketAggregator
	pools  *mocks.MockPoolReader
}

func newResolver(t *testing.T, cfg price.ResolverConfig) (*price.Resolver, *resolverMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &resolverMocks{
		store:  mocks.NewMockTokenStore(ctrl),
		sdk:    mocks.NewMockSDKPriceSource(ctrl),
		index:  mocks.NewMockReferenceIndex(ctrl),
		market: mocks.NewMockMarketAggregator(ctrl),
		pools:  mocks.NewMockPoolReader(ctrl),
	}

	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = 1
	}
	if cfg.RetryBaseDelay == 0 {
		cfg.RetryBaseDelay = time.Millisecond
	}

	cache := price.NewCache(m.store)
	return price.NewResolver(cache, m.sdk, m.index, m.market, m.pools, cfg), m
}

func cacheMiss(m *resolverMocks, coinType string) {
	m.store.EXPECT().Get(gomock.Any(), coinType).Return(nil, storage.ErrNotFound)
}

func TestResolve_InvalidCoinType(t *testing.T) {
	resolver, _ := newResolver(t, price.ResolverConfig{})

	for _, coinType := range []string{"", "garbage", "0x2::sui", "sui::sui::SUI", "0x2::::SUI"} {
		_, err := resolver.Resolve(context.Background(), coinType)
		assert.ErrorIs(t, err, price.ErrInvalidCoinType, coinType)
	}
}

func TestResolve_FreshCacheShortCircuits(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	m.store.EXPECT().Get(gomock.Any(), testCoinType).Return(&types.Token{
		CoinType:   testCoinType,
		PriceUSD:   4.50,
		LastUpdate: time.Now().UnixMilli(),
	}, nil)

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 4.50, resolved.Price)
	assert.Equal(t, price.SourceCache, resolved.Source)
}

func TestResolve_NativeUsesReferenceIndex(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, sui.NativeCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), sui.NativeCoinType).Return(3.40, nil)
	m.index.EXPECT().GetSimplePrice(gomock.Any(), "sui").Return(3.45, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), sui.NativeCoinType, 3.45, gomock.Any()).Return(nil)

	resolved, err := resolver.Resolve(context.Background(), sui.NativeCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 3.45, resolved.Price)
	assert.Equal(t, price.SourceCoinGecko, resolved.Source)
}

func TestResolve_NativeIndexMissIsFinal(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	// Once the carve-out is taken the index result is final: no SDK
	// fallback, no market stages.
	cacheMiss(m, sui.NativeCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), sui.NativeCoinType).Return(3.40, nil)
	m.index.EXPECT().GetSimplePrice(gomock.Any(), "sui").Return(0.0, errors.New("rate limited"))

	_, err := resolver.Resolve(context.Background(), sui.NativeCoinType)
	assert.ErrorIs(t, err, price.ErrPriceUnavailable)
}

func TestResolve_SDKPriceForUnlistedToken(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.12, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 0.12, gomock.Any()).Return(nil)

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 0.12, resolved.Price)
	assert.Equal(t, price.SourceSDK, resolved.Source)
}

func TestResolve_ZeroSDKPriceFallsThroughToMarket(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.0, nil)
	m.market.EXPECT().SearchPairs(gomock.Any(), testCoinType).Return([]dexscreener.Pair{
		{
			ChainID:   "sui",
			BaseToken: dexscreener.Token{Address: testCoinType},
			PriceUSD:  "0.90",
			Liquidity: dexscreener.Liquidity{USD: 100},
		},
		{
			ChainID:   "sui",
			BaseToken: dexscreener.Token{Address: testCoinType},
			PriceUSD:  "0.05",
			Liquidity: dexscreener.Liquidity{USD: 5000},
		},
	}, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 0.05, gomock.Any()).Return(nil)

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 0.05, resolved.Price)
	assert.Equal(t, price.SourceDexScreener, resolved.Source)
}

func TestResolve_MarketStageRanksAllPairs(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	// The deepest pair wins even when the token sits on the quote side or
	// the pair trades on another chain; the search result is ranked as-is.
	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.0, errors.New("down"))
	m.market.EXPECT().SearchPairs(gomock.Any(), testCoinType).Return([]dexscreener.Pair{
		{
			ChainID:   "sui",
			BaseToken: dexscreener.Token{Address: testCoinType},
			PriceUSD:  "0.90",
			Liquidity: dexscreener.Liquidity{USD: 100},
		},
		{
			ChainID:    "sui",
			QuoteToken: dexscreener.Token{Address: testCoinType},
			PriceUSD:   "2.00",
			Liquidity:  dexscreener.Liquidity{USD: 5000},
		},
	}, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 2.00, gomock.Any()).Return(nil)

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 2.00, resolved.Price)
	assert.Equal(t, price.SourceDexScreener, resolved.Source)
}

func TestResolve_NaNSDKPriceIsRejected(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(math.NaN(), nil)
	m.market.EXPECT().SearchPairs(gomock.Any(), testCoinType).Return(nil, nil)

	_, err := resolver.Resolve(context.Background(), testCoinType)
	assert.ErrorIs(t, err, price.ErrPriceUnavailable)
}

func TestResolve_AllSourcesExhausted(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.0, errors.New("down"))
	m.market.EXPECT().SearchPairs(gomock.Any(), testCoinType).Return(nil, errors.New("down"))

	_, err := resolver.Resolve(context.Background(), testCoinType)
	assert.ErrorIs(t, err, price.ErrPriceUnavailable)
}

func TestResolve_ReserveStageDisabledByDefault(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.0, errors.New("down"))
	// pools has no expectations: the stage must not run
	m.market.EXPECT().SearchPairs(gomock.Any(), testCoinType).Return(nil, nil)

	_, err := resolver.Resolve(context.Background(), testCoinType)
	assert.ErrorIs(t, err, price.ErrPriceUnavailable)
}

func TestResolve_ReserveStageWhenEnabled(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{
		DexReservePricingEnabled: true,
		CetusPoolID:              "0xpool",
	})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.0, errors.New("down"))
	m.pools.EXPECT().GetObjectFields(gomock.Any(), "0xpool").Return(map[string]json.RawMessage{
		"coin_a_reserve": json.RawMessage(`"1000000000000"`),
		"coin_b_reserve": json.RawMessage(`"3500000000"`),
	}, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 3.5, gomock.Any()).Return(nil)

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.InDelta(t, 3.5, resolved.Price, 1e-9)
	assert.Equal(t, price.SourceDexReserve, resolved.Source)
}

func TestResolve_RetriesSDKBeforeGivingUp(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{RetryAttempts: 3, RetryBaseDelay: time.Millisecond})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.0, errors.New("transient")).Times(2)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(1.25, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 1.25, gomock.Any()).Return(nil)

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 1.25, resolved.Price)
	assert.Equal(t, price.SourceSDK, resolved.Source)
}

func TestResolve_WriteBackFailureDoesNotFailResolution(t *testing.T) {
	resolver, m := newResolver(t, price.ResolverConfig{})

	cacheMiss(m, testCoinType)
	m.sdk.EXPECT().GetTokenPrice(gomock.Any(), testCoinType).Return(0.12, nil)
	m.store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 0.12, gomock.Any()).Return(errors.New("db down"))

	resolved, err := resolver.Resolve(context.Background(), testCoinType)
	assert.NoError(t, err)
	assert.Equal(t, 0.12, resolved.Price)
}
