package portfolio_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/mocks"
	"github.com/berkayoztunc/suiport/internal/service/portfolio"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

func init() {
	logger.InitLogger("test")
}

const (
	testAddress  = "0xa0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1"
	suiCoinType  = "0x2::sui::SUI"
	memeCoinType = "0xdead::meme::MEME"
)

type portfolioMocks struct {
	chain    *mocks.MockCoinLister
	resolver *mocks.MockPriceResolver
	tokens   *mocks.MockTokenStore
	wallets  *mocks.MockWalletStore
	history  *mocks.MockHistoryStore
}

func newService(t *testing.T) (*portfolio.Service, *portfolioMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &portfolioMocks{
		chain:    mocks.NewMockCoinLister(ctrl),
		resolver: mocks.NewMockPriceResolver(ctrl),
		tokens:   mocks.NewMockTokenStore(ctrl),
		wallets:  mocks.NewMockWalletStore(ctrl),
		history:  mocks.NewMockHistoryStore(ctrl),
	}

	svc := portfolio.NewService(m.chain, m.resolver, price.NewCache(m.tokens), m.tokens, m.wallets, m.history, nil, portfolio.Config{
		Concurrency: 2,
	})
	return svc, m
}

func suiMetadataToken() *types.Token {
	return &types.Token{
		CoinType: suiCoinType,
		Metadata: []byte(`{"decimals":9,"name":"Sui","symbol":"SUI","description":""}`),
	}
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, portfolio.ValidateAddress(testAddress))
	assert.NoError(t, portfolio.ValidateAddress("0x2"))

	for _, addr := range []string{"", "abc", "0x", "0xzz", "0x" + testAddress} {
		assert.ErrorIs(t, portfolio.ValidateAddress(addr), portfolio.ErrInvalidAddress, addr)
	}
}

func TestScan_InvalidAddress(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Scan(context.Background(), "not-an-address", false)
	assert.ErrorIs(t, err, portfolio.ErrInvalidAddress)
}

func TestScan_MergesCoinObjectsPerType(t *testing.T) {
	svc, m := newService(t)

	// Two SUI coin objects must merge into one holding of 3 SUI.
	m.chain.EXPECT().GetAllCoins(gomock.Any(), testAddress).Return([]sui.Coin{
		{CoinType: suiCoinType, Balance: "1000000000"},
		{CoinType: suiCoinType, Balance: "2000000000"},
	}, nil)

	m.tokens.EXPECT().Get(gomock.Any(), suiCoinType).Return(suiMetadataToken(), nil).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), suiCoinType).Return(&price.ResolvedPrice{
		Price:  3.50,
		Source: price.SourceSDK,
	}, nil)

	m.wallets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.history.EXPECT().LastWalletSnapshotSince(gomock.Any(), testAddress, gomock.Any()).Return(nil, storage.ErrNotFound)
	m.history.EXPECT().InsertWalletSnapshot(gomock.Any(), testAddress, gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)

	wallet, err := svc.Scan(context.Background(), testAddress, false)
	require.NoError(t, err)

	require.Len(t, wallet.Tokens, 1)
	assert.Equal(t, "3000000000", wallet.Tokens[0].Balance)
	assert.InDelta(t, 10.50, wallet.Tokens[0].ValueUSD, 1e-9)
	assert.InDelta(t, 10.50, wallet.TotalValueUSD, 1e-9)
}

func TestScan_SortsHoldingsByValueDescending(t *testing.T) {
	svc, m := newService(t)

	m.chain.EXPECT().GetAllCoins(gomock.Any(), testAddress).Return([]sui.Coin{
		{CoinType: memeCoinType, Balance: "1000000000"},
		{CoinType: suiCoinType, Balance: "1000000000"},
	}, nil)

	m.tokens.EXPECT().Get(gomock.Any(), gomock.Any()).Return(suiMetadataToken(), nil).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), suiCoinType).Return(&price.ResolvedPrice{Price: 3.50}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), memeCoinType).Return(&price.ResolvedPrice{Price: 0.01}, nil)

	m.wallets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.history.EXPECT().LastWalletSnapshotSince(gomock.Any(), testAddress, gomock.Any()).Return(nil, storage.ErrNotFound)
	m.history.EXPECT().InsertWalletSnapshot(gomock.Any(), testAddress, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	wallet, err := svc.Scan(context.Background(), testAddress, false)
	require.NoError(t, err)

	require.Len(t, wallet.Tokens, 2)
	assert.Equal(t, suiCoinType, wallet.Tokens[0].CoinType)
	assert.Equal(t, memeCoinType, wallet.Tokens[1].CoinType)
}

func TestScan_UnpricedTokenRecordedAsZero(t *testing.T) {
	svc, m := newService(t)

	m.chain.EXPECT().GetAllCoins(gomock.Any(), testAddress).Return([]sui.Coin{
		{CoinType: memeCoinType, Balance: "5000000000"},
	}, nil)

	m.tokens.EXPECT().Get(gomock.Any(), memeCoinType).Return(suiMetadataToken(), nil).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), memeCoinType).Return(nil, price.ErrPriceUnavailable)

	// The placeholder keeps the token visible to the sweep job.
	m.tokens.EXPECT().UpdatePrice(gomock.Any(), memeCoinType, 0.0, gomock.Any()).Return(nil)

	m.wallets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.history.EXPECT().LastWalletSnapshotSince(gomock.Any(), testAddress, gomock.Any()).Return(nil, storage.ErrNotFound)
	m.history.EXPECT().InsertWalletSnapshot(gomock.Any(), testAddress, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	wallet, err := svc.Scan(context.Background(), testAddress, false)
	require.NoError(t, err)

	require.Len(t, wallet.Tokens, 1)
	assert.Zero(t, wallet.Tokens[0].PriceUSD)
	assert.Zero(t, wallet.Tokens[0].ValueUSD)
	assert.Zero(t, wallet.TotalValueUSD)
}

func TestScan_PercentageChangeAgainstEarlierSnapshot(t *testing.T) {
	svc, m := newService(t)

	m.chain.EXPECT().GetAllCoins(gomock.Any(), testAddress).Return([]sui.Coin{
		{CoinType: suiCoinType, Balance: "1000000000"},
	}, nil)

	m.tokens.EXPECT().Get(gomock.Any(), suiCoinType).Return(suiMetadataToken(), nil).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), suiCoinType).Return(&price.ResolvedPrice{Price: 110.0}, nil)

	m.wallets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.history.EXPECT().LastWalletSnapshotSince(gomock.Any(), testAddress, gomock.Any()).Return(&types.WalletHistoryEntry{
		TotalValueUSD: 100.0,
	}, nil)
	m.history.EXPECT().InsertWalletSnapshot(gomock.Any(), testAddress, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, total float64, pct *float64, _ interface{}, _ int64) error {
			require.NotNil(t, pct)
			assert.InDelta(t, 10.0, *pct, 1e-9)
			assert.InDelta(t, 110.0, total, 1e-9)
			return nil
		})

	_, err := svc.Scan(context.Background(), testAddress, false)
	require.NoError(t, err)
}

func TestScan_MetadataFetchedFromChainWhenNotStored(t *testing.T) {
	svc, m := newService(t)

	m.chain.EXPECT().GetAllCoins(gomock.Any(), testAddress).Return([]sui.Coin{
		{CoinType: memeCoinType, Balance: "1000000"},
	}, nil)

	m.tokens.EXPECT().Get(gomock.Any(), memeCoinType).Return(nil, storage.ErrNotFound).AnyTimes()
	m.chain.EXPECT().GetCoinMetadata(gomock.Any(), memeCoinType).Return(&sui.CoinMetadata{
		Decimals: 6,
		Name:     "Meme",
		Symbol:   "MEME",
	}, nil)
	m.tokens.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	m.resolver.EXPECT().Resolve(gomock.Any(), memeCoinType).Return(&price.ResolvedPrice{Price: 2.0}, nil)

	m.wallets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.history.EXPECT().LastWalletSnapshotSince(gomock.Any(), testAddress, gomock.Any()).Return(nil, storage.ErrNotFound)
	m.history.EXPECT().InsertWalletSnapshot(gomock.Any(), testAddress, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	wallet, err := svc.Scan(context.Background(), testAddress, false)
	require.NoError(t, err)

	require.Len(t, wallet.Tokens, 1)
	require.NotNil(t, wallet.Tokens[0].Metadata)
	assert.Equal(t, int32(6), wallet.Tokens[0].Metadata.Decimals)
	// 1 MEME at 6 decimals priced at $2
	assert.InDelta(t, 2.0, wallet.Tokens[0].ValueUSD, 1e-9)
}

func TestScan_ChainFailurePropagates(t *testing.T) {
	svc, m := newService(t)

	m.chain.EXPECT().GetAllCoins(gomock.Any(), testAddress).Return(nil, errors.New("rpc down"))

	_, err := svc.Scan(context.Background(), testAddress, false)
	assert.Error(t, err)
}

func TestStored(t *testing.T) {
	svc, m := newService(t)

	m.wallets.EXPECT().Get(gomock.Any(), testAddress).Return(&types.Wallet{
		Address:       testAddress,
		TotalValueUSD: 42.0,
	}, nil)

	wallet, err := svc.Stored(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, 42.0, wallet.TotalValueUSD)
}
