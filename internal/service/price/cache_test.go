package price_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/mocks"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

func init() {
	logger.InitLogger("test")
}

const testCoinType = "0xabc::coin::COIN"

func TestCache_Fresh(t *testing.T) {
	now := time.Now().UnixMilli()

	tests := []struct {
		name      string
		record    *types.Token
		storeErr  error
		wantPrice float64
		wantOK    bool
	}{
		{
			name:      "fresh record is served",
			record:    &types.Token{CoinType: testCoinType, PriceUSD: 4.5, LastUpdate: now - time.Minute.Milliseconds()},
			wantPrice: 4.5,
			wantOK:    true,
		},
		{
			name:   "stale record is not served",
			record: &types.Token{CoinType: testCoinType, PriceUSD: 4.5, LastUpdate: now - (10 * time.Minute).Milliseconds()},
			wantOK: false,
		},
		{
			name:   "zero price is never served even when fresh",
			record: &types.Token{CoinType: testCoinType, PriceUSD: 0, LastUpdate: now},
			wantOK: false,
		},
		{
			name:     "missing record is a miss",
			storeErr: storage.ErrNotFound,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockTokenStore(ctrl)
			store.EXPECT().Get(gomock.Any(), testCoinType).Return(tt.record, tt.storeErr)

			cache := price.NewCache(store)
			got, ok := cache.Fresh(context.Background(), testCoinType)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPrice, got)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}

func TestCache_Put_UpdatesExistingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 2.5, gomock.Any()).Return(nil)

	cache := price.NewCache(store)
	err := cache.Put(context.Background(), testCoinType, 2.5)
	assert.NoError(t, err)
}

func TestCache_Put_InsertsWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().UpdatePrice(gomock.Any(), testCoinType, 2.5, gomock.Any()).Return(storage.ErrNotFound)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token *types.Token) error {
			assert.Equal(t, testCoinType, token.CoinType)
			assert.Equal(t, 2.5, token.PriceUSD)
			assert.NotZero(t, token.LastUpdate)
			return nil
		})

	cache := price.NewCache(store)
	err := cache.Put(context.Background(), testCoinType, 2.5)
	assert.NoError(t, err)
}

func TestCache_IsRecordStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := price.NewCache(mocks.NewMockTokenStore(ctrl))
	now := time.Now().UnixMilli()

	assert.False(t, cache.IsRecordStale(&types.Token{LastUpdate: now - (30 * time.Minute).Milliseconds()}))
	assert.True(t, cache.IsRecordStale(&types.Token{LastUpdate: now - (2 * time.Hour).Milliseconds()}))
}
