package cron_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/mocks"
	"github.com/berkayoztunc/suiport/internal/service/cron"
	"github.com/berkayoztunc/suiport/internal/service/price"
)

func init() {
	logger.InitLogger("test")
}

func TestSampleNativeNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockPriceResolver(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)
	history := mocks.NewMockHistoryStore(ctrl)

	resolver.EXPECT().Resolve(gomock.Any(), sui.NativeCoinType).Return(&price.ResolvedPrice{
		Price:     3.45,
		Source:    price.SourceCoinGecko,
		FetchedAt: 1700000000000,
	}, nil)
	history.EXPECT().InsertNativePrice(gomock.Any(), 3.45, int64(1700000000000)).Return(nil)

	svc := cron.NewService(resolver, tokens, history)
	svc.SampleNativeNow(context.Background())
}

func TestSampleNativeNow_ResolutionFailureSkipsInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockPriceResolver(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)
	history := mocks.NewMockHistoryStore(ctrl)

	resolver.EXPECT().Resolve(gomock.Any(), sui.NativeCoinType).Return(nil, price.ErrPriceUnavailable)

	svc := cron.NewService(resolver, tokens, history)
	svc.SampleNativeNow(context.Background())
}

func TestSweepNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockPriceResolver(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)
	history := mocks.NewMockHistoryStore(ctrl)

	coinA := "0xa::a::A"
	coinB := "0xb::b::B"

	tokens.EXPECT().ListZeroPrice(gomock.Any()).Return([]string{coinA, coinB}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), coinA).Return(&price.ResolvedPrice{Price: 0.5}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), coinB).Return(nil, price.ErrPriceUnavailable)

	svc := cron.NewService(resolver, tokens, history)
	svc.SweepNow(context.Background())
}

func TestSweepNow_EmptyListDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockPriceResolver(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)
	history := mocks.NewMockHistoryStore(ctrl)

	tokens.EXPECT().ListZeroPrice(gomock.Any()).Return(nil, nil)

	svc := cron.NewService(resolver, tokens, history)
	svc.SweepNow(context.Background())
}

func TestSweepNow_ListFailureLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockPriceResolver(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)
	history := mocks.NewMockHistoryStore(ctrl)

	tokens.EXPECT().ListZeroPrice(gomock.Any()).Return(nil, errors.New("db down"))

	svc := cron.NewService(resolver, tokens, history)
	svc.SweepNow(context.Background())
}
