package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/berkayoztunc/suiport/internal/handlers"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/mocks"
	"github.com/berkayoztunc/suiport/internal/service/price"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

type handlerMocks struct {
	portfolio *mocks.MockPortfolioService
	prices    *mocks.MockPriceService
	history   *mocks.MockHistoryService
	tokens    *mocks.MockTokenService
	jobs      *mocks.MockJobService
}

func newTestRouter(t *testing.T) (*gin.Engine, *handlerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &handlerMocks{
		portfolio: mocks.NewMockPortfolioService(ctrl),
		prices:    mocks.NewMockPriceService(ctrl),
		history:   mocks.NewMockHistoryService(ctrl),
		tokens:    mocks.NewMockTokenService(ctrl),
		jobs:      mocks.NewMockJobService(ctrl),
	}

	common := handlers.NewCommonServices(m.portfolio, m.prices, m.history, m.tokens, m.jobs)

	router := gin.New()
	router.GET("/api/v1/price/:coinType", common.GetTokenPrice)
	router.GET("/api/v1/wallet/:address", common.GetWallet)
	router.GET("/api/v1/wallet/:address/history", common.GetWalletHistory)
	router.GET("/api/v1/sui-price-history", common.GetSuiPriceHistory)
	router.GET("/api/v1/tokens", common.ListTokens)
	router.POST("/api/v1/admin/refresh-sui-price", common.RefreshSuiPrice)

	return router, m
}

func TestGetTokenPrice(t *testing.T) {
	coinType := "0x2::sui::SUI"

	tests := []struct {
		name       string
		setupMocks func(m *handlerMocks)
		wantStatus int
	}{
		{
			name: "resolved price",
			setupMocks: func(m *handlerMocks) {
				m.prices.EXPECT().Resolve(gomock.Any(), coinType).Return(&price.ResolvedPrice{
					Price:  3.45,
					Source: price.SourceCoinGecko,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid coin type",
			setupMocks: func(m *handlerMocks) {
				m.prices.EXPECT().Resolve(gomock.Any(), coinType).Return(nil, price.ErrInvalidCoinType)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unpriceable token",
			setupMocks: func(m *handlerMocks) {
				m.prices.EXPECT().Resolve(gomock.Any(), coinType).Return(nil, price.ErrPriceUnavailable)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/price/"+coinType, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var body handlers.PriceResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, 3.45, body.Price)
				assert.Equal(t, "coingecko", body.Source)
			}
		})
	}
}

func TestRefreshSuiPrice(t *testing.T) {
	router, m := newTestRouter(t)
	m.jobs.EXPECT().SampleNativeNow(gomock.Any())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/refresh-sui-price", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}
