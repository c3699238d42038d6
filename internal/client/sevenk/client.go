package sevenk

import (
	"context"
	"fmt"
	"time"

	httpClient "github.com/berkayoztunc/suiport/internal/client/http"
)

const (
	defaultBaseURL = "https://prices.7k.ag"
	defaultTimeout = 10 * time.Second

	// usdcCoinType is the quote coin every price is expressed against.
	usdcCoinType = "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC"
)

// TokenPrice is a single price entry from the 7k aggregator.
type TokenPrice struct {
	Price     float64 `json:"price"`
	LastTrade int64   `json:"lastTrade"`
}

// PriceResponse maps coin type to its latest price entry.
type PriceResponse map[string]TokenPrice

// Client manages communication with the 7k Protocol price API, the primary
// price source in the cascade.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// NewClient creates a new 7k price API client.
func NewClient(baseURL string, options ...httpClient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	opts := append([]httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(defaultTimeout),
	}, options...)

	return &Client{
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

// GetTokenPrice fetches the USD price for a single coin type. A coin the
// aggregator has never traded comes back as an error, not a zero.
func (c *Client) GetTokenPrice(ctx context.Context, coinType string) (float64, error) {
	resp, err := c.httpClient.Get(ctx, "/price",
		httpClient.WithQueryParam("ids", coinType),
		httpClient.WithQueryParam("vsCoin", usdcCoinType),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price from 7k: %w", err)
	}

	var prices PriceResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &prices); err != nil {
		return 0, fmt.Errorf("failed to decode 7k price response: %w", err)
	}

	entry, exists := prices[coinType]
	if !exists {
		return 0, fmt.Errorf("no price data found for %s", coinType)
	}

	return entry.Price, nil
}
