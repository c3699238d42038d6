package coingecko

import (
	"context"
	"fmt"
	"time"

	httpClient "github.com/berkayoztunc/suiport/internal/client/http"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	defaultTimeout = 5 * time.Second

	apiKeyHeader = "x-cg-demo-api-key"
)

// SimplePriceResponse maps coin id to a map of fiat symbol to price.
type SimplePriceResponse map[string]map[string]float64

// Client manages communication with the CoinGecko API. The cascade uses it
// as the reference index for coins with a canonical CoinGecko id (the
// native asset, in practice).
type Client struct {
	httpClient *httpClient.HTTPClient
}

// NewClient creates a new CoinGecko API client. The API key is optional;
// without one requests run against the public rate limit.
func NewClient(baseURL, apiKey string, options ...httpClient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	opts := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(defaultTimeout),
	}
	if apiKey != "" {
		opts = append(opts, httpClient.WithDefaultHeader(apiKeyHeader, apiKey))
	}
	opts = append(opts, options...)

	return &Client{
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

// GetSimplePrice fetches the USD price for a CoinGecko coin id (e.g. "sui").
func (c *Client) GetSimplePrice(ctx context.Context, coinID string) (float64, error) {
	resp, err := c.httpClient.Get(ctx, "/simple/price",
		httpClient.WithQueryParam("ids", coinID),
		httpClient.WithQueryParam("vs_currencies", "usd"),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price from CoinGecko: %w", err)
	}

	var prices SimplePriceResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &prices); err != nil {
		return 0, fmt.Errorf("failed to decode CoinGecko response: %w", err)
	}

	quote, exists := prices[coinID]
	if !exists {
		return 0, fmt.Errorf("no data found for coin id %s", coinID)
	}

	usd, exists := quote["usd"]
	if !exists {
		return 0, fmt.Errorf("no usd quote found for coin id %s", coinID)
	}

	return usd, nil
}
