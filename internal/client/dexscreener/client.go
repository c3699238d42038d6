package dexscreener

import (
	"context"
	"fmt"
	"time"

	httpClient "github.com/berkayoztunc/suiport/internal/client/http"
)

const (
	defaultBaseURL = "https://api.dexscreener.com"
	defaultTimeout = 10 * time.Second
)

// Token identifies one side of a trading pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Liquidity is the USD value locked in a pair.
type Liquidity struct {
	USD float64 `json:"usd"`
}

// Pair is a single trading pair returned by the search endpoint. PriceUsd
// arrives as a string and is parsed by the caller.
type Pair struct {
	ChainID    string    `json:"chainId"`
	DexID      string    `json:"dexId"`
	PairAddr   string    `json:"pairAddress"`
	BaseToken  Token     `json:"baseToken"`
	QuoteToken Token     `json:"quoteToken"`
	PriceUSD   string    `json:"priceUsd"`
	Liquidity  Liquidity `json:"liquidity"`
}

// SearchResponse is the body of /latest/dex/search.
type SearchResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Client manages communication with the DexScreener public market-data
// aggregator, the last stage of the price cascade.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// NewClient creates a new DexScreener API client.
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

// SearchPairs returns all trading pairs matching a token address. An empty
// pair list is not an error; the caller decides what an empty result means.
func (c *Client) SearchPairs(ctx context.Context, tokenAddress string) ([]Pair, error) {
	resp, err := c.httpClient.Get(ctx, "/latest/dex/search",
		httpClient.WithQueryParam("q", tokenAddress),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search DexScreener pairs: %w", err)
	}

	var result SearchResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to decode DexScreener response: %w", err)
	}

	return result.Pairs, nil
}
