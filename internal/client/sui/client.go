package sui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	httpClient "github.com/berkayoztunc/suiport/internal/client/http"
	"github.com/berkayoztunc/suiport/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 15 * time.Second

	// coinPageLimit is the page size requested from suix_getAllCoins. The
	// node caps pages at 50 regardless of what is asked for.
	coinPageLimit = 50
)

// Client talks JSON-RPC to a Sui fullnode. Only the three methods the
// service needs are exposed; failures are returned as-is so callers can
// wrap them in the shared retry policy.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// NewClient creates a Sui fullnode client for the given RPC URL.
func NewClient(rpcURL string, options ...httpClient.ClientOption) *Client {
	opts := append([]httpClient.ClientOption{
		httpClient.WithBaseURL(rpcURL),
		httpClient.WithTimeout(defaultTimeout),
	}, options...)

	return &Client{
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

// call performs a single JSON-RPC request and unmarshals the result.
func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	resp, err := c.httpClient.Post(ctx, "/", req)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}

	var envelope rpcResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &envelope); err != nil {
		return fmt.Errorf("rpc %s: decode response: %w", method, err)
	}

	if envelope.Error != nil {
		return fmt.Errorf("rpc %s: node error %d: %s", method, envelope.Error.Code, envelope.Error.Message)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("rpc %s: unmarshal result: %w", method, err)
		}
	}

	return nil
}

// GetAllCoins returns every coin object owned by the address, following the
// node's cursor until the last page.
func (c *Client) GetAllCoins(ctx context.Context, owner string) ([]Coin, error) {
	var coins []Coin
	var cursor *string

	for {
		var page CoinPage
		params := []interface{}{owner, cursor, coinPageLimit}
		if err := c.call(ctx, "suix_getAllCoins", params, &page); err != nil {
			return nil, err
		}

		coins = append(coins, page.Data...)

		logger.Debug("Fetched coin page",
			zap.String("owner", owner),
			zap.Int("count", len(page.Data)),
			zap.Bool("has_next_page", page.HasNextPage))

		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	return coins, nil
}

// GetCoinMetadata returns on-chain metadata for a coin type. The node
// returns null for unregistered types, which surfaces here as an error so
// the caller's retry wrapper treats it like any other miss.
func (c *Client) GetCoinMetadata(ctx context.Context, coinType string) (*CoinMetadata, error) {
	var metadata *CoinMetadata
	if err := c.call(ctx, "suix_getCoinMetadata", []interface{}{coinType}, &metadata); err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, fmt.Errorf("no metadata registered for %s", coinType)
	}
	return metadata, nil
}

// GetObjectFields reads an object with showContent and returns its raw
// Move fields. Used by the DEX reserve pricing stage to read pool reserves.
func (c *Client) GetObjectFields(ctx context.Context, objectID string) (map[string]json.RawMessage, error) {
	var obj objectResponse
	params := []interface{}{objectID, map[string]bool{"showContent": true}}
	if err := c.call(ctx, "sui_getObject", params, &obj); err != nil {
		return nil, err
	}

	if obj.Data == nil || obj.Data.Content == nil {
		return nil, fmt.Errorf("object %s has no content", objectID)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(obj.Data.Content.Fields, &fields); err != nil {
		return nil, fmt.Errorf("object %s: unmarshal fields: %w", objectID, err)
	}

	return fields, nil
}
