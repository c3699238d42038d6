package types

import "encoding/json"

// TokenMetadata mirrors the coin metadata registered on chain. It is stored
// alongside the cached price as a JSON blob.
type TokenMetadata struct {
	Decimals    int32   `json:"decimals"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description string  `json:"description"`
	IconURL     *string `json:"iconUrl,omitempty"`
}

// Token is a cached price record keyed by fully qualified coin type.
// LastUpdate is epoch milliseconds. A PriceUSD of exactly 0 means "could
// not be priced"; it is kept so the sweep job can find it, but it is never
// served as a real price.
type Token struct {
	CoinType   string          `json:"coin_type"`
	PriceUSD   float64         `json:"price_usd"`
	LastUpdate int64           `json:"last_update"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
}

// DecodeMetadata unmarshals the stored metadata blob, returning nil when
// none was recorded.
func (t *Token) DecodeMetadata() *TokenMetadata {
	if len(t.Metadata) == 0 {
		return nil
	}
	var m TokenMetadata
	if err := json.Unmarshal(t.Metadata, &m); err != nil {
		return nil
	}
	return &m
}
