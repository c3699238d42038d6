package price

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/berkayoztunc/suiport/internal/metrics"
	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

const (
	// CascadeStaleness is the window inside which a cached price short-circuits
	// the resolution cascade entirely.
	CascadeStaleness = 5 * time.Minute

	// RecordStaleness is the wider window used when deciding whether a stored
	// record is still worth showing at all (token listings, sweeps).
	RecordStaleness = time.Hour
)

// Cache is the persistent price cache backed by the token store. A stored
// price of exactly 0 marks a token that could not be priced; it is recorded
// so the sweep job can retry it later, but Fresh never returns it.
type Cache struct {
	store storage.TokenStore
	now   func() time.Time
}

// NewCache creates a price cache over the given token store.
func NewCache(store storage.TokenStore) *Cache {
	return &Cache{store: store, now: time.Now}
}

// Fresh returns the cached price for a coin type if the record is no older
// than CascadeStaleness and holds a real (non-zero) price. The boolean is
// false on a miss, a stale record, or a zero-price placeholder.
func (c *Cache) Fresh(ctx context.Context, coinType string) (float64, bool) {
	token, err := c.store.Get(ctx, coinType)
	if err != nil {
		metrics.CacheHits.WithLabelValues("miss").Inc()
		return 0, false
	}

	age := c.now().UnixMilli() - token.LastUpdate
	if age > CascadeStaleness.Milliseconds() {
		metrics.CacheHits.WithLabelValues("stale").Inc()
		return 0, false
	}
	if token.PriceUSD == 0 {
		metrics.CacheHits.WithLabelValues("zero").Inc()
		return 0, false
	}

	metrics.CacheHits.WithLabelValues("hit").Inc()
	return token.PriceUSD, true
}

// Record returns the stored record regardless of freshness, or
// storage.ErrNotFound.
func (c *Cache) Record(ctx context.Context, coinType string) (*types.Token, error) {
	return c.store.Get(ctx, coinType)
}

// IsRecordStale reports whether a stored record is older than
// RecordStaleness.
func (c *Cache) IsRecordStale(token *types.Token) bool {
	return c.now().UnixMilli()-token.LastUpdate > RecordStaleness.Milliseconds()
}

// Put writes a resolved price back to the store, preserving any stored
// metadata. Non-finite prices are rejected by the caller before this point.
func (c *Cache) Put(ctx context.Context, coinType string, priceUSD float64) error {
	now := c.now().UnixMilli()

	err := c.store.UpdatePrice(ctx, coinType, priceUSD, now)
	if errors.Is(err, storage.ErrNotFound) {
		return c.store.Upsert(ctx, &types.Token{
			CoinType:   coinType,
			PriceUSD:   priceUSD,
			LastUpdate: now,
		})
	}
	return err
}

// PutWithMetadata writes a price and metadata blob in one upsert.
func (c *Cache) PutWithMetadata(ctx context.Context, coinType string, priceUSD float64, metadata json.RawMessage) error {
	return c.store.Upsert(ctx, &types.Token{
		CoinType:   coinType,
		PriceUSD:   priceUSD,
		LastUpdate: c.now().UnixMilli(),
		Metadata:   metadata,
	})
}
