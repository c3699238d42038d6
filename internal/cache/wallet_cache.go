package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/types"
)

// DefaultWalletTTL bounds how long a cached wallet snapshot is served
// before a full re-scan is forced.
const DefaultWalletTTL = 15 * time.Minute

const walletKeyPrefix = "suiport:wallet:"

// ErrCacheMiss indicates the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// WalletCache stores serialized wallet snapshots in Redis with a TTL. It
// is optional: a nil *WalletCache is safe to call and always misses.
type WalletCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWalletCache creates a WalletCache backed by the given Redis client.
// A ttl of 0 falls back to DefaultWalletTTL.
func NewWalletCache(client *redis.Client, ttl time.Duration) *WalletCache {
	if ttl <= 0 {
		ttl = DefaultWalletTTL
	}
	return &WalletCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot for an address, or ErrCacheMiss.
func (c *WalletCache) Get(ctx context.Context, address string) (*types.Wallet, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, walletKeyPrefix+address).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, pkgerrors.Wrap(err, "get cached wallet")
	}

	var wallet types.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, pkgerrors.Wrap(err, "decode cached wallet")
	}
	return &wallet, nil
}

// Set stores the snapshot under the address key. Failures are logged and
// swallowed so caching never breaks the request path.
func (c *WalletCache) Set(ctx context.Context, wallet *types.Wallet) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(wallet)
	if err != nil {
		logger.Error("failed to encode wallet for cache: " + err.Error())
		return
	}
	if err := c.client.Set(ctx, walletKeyPrefix+wallet.Address, data, c.ttl).Err(); err != nil {
		logger.Error("failed to cache wallet: " + err.Error())
	}
}

// Invalidate drops the cached snapshot for an address.
func (c *WalletCache) Invalidate(ctx context.Context, address string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, walletKeyPrefix+address).Err(); err != nil {
		logger.Error("failed to invalidate cached wallet: " + err.Error())
	}
}
