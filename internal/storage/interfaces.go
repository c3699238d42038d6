package storage

import (
	"context"
	"encoding/json"

	"github.com/berkayoztunc/suiport/internal/types"
)

// TokenStore persists cached token prices keyed by coin type.
type TokenStore interface {
	// Get returns the record for a coin type, or ErrNotFound.
	Get(ctx context.Context, coinType string) (*types.Token, error)

	// Upsert inserts or replaces the record for token.CoinType.
	Upsert(ctx context.Context, token *types.Token) error

	// UpdatePrice updates only price and last_update for an existing record.
	UpdatePrice(ctx context.Context, coinType string, priceUSD float64, lastUpdate int64) error

	// List returns records ordered by coin type.
	List(ctx context.Context, limit, offset int32) ([]types.Token, error)

	// ListZeroPrice returns the coin types of all records whose price is
	// exactly 0, i.e. tokens that could not be priced yet.
	ListZeroPrice(ctx context.Context) ([]string, error)
}

// WalletStore persists wallet snapshots and their per-token rows.
type WalletStore interface {
	// Get returns the stored snapshot for an address, or ErrNotFound.
	Get(ctx context.Context, address string) (*types.Wallet, error)

	// Save upserts the wallet row and replaces its token rows.
	Save(ctx context.Context, wallet *types.Wallet) error
}

// HistoryStore persists time series: wallet value history and native asset
// price history.
type HistoryStore interface {
	// InsertWalletSnapshot appends a wallet history row.
	InsertWalletSnapshot(ctx context.Context, address string, totalValueUSD float64, percentageChange *float64, tokensJSON json.RawMessage, createdAt int64) error

	// LastWalletSnapshotSince returns the most recent history entry at or
	// after the given epoch-ms timestamp, or ErrNotFound.
	LastWalletSnapshotSince(ctx context.Context, address string, since int64) (*types.WalletHistoryEntry, error)

	// ListWalletHistory returns entries at or after since, oldest first.
	ListWalletHistory(ctx context.Context, address string, since int64) ([]types.WalletHistoryEntry, error)

	// InsertNativePrice appends a native price history row.
	InsertNativePrice(ctx context.Context, priceUSD float64, createdAt int64) error

	// ListNativePrices returns entries at or after since, oldest first.
	ListNativePrices(ctx context.Context, since int64) ([]types.NativePriceEntry, error)
}
