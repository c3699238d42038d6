package postgres

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

// HistoryStore implements storage.HistoryStore using PostgreSQL.
type HistoryStore struct {
	pool *Pool
}

// NewHistoryStore creates a new HistoryStore.
func NewHistoryStore(pool *Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

// Compile-time interface check.
var _ storage.HistoryStore = (*HistoryStore)(nil)

// InsertWalletSnapshot appends a wallet history row.
func (s *HistoryStore) InsertWalletSnapshot(ctx context.Context, address string, totalValueUSD float64, percentageChange *float64, tokensJSON json.RawMessage, createdAt int64) error {
	query := `
		INSERT INTO wallet_history (wallet_address, total_value_usd, percentage_change, tokens, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query, address, totalValueUSD, percentageChange, tokensJSON, createdAt)
	if err != nil {
		return pkgerrors.Wrap(err, "insert wallet snapshot")
	}
	return nil
}

// LastWalletSnapshotSince returns the most recent entry at or after since,
// or storage.ErrNotFound.
func (s *HistoryStore) LastWalletSnapshotSince(ctx context.Context, address string, since int64) (*types.WalletHistoryEntry, error) {
	query := `
		SELECT id, wallet_address, total_value_usd, percentage_change, tokens, created_at
		FROM wallet_history
		WHERE wallet_address = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var e types.WalletHistoryEntry
	row := s.pool.QueryRow(ctx, query, address, since)
	if err := row.Scan(&e.ID, &e.WalletAddress, &e.TotalValueUSD, &e.PercentageChange, &e.TokensJSON, &e.CreatedAt); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "get last wallet snapshot")
	}
	return &e, nil
}

// ListWalletHistory returns entries at or after since, oldest first.
func (s *HistoryStore) ListWalletHistory(ctx context.Context, address string, since int64) ([]types.WalletHistoryEntry, error) {
	query := `
		SELECT id, wallet_address, total_value_usd, percentage_change, tokens, created_at
		FROM wallet_history
		WHERE wallet_address = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`

	rows, err := s.pool.Query(ctx, query, address, since)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list wallet history")
	}
	defer rows.Close()

	var entries []types.WalletHistoryEntry
	for rows.Next() {
		var e types.WalletHistoryEntry
		if err := rows.Scan(&e.ID, &e.WalletAddress, &e.TotalValueUSD, &e.PercentageChange, &e.TokensJSON, &e.CreatedAt); err != nil {
			return nil, pkgerrors.Wrap(err, "scan wallet history entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate wallet history")
	}

	return entries, nil
}

// InsertNativePrice appends a native price history row.
func (s *HistoryStore) InsertNativePrice(ctx context.Context, priceUSD float64, createdAt int64) error {
	query := `
		INSERT INTO native_price_history (price_usd, created_at)
		VALUES ($1, $2)
	`

	_, err := s.pool.Exec(ctx, query, priceUSD, createdAt)
	if err != nil {
		return pkgerrors.Wrap(err, "insert native price")
	}
	return nil
}

// ListNativePrices returns entries at or after since, oldest first.
func (s *HistoryStore) ListNativePrices(ctx context.Context, since int64) ([]types.NativePriceEntry, error) {
	query := `
		SELECT id, price_usd, created_at
		FROM native_price_history
		WHERE created_at >= $1
		ORDER BY created_at ASC
	`

	rows, err := s.pool.Query(ctx, query, since)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list native prices")
	}
	defer rows.Close()

	var entries []types.NativePriceEntry
	for rows.Next() {
		var e types.NativePriceEntry
		if err := rows.Scan(&e.ID, &e.PriceUSD, &e.CreatedAt); err != nil {
			return nil, pkgerrors.Wrap(err, "scan native price entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate native prices")
	}

	return entries, nil
}
