package postgres

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

// TokenStore implements storage.TokenStore using PostgreSQL.
type TokenStore struct {
	pool *Pool
}

// NewTokenStore creates a new TokenStore.
func NewTokenStore(pool *Pool) *TokenStore {
	return &TokenStore{pool: pool}
}

// Compile-time interface check.
var _ storage.TokenStore = (*TokenStore)(nil)

// Get returns the record for a coin type, or storage.ErrNotFound.
func (s *TokenStore) Get(ctx context.Context, coinType string) (*types.Token, error) {
	query := `
		SELECT coin_type, price_usd, last_update, metadata
		FROM tokens
		WHERE coin_type = $1
	`

	var t types.Token
	row := s.pool.QueryRow(ctx, query, coinType)
	if err := row.Scan(&t.CoinType, &t.PriceUSD, &t.LastUpdate, &t.Metadata); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "get token")
	}
	return &t, nil
}

// Upsert inserts or replaces the record keyed by coin_type.
func (s *TokenStore) Upsert(ctx context.Context, token *types.Token) error {
	query := `
		INSERT INTO tokens (coin_type, price_usd, last_update, metadata)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (coin_type) DO UPDATE
		SET price_usd = excluded.price_usd,
		    last_update = excluded.last_update,
		    metadata = COALESCE(excluded.metadata, tokens.metadata)
	`

	_, err := s.pool.Exec(ctx, query, token.CoinType, token.PriceUSD, token.LastUpdate, token.Metadata)
	if err != nil {
		return pkgerrors.Wrap(err, "upsert token")
	}
	return nil
}

// UpdatePrice updates price and last_update for an existing record.
func (s *TokenStore) UpdatePrice(ctx context.Context, coinType string, priceUSD float64, lastUpdate int64) error {
	query := `
		UPDATE tokens
		SET price_usd = $2, last_update = $3
		WHERE coin_type = $1
	`

	tag, err := s.pool.Exec(ctx, query, coinType, priceUSD, lastUpdate)
	if err != nil {
		return pkgerrors.Wrap(err, "update token price")
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// List returns records ordered by coin type.
func (s *TokenStore) List(ctx context.Context, limit, offset int32) ([]types.Token, error) {
	query := `
		SELECT coin_type, price_usd, last_update, metadata
		FROM tokens
		ORDER BY coin_type
		LIMIT $1 OFFSET $2
	`

	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list tokens")
	}
	defer rows.Close()

	var tokens []types.Token
	for rows.Next() {
		var t types.Token
		if err := rows.Scan(&t.CoinType, &t.PriceUSD, &t.LastUpdate, &t.Metadata); err != nil {
			return nil, pkgerrors.Wrap(err, "scan token")
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate tokens")
	}

	return tokens, nil
}

// ListZeroPrice returns coin types whose stored price is exactly 0.
func (s *TokenStore) ListZeroPrice(ctx context.Context) ([]string, error) {
	query := `SELECT coin_type FROM tokens WHERE price_usd = 0`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list zero price tokens")
	}
	defer rows.Close()

	var coinTypes []string
	for rows.Next() {
		var coinType string
		if err := rows.Scan(&coinType); err != nil {
			return nil, pkgerrors.Wrap(err, "scan coin type")
		}
		coinTypes = append(coinTypes, coinType)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate zero price tokens")
	}

	return coinTypes, nil
}
