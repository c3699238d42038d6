package postgres

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

// WalletStore implements storage.WalletStore using PostgreSQL.
type WalletStore struct {
	pool *Pool
}

// NewWalletStore creates a new WalletStore.
func NewWalletStore(pool *Pool) *WalletStore {
	return &WalletStore{pool: pool}
}

// Compile-time interface check.
var _ storage.WalletStore = (*WalletStore)(nil)

// Get returns the stored snapshot for an address, or storage.ErrNotFound.
// Token rows are joined against tokens for metadata.
func (s *WalletStore) Get(ctx context.Context, address string) (*types.Wallet, error) {
	walletQuery := `
		SELECT address, total_value_usd, last_update
		FROM wallets
		WHERE address = $1
	`

	var w types.Wallet
	row := s.pool.QueryRow(ctx, walletQuery, address)
	if err := row.Scan(&w.Address, &w.TotalValueUSD, &w.LastUpdate); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "get wallet")
	}

	tokensQuery := `
		SELECT wt.coin_type, wt.balance, wt.price_usd, wt.value_usd, t.metadata
		FROM wallet_tokens wt
		LEFT JOIN tokens t ON t.coin_type = wt.coin_type
		WHERE wt.wallet_address = $1
		ORDER BY wt.value_usd DESC
	`

	rows, err := s.pool.Query(ctx, tokensQuery, address)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "get wallet tokens")
	}
	defer rows.Close()

	for rows.Next() {
		var wt types.WalletToken
		var metadata []byte
		if err := rows.Scan(&wt.CoinType, &wt.Balance, &wt.PriceUSD, &wt.ValueUSD, &metadata); err != nil {
			return nil, pkgerrors.Wrap(err, "scan wallet token")
		}
		if len(metadata) > 0 {
			t := types.Token{Metadata: metadata}
			wt.Metadata = t.DecodeMetadata()
		}
		w.Tokens = append(w.Tokens, wt)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate wallet tokens")
	}

	return &w, nil
}

// Save upserts the wallet row and replaces its token rows in a single
// transaction.
func (s *WalletStore) Save(ctx context.Context, wallet *types.Wallet) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "begin wallet save")
	}
	defer tx.Rollback(ctx)

	upsertWallet := `
		INSERT INTO wallets (address, total_value_usd, last_update)
		VALUES ($1, $2, $3)
		ON CONFLICT (address) DO UPDATE
		SET total_value_usd = excluded.total_value_usd,
		    last_update = excluded.last_update
	`
	if _, err := tx.Exec(ctx, upsertWallet, wallet.Address, wallet.TotalValueUSD, wallet.LastUpdate); err != nil {
		return pkgerrors.Wrap(err, "upsert wallet")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM wallet_tokens WHERE wallet_address = $1`, wallet.Address); err != nil {
		return pkgerrors.Wrap(err, "clear wallet tokens")
	}

	insertToken := `
		INSERT INTO wallet_tokens (wallet_address, coin_type, balance, price_usd, value_usd)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, wt := range wallet.Tokens {
		if _, err := tx.Exec(ctx, insertToken, wallet.Address, wt.CoinType, wt.Balance, wt.PriceUSD, wt.ValueUSD); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return pkgerrors.Wrap(err, "insert wallet token")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return pkgerrors.Wrap(err, "commit wallet save")
	}
	return nil
}
