package migrations

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"

	"github.com/berkayoztunc/suiport/internal/logger"
)

// RunPostgres applies all embedded SQL migrations in lexical order. Each
// migration file must be idempotent (CREATE TABLE IF NOT EXISTS etc.).
func RunPostgres(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := postgresFS.ReadDir("postgres")
	if err != nil {
		return pkgerrors.Wrap(err, "read migrations dir")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := postgresFS.ReadFile("postgres/" + name)
		if err != nil {
			return pkgerrors.Wrapf(err, "read migration %s", name)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return pkgerrors.Wrapf(err, "apply migration %s", name)
		}
		logger.Debug("applied migration: " + name)
	}

	return nil
}
