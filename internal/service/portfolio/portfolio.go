package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/berkayoztunc/suiport/internal/cache"
	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/metrics"
	"github.com/berkayoztunc/suiport/internal/retry"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/service/valuation"
	"github.com/berkayoztunc/suiport/internal/storage"
	"github.com/berkayoztunc/suiport/internal/types"
)

// DefaultConcurrency caps the per-wallet pricing fan-out. Wallets holding
// hundreds of coin types would otherwise stampede the external sources.
const DefaultConcurrency = 8

// ErrInvalidAddress means the wallet address is not a 0x-prefixed hex string.
var ErrInvalidAddress = errors.New("invalid wallet address")

// CoinLister fetches all coin objects owned by an address.
type CoinLister interface {
	GetAllCoins(ctx context.Context, owner string) ([]sui.Coin, error)
	GetCoinMetadata(ctx context.Context, coinType string) (*sui.CoinMetadata, error)
}

// PriceResolver resolves a coin type to a USD price.
type PriceResolver interface {
	Resolve(ctx context.Context, coinType string) (*price.ResolvedPrice, error)
}

// Service scans wallets: it lists coins on chain, merges balances per coin
// type, prices and values every holding, and persists the snapshot plus a
// history row.
type Service struct {
	chain       CoinLister
	resolver    PriceResolver
	priceCache  *price.Cache
	tokens      storage.TokenStore
	wallets     storage.WalletStore
	history     storage.HistoryStore
	walletCache *cache.WalletCache

	concurrency    int
	retryAttempts  int
	retryBaseDelay time.Duration
	now            func() time.Time
}

// Config carries the service's tuning knobs.
type Config struct {
	Concurrency    int
	RetryAttempts  int
	RetryBaseDelay time.Duration
}

// NewService wires the portfolio scanner. walletCache may be nil.
func NewService(chain CoinLister, resolver PriceResolver, priceCache *price.Cache, tokens storage.TokenStore, wallets storage.WalletStore, history storage.HistoryStore, walletCache *cache.WalletCache, cfg Config) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	return &Service{
		chain:          chain,
		resolver:       resolver,
		priceCache:     priceCache,
		tokens:         tokens,
		wallets:        wallets,
		history:        history,
		walletCache:    walletCache,
		concurrency:    cfg.Concurrency,
		retryAttempts:  cfg.RetryAttempts,
		retryBaseDelay: cfg.RetryBaseDelay,
		now:            time.Now,
	}
}

// ValidateAddress checks the 0x-prefixed hex shape of a Sui address.
func ValidateAddress(address string) error {
	if !strings.HasPrefix(address, "0x") || len(address) < 3 || len(address) > 66 {
		return ErrInvalidAddress
	}
	for _, c := range address[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return ErrInvalidAddress
		}
	}
	return nil
}

// Scan builds a fresh portfolio snapshot for an address. Cached snapshots
// are served when present; pass refresh to force a full re-scan.
func (s *Service) Scan(ctx context.Context, address string, refresh bool) (*types.Wallet, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}

	if !refresh {
		if cached, err := s.walletCache.Get(ctx, address); err == nil {
			return cached, nil
		}
	}

	start := s.now()
	wallet, err := s.scan(ctx, address)
	if err != nil {
		metrics.WalletScans.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, err
	}
	metrics.WalletScans.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	s.persist(ctx, wallet)
	s.walletCache.Set(ctx, wallet)

	return wallet, nil
}

// Stored returns the last persisted snapshot without touching the chain.
func (s *Service) Stored(ctx context.Context, address string) (*types.Wallet, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.wallets.Get(ctx, address)
}

func (s *Service) scan(ctx context.Context, address string) (*types.Wallet, error) {
	coins, err := s.chain.GetAllCoins(ctx, address)
	if err != nil {
		return nil, err
	}

	// Merge coin objects into one balance per coin type. Balances are raw
	// integer strings and can exceed 2^53, so the sum runs in big.Int.
	balances := make(map[string]*big.Int)
	for _, coin := range coins {
		amount, ok := new(big.Int).SetString(coin.Balance, 10)
		if !ok {
			logger.Warn("skipping coin with unparseable balance",
				zap.String("coin_type", coin.CoinType),
				zap.String("balance", coin.Balance))
			continue
		}
		if total, exists := balances[coin.CoinType]; exists {
			total.Add(total, amount)
		} else {
			balances[coin.CoinType] = amount
		}
	}

	coinTypes := make([]string, 0, len(balances))
	for coinType := range balances {
		coinTypes = append(coinTypes, coinType)
	}

	valued := s.valueAll(ctx, coinTypes, balances)

	sort.Slice(valued, func(i, j int) bool {
		return valued[i].ValueUSD > valued[j].ValueUSD
	})

	total := 0.0
	for _, t := range valued {
		total += t.ValueUSD
	}

	return &types.Wallet{
		Address:       address,
		TotalValueUSD: total,
		LastUpdate:    s.now().UnixMilli(),
		Tokens:        valued,
	}, nil
}

// valueAll prices and values every coin type under the bounded worker pool.
func (s *Service) valueAll(ctx context.Context, coinTypes []string, balances map[string]*big.Int) []types.WalletToken {
	results := make([]types.WalletToken, len(coinTypes))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for i, coinType := range coinTypes {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, coinType string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.valueOne(ctx, coinType, balances[coinType].String())
		}(i, coinType)
	}
	wg.Wait()

	return results
}

func (s *Service) valueOne(ctx context.Context, coinType, balance string) types.WalletToken {
	metadata := s.metadataFor(ctx, coinType)

	var priceUSD *float64
	resolved, err := s.resolver.Resolve(ctx, coinType)
	switch {
	case err == nil:
		priceUSD = &resolved.Price
	case errors.Is(err, price.ErrPriceUnavailable):
		// Record a zero-price placeholder so the sweep job retries it later.
		if putErr := s.priceCache.Put(ctx, coinType, 0); putErr != nil {
			logger.Error("failed to record unpriced token",
				zap.String("coin_type", coinType),
				zap.Error(putErr))
		}
	default:
		logger.Error("price resolution failed",
			zap.String("coin_type", coinType),
			zap.Error(err))
	}

	decimals := int32(valuation.DefaultDecimals)
	if metadata != nil {
		decimals = metadata.Decimals
	}

	token := types.WalletToken{
		CoinType: coinType,
		Balance:  balance,
		ValueUSD: valuation.Value(balance, decimals, priceUSD),
		Metadata: metadata,
	}
	if priceUSD != nil {
		token.PriceUSD = *priceUSD
	}
	return token
}

// metadataFor returns coin metadata, preferring the stored copy and falling
// back to the chain under the retry policy. A coin without registered
// metadata is valued with default decimals.
func (s *Service) metadataFor(ctx context.Context, coinType string) *types.TokenMetadata {
	if record, err := s.tokens.Get(ctx, coinType); err == nil {
		if m := record.DecodeMetadata(); m != nil {
			return m
		}
	}

	onChain, ok := retry.Do(ctx, s.retryAttempts, s.retryBaseDelay, func(ctx context.Context) (*sui.CoinMetadata, error) {
		return s.chain.GetCoinMetadata(ctx, coinType)
	})
	if !ok {
		return nil
	}

	m := &types.TokenMetadata{
		Decimals:    onChain.Decimals,
		Name:        onChain.Name,
		Symbol:      onChain.Symbol,
		Description: onChain.Description,
		IconURL:     onChain.IconURL,
	}

	if blob, err := json.Marshal(m); err == nil {
		if record, err := s.tokens.Get(ctx, coinType); err == nil {
			record.Metadata = blob
			if upsertErr := s.tokens.Upsert(ctx, record); upsertErr != nil {
				logger.Error("failed to store token metadata", zap.Error(upsertErr))
			}
		} else if errors.Is(err, storage.ErrNotFound) {
			if putErr := s.priceCache.PutWithMetadata(ctx, coinType, 0, blob); putErr != nil {
				logger.Error("failed to store token metadata", zap.Error(putErr))
			}
		}
	}

	return m
}

// persist saves the snapshot and appends a history row. Storage failures
// here are logged, not returned: the caller already has the fresh snapshot.
func (s *Service) persist(ctx context.Context, wallet *types.Wallet) {
	if err := s.wallets.Save(ctx, wallet); err != nil {
		logger.Error("failed to save wallet snapshot",
			zap.String("address", wallet.Address),
			zap.Error(err))
	}

	pct := s.percentageChange(ctx, wallet)

	tokensJSON, err := json.Marshal(wallet.Tokens)
	if err != nil {
		logger.Error("failed to encode wallet tokens for history", zap.Error(err))
		tokensJSON = []byte("[]")
	}

	if err := s.history.InsertWalletSnapshot(ctx, wallet.Address, wallet.TotalValueUSD, pct, tokensJSON, wallet.LastUpdate); err != nil {
		logger.Error("failed to append wallet history",
			zap.String("address", wallet.Address),
			zap.Error(err))
	}
}

// percentageChange compares the new total against the day's most recent
// earlier snapshot. The first snapshot of a day has no reference point and
// yields nil.
func (s *Service) percentageChange(ctx context.Context, wallet *types.Wallet) *float64 {
	startOfDay := startOfDayMillis(s.now())

	previous, err := s.history.LastWalletSnapshotSince(ctx, wallet.Address, startOfDay)
	if err != nil || previous.TotalValueUSD == 0 {
		return nil
	}

	pct := (wallet.TotalValueUSD - previous.TotalValueUSD) / previous.TotalValueUSD * 100
	return &pct
}

func startOfDayMillis(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}
