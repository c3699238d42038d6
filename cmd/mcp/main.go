package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/berkayoztunc/suiport/internal/client/coingecko"
	"github.com/berkayoztunc/suiport/internal/client/dexscreener"
	"github.com/berkayoztunc/suiport/internal/client/sevenk"
	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/config"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/mcptools"
	"github.com/berkayoztunc/suiport/internal/service/portfolio"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/storage/migrations"
	"github.com/berkayoztunc/suiport/internal/storage/postgres"
)

// The MCP entrypoint serves the portfolio tools over stdio for model
// clients. It shares the storage and cascade wiring with the API server
// but carries no HTTP surface and no background jobs.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	if err := migrations.RunPostgres(ctx, pool.Pool); err != nil {
		cancel()
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	cancel()
	defer pool.Close()

	tokenStore := postgres.NewTokenStore(pool)
	walletStore := postgres.NewWalletStore(pool)
	historyStore := postgres.NewHistoryStore(pool)

	suiClient := sui.NewClient(cfg.SuiRPCURL)
	sevenkClient := sevenk.NewClient(cfg.SevenKBaseURL)
	coingeckoClient := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey)
	dexscreenerClient := dexscreener.NewClient(cfg.DexScreenerURL)

	priceCache := price.NewCache(tokenStore)
	resolver := price.NewResolver(priceCache, sevenkClient, coingeckoClient, dexscreenerClient, suiClient, price.ResolverConfig{
		RetryAttempts:            cfg.RetryAttempts,
		RetryBaseDelay:           cfg.RetryBaseDelay,
		DexReservePricingEnabled: cfg.DexReservePricingEnabled,
		CetusPoolID:              cfg.CetusPoolID,
	})

	portfolioSvc := portfolio.NewService(suiClient, resolver, priceCache, tokenStore, walletStore, historyStore, nil, portfolio.Config{
		Concurrency:    cfg.WalletConcurrency,
		RetryAttempts:  cfg.RetryAttempts,
		RetryBaseDelay: cfg.RetryBaseDelay,
	})

	mcpServer := server.NewMCPServer("suiport", "1.0.0",
		server.WithToolCapabilities(false),
	)
	mcptools.Register(mcpServer, portfolioSvc, resolver)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("mcp server stopped", zap.Error(err))
	}
}
