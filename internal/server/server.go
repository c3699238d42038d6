package server

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/berkayoztunc/suiport/docs"
	"github.com/berkayoztunc/suiport/internal/cache"
	"github.com/berkayoztunc/suiport/internal/client/coingecko"
	"github.com/berkayoztunc/suiport/internal/client/dexscreener"
	httpClient "github.com/berkayoztunc/suiport/internal/client/http"
	"github.com/berkayoztunc/suiport/internal/client/sevenk"
	"github.com/berkayoztunc/suiport/internal/client/sui"
	"github.com/berkayoztunc/suiport/internal/config"
	"github.com/berkayoztunc/suiport/internal/graph"
	"github.com/berkayoztunc/suiport/internal/handlers"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/metrics"
	"github.com/berkayoztunc/suiport/internal/middleware"
	"github.com/berkayoztunc/suiport/internal/service/cron"
	"github.com/berkayoztunc/suiport/internal/service/portfolio"
	"github.com/berkayoztunc/suiport/internal/service/price"
	"github.com/berkayoztunc/suiport/internal/storage/migrations"
	"github.com/berkayoztunc/suiport/internal/storage/postgres"
)

// Server owns the HTTP surface and every long-lived dependency behind it.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server

	pool        *postgres.Pool
	redisClient *redis.Client
	jobs        *cron.Service
}

// New wires the whole service: storage, external clients, the price
// cascade, the portfolio scanner, background jobs and all routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunPostgres(ctx, pool.Pool); err != nil {
		pool.Close()
		return nil, err
	}

	tokenStore := postgres.NewTokenStore(pool)
	walletStore := postgres.NewWalletStore(pool)
	historyStore := postgres.NewHistoryStore(pool)

	// Redis is optional. Without it wallet snapshots are simply rebuilt on
	// every request.
	var redisClient *redis.Client
	var walletCache *cache.WalletCache
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("invalid REDIS_URL, running without snapshot cache", zap.Error(err))
		} else {
			redisClient = redis.NewClient(opt)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, running without snapshot cache", zap.Error(err))
				redisClient.Close()
				redisClient = nil
			} else {
				walletCache = cache.NewWalletCache(redisClient, 0)
			}
		}
	}

	collector := metrics.NewHTTPCollector()
	withMetrics := httpClient.WithMetricsCollector(collector)

	suiClient := sui.NewClient(cfg.SuiRPCURL, withMetrics)
	sevenkClient := sevenk.NewClient(cfg.SevenKBaseURL, withMetrics)
	coingeckoClient := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, withMetrics)
	dexscreenerClient := dexscreener.NewClient(cfg.DexScreenerURL, withMetrics)

	priceCache := price.NewCache(tokenStore)
	resolver := price.NewResolver(priceCache, sevenkClient, coingeckoClient, dexscreenerClient, suiClient, price.ResolverConfig{
		RetryAttempts:            cfg.RetryAttempts,
		RetryBaseDelay:           cfg.RetryBaseDelay,
		DexReservePricingEnabled: cfg.DexReservePricingEnabled,
		CetusPoolID:              cfg.CetusPoolID,
	})

	portfolioSvc := portfolio.NewService(suiClient, resolver, priceCache, tokenStore, walletStore, historyStore, walletCache, portfolio.Config{
		Concurrency:    cfg.WalletConcurrency,
		RetryAttempts:  cfg.RetryAttempts,
		RetryBaseDelay: cfg.RetryBaseDelay,
	})

	jobs := cron.NewService(resolver, tokenStore, historyStore)

	common := handlers.NewCommonServices(portfolioSvc, resolver, historyStore, tokenStore, jobs)

	schema, err := graph.NewSchema(&graph.Resolvers{
		Portfolio: portfolioSvc,
		Prices:    resolver,
		History:   historyStore,
		Tokens:    tokenStore,
		Jobs:      jobs,
	})
	if err != nil {
		pool.Close()
		return nil, err
	}

	if cfg.Stage == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())
	router.Use(middleware.CorrelationID())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	router.Use(rateLimiter.Middleware())

	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.POST("/graphql", graph.Handler(schema))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/price/:coinType", common.GetTokenPrice)
		v1.GET("/wallet/:address", common.GetWallet)
		v1.GET("/wallet/:address/history", common.GetWalletHistory)
		v1.GET("/sui-price-history", common.GetSuiPriceHistory)
		v1.GET("/tokens", common.ListTokens)
		v1.GET("/tokens/:coinType", common.GetToken)

		admin := v1.Group("/admin")
		{
			admin.POST("/refresh-sui-price", common.RefreshSuiPrice)
			admin.POST("/refresh-zero-prices", common.RefreshZeroPriceTokens)
		}
	}

	return &Server{
		cfg:    cfg,
		router: router,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
		pool:        pool,
		redisClient: redisClient,
		jobs:        jobs,
	}, nil
}

// Run starts the background jobs and serves HTTP until the listener stops.
func (s *Server) Run() error {
	s.jobs.Start()

	logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, stops the jobs and closes every
// connection.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	s.jobs.Stop()
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	s.pool.Close()

	return err
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
