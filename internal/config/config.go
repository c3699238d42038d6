package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the service. Values are read
// from the environment; a .env file is loaded by the entrypoints for local
// development.
type Config struct {
	Stage string
	Port  string

	DatabaseURL string
	RedisURL    string

	SuiRPCURL        string
	SevenKBaseURL    string
	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	DexScreenerURL   string

	// CetusPoolID is the SUI/USDC pool object read by the reserve pricing
	// stage.
	CetusPoolID string

	// DexReservePricingEnabled controls whether the reserve ratio computed
	// from the Cetus pool is returned as a price. Off by default: the stage
	// runs and logs, but yields no price.
	DexReservePricingEnabled bool

	// WalletConcurrency caps the number of coins priced in parallel during
	// wallet aggregation.
	WalletConcurrency int

	RetryAttempts  int
	RetryBaseDelay time.Duration

	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:                    getEnv("STAGE", "local"),
		Port:                     getEnv("API_PORT", "8080"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		RedisURL:                 os.Getenv("REDIS_URL"),
		SuiRPCURL:                getEnv("SUI_RPC_URL", "https://fullnode.mainnet.sui.io"),
		SevenKBaseURL:            getEnv("SEVENK_BASE_URL", "https://prices.7k.ag"),
		CoinGeckoBaseURL:         getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:          os.Getenv("COINGECKO_API_KEY"),
		DexScreenerURL:           getEnv("DEXSCREENER_BASE_URL", "https://api.dexscreener.com"),
		CetusPoolID:              getEnv("CETUS_SUI_USDC_POOL", "0x2e041f3fd93646dcc877f783c1f2b7fa62d30271bdef1f71de2574eddf1ebc44"),
		DexReservePricingEnabled: getEnvBool("DEX_RESERVE_PRICING_ENABLED", false),
		WalletConcurrency:        getEnvInt("WALLET_CONCURRENCY", 8),
		RetryAttempts:            getEnvInt("RETRY_ATTEMPTS", 3),
		RetryBaseDelay:           getEnvDuration("RETRY_BASE_DELAY", time.Second),
		RateLimitPerSecond:       getEnvInt("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:           getEnvInt("RATE_LIMIT_BURST", 40),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.WalletConcurrency < 1 {
		return nil, fmt.Errorf("WALLET_CONCURRENCY must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
