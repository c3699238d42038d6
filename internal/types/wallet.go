package types

// WalletToken is one valued holding inside a wallet snapshot. Balance is
// the raw integer balance as a decimal string.
type WalletToken struct {
	CoinType string         `json:"coinType"`
	Balance  string         `json:"balance"`
	PriceUSD float64        `json:"price"`
	ValueUSD float64        `json:"valueUSD"`
	Metadata *TokenMetadata `json:"metadata,omitempty"`
}

// Wallet is the persisted snapshot of a wallet's holdings. LastUpdate is
// epoch milliseconds.
type Wallet struct {
	Address       string        `json:"address"`
	TotalValueUSD float64       `json:"totalValueUSD"`
	LastUpdate    int64         `json:"lastUpdate"`
	Tokens        []WalletToken `json:"tokens"`
}

// WalletHistoryEntry is one point in a wallet's value history.
// PercentageChange is nil for the first snapshot of the day. CreatedAt is
// epoch milliseconds.
type WalletHistoryEntry struct {
	ID               int64    `json:"id"`
	WalletAddress    string   `json:"walletAddress"`
	TotalValueUSD    float64  `json:"totalValueUSD"`
	PercentageChange *float64 `json:"percentageChange,omitempty"`
	TokensJSON       []byte   `json:"tokensJson"`
	CreatedAt        int64    `json:"createdAt"`
}

// NativePriceEntry is one point in the native asset's price history.
// CreatedAt is epoch milliseconds.
type NativePriceEntry struct {
	ID        int64   `json:"id"`
	PriceUSD  float64 `json:"priceUSD"`
	CreatedAt int64   `json:"createdAt"`
}
