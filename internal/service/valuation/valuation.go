package valuation

import (
	"math"
	"math/big"
)

// DefaultDecimals is assumed when a coin's metadata is unavailable. Sui
// native coins use 9 decimal places.
const DefaultDecimals = 9

// Value computes the USD value of a raw integer balance. The balance stays
// in big.Int arithmetic until the final multiplication so balances beyond
// 2^53 do not lose precision on the way in. A nil, NaN, infinite or
// non-positive price values to 0, as does an unparseable balance; valuation
// never fails, it degrades to zero.
func Value(balanceRaw string, decimals int32, price *float64) float64 {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) || *price <= 0 {
		return 0
	}

	balance, ok := new(big.Int).SetString(balanceRaw, 10)
	if !ok || balance.Sign() <= 0 {
		return 0
	}

	if decimals < 0 {
		decimals = DefaultDecimals
	}

	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	amount := new(big.Float).Quo(new(big.Float).SetInt(balance), scale)

	value, _ := new(big.Float).Mul(amount, big.NewFloat(*price)).Float64()
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// Amount converts a raw integer balance to its decimal representation as a
// float. Used for display only; values are computed by Value.
func Amount(balanceRaw string, decimals int32) float64 {
	balance, ok := new(big.Int).SetString(balanceRaw, 10)
	if !ok {
		return 0
	}
	if decimals < 0 {
		decimals = DefaultDecimals
	}

	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	amount, _ := new(big.Float).Quo(new(big.Float).SetInt(balance), scale).Float64()
	return amount
}
