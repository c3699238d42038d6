package valuation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/berkayoztunc/suiport/internal/service/valuation"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestValue(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name     string
		balance  string
		decimals int32
		price    *float64
		want     float64
	}{
		{
			name:     "one whole coin at one dollar",
			balance:  "1000000000",
			decimals: 9,
			price:    floatPtr(1.0),
			want:     1.0,
		},
		{
			name:     "fractional balance",
			balance:  "500000000",
			decimals: 9,
			price:    floatPtr(4.50),
			want:     2.25,
		},
		{
			name:     "six decimal token",
			balance:  "2500000",
			decimals: 6,
			price:    floatPtr(2.0),
			want:     5.0,
		},
		{
			name:     "nil price values to zero",
			balance:  "1000000000",
			decimals: 9,
			price:    nil,
			want:     0,
		},
		{
			name:     "nan price values to zero",
			balance:  "1000000000",
			decimals: 9,
			price:    &nan,
			want:     0,
		},
		{
			name:     "infinite price values to zero",
			balance:  "1000000000",
			decimals: 9,
			price:    &inf,
			want:     0,
		},
		{
			name:     "zero price values to zero",
			balance:  "1000000000",
			decimals: 9,
			price:    floatPtr(0),
			want:     0,
		},
		{
			name:     "negative price values to zero",
			balance:  "1000000000",
			decimals: 9,
			price:    floatPtr(-3),
			want:     0,
		},
		{
			name:     "unparseable balance values to zero",
			balance:  "not-a-number",
			decimals: 9,
			price:    floatPtr(1),
			want:     0,
		},
		{
			name:     "zero balance values to zero",
			balance:  "0",
			decimals: 9,
			price:    floatPtr(100),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := valuation.Value(tt.balance, tt.decimals, tt.price)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestValue_BalanceBeyondFloatPrecision(t *testing.T) {
	// 2^63 raw units with 9 decimals at $1: the balance cannot be held in a
	// float64 without rounding, but the valuation must still be close.
	got := valuation.Value("9223372036854775808", 9, floatPtr(1.0))
	assert.InDelta(t, 9223372036.854775808, got, 1.0)
}

func TestValue_NegativeDecimalsFallBackToDefault(t *testing.T) {
	got := valuation.Value("1000000000", -1, floatPtr(2.0))
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestAmount(t *testing.T) {
	assert.InDelta(t, 1.5, valuation.Amount("1500000000", 9), 1e-9)
	assert.Zero(t, valuation.Amount("garbage", 9))
}
