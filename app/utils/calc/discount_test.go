package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name          string
		price         int64
		originalPrice int64
		want          int64
	}{
		{"typical sale price", 999, 1299, 23},
		{"half price", 500, 1000, 50},
		{"no original price", 999, 0, 0},
		{"original below price clamps to zero", 1299, 999, 0},
		{"original equals price", 999, 999, 0},
		{"rounds to nearest", 1049, 1399, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercent(decimal.NewFromInt(tt.price), decimal.NewFromInt(tt.originalPrice))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscountPercentNeverNegative(t *testing.T) {
	got := DiscountPercent(decimal.NewFromInt(5000), decimal.NewFromInt(100))
	assert.GreaterOrEqual(t, got, int64(0))

	got = DiscountPercent(decimal.NewFromInt(100), decimal.NewFromInt(-200))
	assert.Equal(t, int64(0), got)
}
