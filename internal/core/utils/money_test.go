package utils_test

import (
	"testing"

	"github.com/MikeRez0/ypsmartshop/internal/core/utils"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "tie rounds up", value: "1.005", want: "1.01"},
		{name: "tie rounds up on even digit", value: "2.125", want: "2.13"},
		{name: "below tie", value: "1.0049", want: "1.00"},
		{name: "above tie", value: "1.0051", want: "1.01"},
		{name: "negative tie away from zero", value: "-1.005", want: "-1.01"},
		{name: "short scale padded", value: "7", want: "7.00"},
		{name: "exact", value: "114.00", want: "114.00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := utils.RoundMoney(decimal.MustParse(test.value))
			require.NoError(t, err)
			assert.Equal(t, test.want, got.String())
		})
	}
}

func TestLineTotal(t *testing.T) {
	total, err := utils.LineTotal(3, decimal.MustParse("33.335"))
	require.NoError(t, err)
	assert.True(t, total.Cmp(decimal.MustParse("100.005")) == 0, total.String())
}

func TestValidPromoCode(t *testing.T) {
	assert.True(t, utils.ValidPromoCode("PROMO-AB12"))
	assert.True(t, utils.ValidPromoCode("PROMO-0000"))
	assert.False(t, utils.ValidPromoCode("PROMO-ab12"))
	assert.False(t, utils.ValidPromoCode("PROMO-AB123"))
	assert.False(t, utils.ValidPromoCode("PROMO-AB1"))
	assert.False(t, utils.ValidPromoCode(" PROMO-AB12"))
	assert.False(t, utils.ValidPromoCode(""))
}
