package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"-987.65", "-$987.65"},
	}
	for _, tc := range tests {
		amt, err := decimal.NewFromString(tc.amount)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, FormatMoney(amt))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "42%", FormatPercent(41.7))
	assert.Equal(t, "100%", FormatPercent(100))
}

func TestGenerateTestTransactions(t *testing.T) {
	txs := GenerateTestTransactions(10)
	assert.Len(t, txs, 10)
	for _, tx := range txs {
		assert.NotEmpty(t, tx.ID)
		assert.True(t, tx.Amount.IsPositive())
		assert.True(t, tx.Type == "income" || tx.Type == "expense")
	}
}

func TestGenerateTestGoals(t *testing.T) {
	gs := GenerateTestGoals(4)
	assert.Len(t, gs, 4)
	for i, g := range gs {
		assert.Equal(t, i, g.Order)
		assert.True(t, g.CurrentAmount.IsZero())
		assert.True(t, g.TargetAmount.IsPositive())
	}
}
