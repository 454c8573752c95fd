package utils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/username/moneymetrics/src/models"
)

var goalEmojis = []string{"🎯", "✈️", "🏠", "🚗", "💻", "🎓", "🏖️"}
var goalColors = []string{"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6"}

// GenerateTestTransactions produces n random unlinked transactions for
// demos and tests, dated within the last 90 days, newest first.
func GenerateTestTransactions(n int) []models.Transaction {
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		typ := models.TypeExpense
		if gofakeit.Bool() {
			typ = models.TypeIncome
		}
		txs = append(txs, models.Transaction{
			ID:          uuid.NewString(),
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, 2000)).Round(2),
			Description: gofakeit.ProductName(),
			Type:        typ,
			Date:        gofakeit.DateRange(time.Now().AddDate(0, 0, -90), time.Now()),
		})
	}
	return txs
}

// GenerateTestGoals produces n random goals with zero balances and
// dense 0..n-1 order ranks.
func GenerateTestGoals(n int) []models.Goal {
	gs := make([]models.Goal, 0, n)
	for i := 0; i < n; i++ {
		gs = append(gs, models.Goal{
			ID:            uuid.NewString(),
			Name:          gofakeit.Word(),
			TargetAmount:  decimal.NewFromFloat(gofakeit.Price(500, 50000)).Round(2),
			CurrentAmount: decimal.Zero,
			Deadline:      gofakeit.DateRange(time.Now().AddDate(0, 1, 0), time.Now().AddDate(2, 0, 0)),
			Color:         goalColors[gofakeit.Number(0, len(goalColors)-1)],
			Emoji:         goalEmojis[gofakeit.Number(0, len(goalEmojis)-1)],
			Order:         i,
		})
	}
	return gs
}
