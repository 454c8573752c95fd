package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/moneymetrics/src/models"
)

func TestAdd_PrependsNewestFirst(t *testing.T) {
	l := New()

	first, err := l.Add(decimal.NewFromInt(100), "salary", models.TypeIncome, nil)
	require.NoError(t, err)
	second, err := l.Add(decimal.NewFromInt(20), "groceries", models.TypeExpense, nil)
	require.NoError(t, err)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, all[0].Date.IsZero())
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	l := New()

	_, err := l.Add(decimal.Zero, "zero", models.TypeIncome, nil)
	assert.Error(t, err)

	_, err = l.Add(decimal.NewFromInt(-5), "negative", models.TypeIncome, nil)
	assert.Error(t, err)

	_, err = l.Add(decimal.NewFromInt(5), "   ", models.TypeIncome, nil)
	assert.Error(t, err)

	assert.Equal(t, 0, l.Len())
}

func TestUpdate_EditsOnlyMutableFields(t *testing.T) {
	l := New()
	tx, err := l.Add(decimal.NewFromInt(100), "salary", models.TypeIncome, nil)
	require.NoError(t, err)

	newDesc := "march salary"
	newAmount := decimal.NewFromInt(150)
	require.NoError(t, l.Update(tx.ID, Update{Description: &newDesc, Amount: &newAmount}))

	got, ok := l.Get(tx.ID)
	require.True(t, ok)
	assert.Equal(t, "march salary", got.Description)
	assert.True(t, got.Amount.Equal(newAmount))
	assert.Equal(t, tx.Type, got.Type)
	assert.True(t, got.Date.Equal(tx.Date))
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	l := New()
	_, err := l.Add(decimal.NewFromInt(100), "salary", models.TypeIncome, nil)
	require.NoError(t, err)

	desc := "ghost"
	assert.NoError(t, l.Update("missing", Update{Description: &desc}))
	assert.Equal(t, "salary", l.All()[0].Description)
}

func TestUpdate_RejectsInvalidAmount(t *testing.T) {
	l := New()
	tx, err := l.Add(decimal.NewFromInt(100), "salary", models.TypeIncome, nil)
	require.NoError(t, err)

	bad := decimal.NewFromInt(-1)
	assert.Error(t, l.Update(tx.ID, Update{Amount: &bad}))

	got, _ := l.Get(tx.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
}

func TestDelete_IsIdempotent(t *testing.T) {
	l := New()
	tx, err := l.Add(decimal.NewFromInt(10), "coffee", models.TypeExpense, nil)
	require.NoError(t, err)

	assert.True(t, l.Delete(tx.ID))
	assert.False(t, l.Delete(tx.ID))
	assert.False(t, l.Delete("never-existed"))
	assert.Equal(t, 0, l.Len())
}

func TestTotalsAndBalance(t *testing.T) {
	l := New()
	mustAdd(t, l, "500", models.TypeIncome)
	mustAdd(t, l, "200", models.TypeIncome)
	mustAdd(t, l, "300", models.TypeExpense)

	assert.True(t, l.TotalByType(models.TypeIncome).Equal(decimal.NewFromInt(700)))
	assert.True(t, l.TotalByType(models.TypeExpense).Equal(decimal.NewFromInt(300)))
	assert.True(t, l.Balance().Equal(decimal.NewFromInt(400)))
}

func TestLinkedTo_FiltersAndKeepsInsertionOrder(t *testing.T) {
	l := New()
	link := &models.GoalLink{GoalID: "trip", GoalEmoji: "✈️", GoalColor: "#3B82F6"}

	first, err := l.Add(decimal.NewFromInt(300), "deposit", models.TypeIncome, link)
	require.NoError(t, err)
	mustAdd(t, l, "50", models.TypeExpense) // unlinked
	second, err := l.Add(decimal.NewFromInt(100), "deposit", models.TypeIncome, link)
	require.NoError(t, err)

	linked := l.LinkedTo("trip")
	require.Len(t, linked, 2)
	assert.Equal(t, first.ID, linked[0].ID)
	assert.Equal(t, second.ID, linked[1].ID)
	assert.Empty(t, l.LinkedTo("other-goal"))
}

func TestNetSince(t *testing.T) {
	l := New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	l.SetClock(func() time.Time { return clock })

	mustAdd(t, l, "1000", models.TypeIncome) // old entry
	clock = base.AddDate(0, 0, 10)
	mustAdd(t, l, "40", models.TypeExpense)
	mustAdd(t, l, "100", models.TypeIncome)

	net := l.NetSince(base.AddDate(0, 0, 5))
	assert.True(t, net.Equal(decimal.NewFromInt(60)), "got %s", net)
}

func mustAdd(t *testing.T, l *Ledger, amount string, typ models.TransactionType) models.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	tx, err := l.Add(amt, "entry", typ, nil)
	require.NoError(t, err)
	return tx
}
