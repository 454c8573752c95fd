package goals

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/moneymetrics/src/models"
)

func newInput(name string) Input {
	return Input{
		Name:         name,
		TargetAmount: decimal.NewFromInt(1000),
		Deadline:     time.Now().AddDate(0, 6, 0),
		Color:        "#3B82F6",
		Emoji:        "✈️",
	}
}

func TestAdd_AssignsNextOrderAndZeroBalance(t *testing.T) {
	s := New()

	a := s.Add(newInput("Trip"))
	b := s.Add(newInput("Laptop"))

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.True(t, a.CurrentAmount.IsZero())
	assert.Equal(t, 2, s.Created())
}

func TestAdd_DefaultsEmoji(t *testing.T) {
	s := New()
	in := newInput("Trip")
	in.Emoji = ""
	g := s.Add(in)
	assert.Equal(t, "🎯", g.Emoji)
}

func TestUpdate_MergesFields(t *testing.T) {
	s := New()
	g := s.Add(newInput("Trip"))

	name := "Big Trip"
	target := decimal.NewFromInt(2000)
	require.NoError(t, s.Update(g.ID, Update{Name: &name, TargetAmount: &target}))

	got, ok := s.Get(g.ID)
	require.True(t, ok)
	assert.Equal(t, "Big Trip", got.Name)
	assert.True(t, got.TargetAmount.Equal(target))
	assert.Equal(t, g.Deadline, got.Deadline)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Add(newInput("Trip"))
	name := "Ghost"
	assert.NoError(t, s.Update("missing", Update{Name: &name}))
	assert.Equal(t, "Trip", s.All()[0].Name)
}

func TestUpdate_RejectsInvalidName(t *testing.T) {
	s := New()
	g := s.Add(newInput("Trip"))
	bad := "Trip!!! <script>"
	assert.Error(t, s.Update(g.ID, Update{Name: &bad}))
}

func TestDelete_IsIdempotentAndKeepsOrderValues(t *testing.T) {
	s := New()
	a := s.Add(newInput("A"))
	s.Add(newInput("B"))
	c := s.Add(newInput("C"))

	assert.True(t, s.Delete(a.ID))
	assert.False(t, s.Delete(a.ID))

	// Remaining order values are not renumbered; order is a relative
	// sort key only.
	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "C", all[1].Name)
	got, _ := s.Get(c.ID)
	assert.Equal(t, 2, got.Order)

	// The ever-created counter never goes down.
	assert.Equal(t, 3, s.Created())
}

func TestReorder_MoveLastToFront(t *testing.T) {
	s := New()
	for _, name := range []string{"A", "B", "C", "D"} {
		s.Add(newInput(name))
	}

	require.NoError(t, s.Reorder(3, 0))

	all := s.All()
	names := make([]string, 0, len(all))
	orders := make([]int, 0, len(all))
	for _, g := range all {
		names = append(names, g.Name)
		orders = append(orders, g.Order)
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, names)
	assert.Equal(t, []int{0, 1, 2, 3}, orders)
}

func TestReorder_DensifiesAfterDelete(t *testing.T) {
	s := New()
	var ids []string
	for _, name := range []string{"A", "B", "C", "D"} {
		ids = append(ids, s.Add(newInput(name)).ID)
	}
	require.True(t, s.Delete(ids[1])) // orders now 0,2,3

	require.NoError(t, s.Reorder(2, 1))

	orders := make([]int, 0)
	for _, g := range s.All() {
		orders = append(orders, g.Order)
	}
	assert.Equal(t, []int{0, 1, 2}, orders)
}

func TestReorder_RejectsOutOfRange(t *testing.T) {
	s := New()
	s.Add(newInput("A"))
	s.Add(newInput("B"))

	assert.Error(t, s.Reorder(-1, 0))
	assert.Error(t, s.Reorder(0, 2))
	assert.Error(t, s.Reorder(5, 0))

	// State unchanged after a rejected reorder.
	all := s.All()
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
}

func TestReplace_DefaultsEmojiAndFloorsCounter(t *testing.T) {
	s := New()
	restored := []models.Goal{
		{ID: "a", Name: "A", TargetAmount: decimal.NewFromInt(100), Order: 0},
		{ID: "b", Name: "B", TargetAmount: decimal.NewFromInt(100), Emoji: "🚗", Order: 1},
	}

	s.Replace(restored, 0) // counter lower than live count gets floored

	assert.Equal(t, 2, s.Created())
	assert.Equal(t, "🎯", s.All()[0].Emoji)
	assert.Equal(t, "🚗", s.All()[1].Emoji)
}

func TestCompletedCount(t *testing.T) {
	s := New()
	a := s.Add(newInput("A"))
	s.Add(newInput("B"))

	s.SetCurrentAmount(a.ID, decimal.NewFromInt(1000))
	assert.Equal(t, 1, s.CompletedCount())
}
