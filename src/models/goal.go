package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultGoalEmoji decorates goals saved by older versions that predate
// the emoji field.
const DefaultGoalEmoji = "🎯"

// Goal is a named savings target. CurrentAmount is a derived value kept
// consistent with the ledger by the reconciler; it is never mutated
// directly by callers.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      time.Time       `json:"deadline"`
	Color         string          `json:"color"`
	Emoji         string          `json:"emoji"`
	Order         int             `json:"order"`
}

// Remaining returns how much is still missing to reach the target.
// Never negative.
func (g Goal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// IsCompleted reports whether the goal balance has reached its target.
func (g Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// ProgressPercent returns completion as a percentage capped at 100.
func (g Goal) ProgressPercent() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysLeft returns the number of whole days until the deadline, rounded
// up. Negative when the deadline has passed.
func (g Goal) DaysLeft(now time.Time) int {
	d := g.Deadline.Sub(now)
	days := int(d.Hours() / 24)
	if d > 0 && d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
