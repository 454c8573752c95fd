package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
// The stored amount is always a positive magnitude; the sign is carried
// by the type.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// GoalLink tags a transaction as belonging to a savings goal. Emoji and
// color are a display cache copied from the goal at creation time; the
// goal itself remains the source of truth for its own presentation.
type GoalLink struct {
	GoalID    string `json:"goal_id"`
	GoalEmoji string `json:"goal_emoji"`
	GoalColor string `json:"goal_color"`
}

// Transaction is a single monetary event in the ledger.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	GoalLink    *GoalLink       `json:"goal_link,omitempty"`
}

// Signed returns the amount with its sign applied: positive for income,
// negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// LinkedTo reports whether the transaction carries a link to the given goal.
func (t Transaction) LinkedTo(goalID string) bool {
	return t.GoalLink != nil && t.GoalLink.GoalID == goalID
}
