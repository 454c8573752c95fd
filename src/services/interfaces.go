package services

import (
	"time"

	"github.com/username/moneymetrics/src/models"
)

// GoalInput carries the user-entered fields of a new goal. Amounts
// arrive as strings; the core performs the numeric guard itself as a
// last line of defense.
type GoalInput struct {
	Name            string
	TargetAmountStr string
	Deadline        time.Time
	Color           string
	Emoji           string
}

// GoalUpdate names the goal fields a caller may edit. Nil fields are
// left untouched.
type GoalUpdate struct {
	Name            *string
	TargetAmountStr *string
	Deadline        *time.Time
	Color           *string
	Emoji           *string
}

// TransactionUpdate names the transaction fields a caller may edit.
// Type, date and goal link are immutable after creation.
type TransactionUpdate struct {
	Description *string
	AmountStr   *string
}

// App is the embedded-library surface the UI layers call into. Every
// mutating operation persists the affected stores, reconciles goal
// balances and re-evaluates the achievement rules before returning.
type App interface {
	Load() error
	ResetAll() error

	AddTransaction(amountStr, description string, typ models.TransactionType, goalID string) (models.Transaction, error)
	UpdateTransaction(id string, upd TransactionUpdate) error
	DeleteTransaction(id string) error
	Transactions() []models.Transaction

	AddGoal(in GoalInput) (models.Goal, error)
	UpdateGoal(id string, upd GoalUpdate) error
	DeleteGoal(id string) error
	ReorderGoals(fromIndex, toIndex int) error
	QuickAdd(goalID, amountStr string) error
	Goals() []models.Goal

	Achievements() []models.Achievement
	AchievementProgress() []models.AchievementProgress
	CheckNewAchievements() []models.Achievement
	ClearNewlyUnlocked()

	Statistics() models.Statistics
}
