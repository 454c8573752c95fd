package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricType enumerates the aggregates the achievement rules are
// evaluated against.
type MetricType string

const (
	MetricGoalsCreated        MetricType = "goals_created"
	MetricGoalsCompleted      MetricType = "goals_completed"
	MetricTransactionsCount   MetricType = "transactions_count"
	MetricBalancePositiveDays MetricType = "balance_positive_days"
	MetricSavingsStreak       MetricType = "savings_streak"
	MetricAmountSaved         MetricType = "amount_saved"
)

// Rarity is a presentational weighting with no gameplay effect.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Requirement is the unlock condition of an achievement: the metric is
// compared against Value with >=.
type Requirement struct {
	Type        MetricType      `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

// Achievement is a fixed, rule-based unlockable milestone. Unlocking is
// a one-way ratchet: IsUnlocked never reverts within a session even if
// the underlying metric later drops below the requirement.
type Achievement struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Category    string      `json:"category"`
	Requirement Requirement `json:"requirement"`
	Rarity      Rarity      `json:"rarity"`
	IsUnlocked  bool        `json:"is_unlocked"`
	UnlockedAt  *time.Time  `json:"unlocked_at,omitempty"`
}

// AchievementProgress is a derived view of how close an achievement is
// to unlocking. It is recomputed from the ledger and goal store and is
// never persisted.
type AchievementProgress struct {
	AchievementID string          `json:"achievement_id"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	TargetValue   decimal.Decimal `json:"target_value"`
	IsCompleted   bool            `json:"is_completed"`
}
