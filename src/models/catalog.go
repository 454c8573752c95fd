package models

import "github.com/shopspring/decimal"

// DefaultAchievements returns a fresh copy of the fixed achievement
// catalog, all locked. The catalog order is also the notification order
// when several achievements unlock in the same evaluation pass.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "first_goal",
			Title:       "Primer Paso",
			Description: "Crea tu primer objetivo financiero",
			Icon:        "🎯",
			Category:    "goals",
			Requirement: Requirement{Type: MetricGoalsCreated, Value: decimal.NewFromInt(1), Description: "1 objetivo creado"},
			Rarity:      RarityCommon,
		},
		{
			ID:          "first_transaction",
			Title:       "Primera Transacción",
			Description: "Registra tu primera transacción",
			Icon:        "📝",
			Category:    "transactions",
			Requirement: Requirement{Type: MetricTransactionsCount, Value: decimal.NewFromInt(1), Description: "1 transacción registrada"},
			Rarity:      RarityCommon,
		},
		{
			ID:          "goal_master",
			Title:       "Maestro de Objetivos",
			Description: "Crea 5 objetivos diferentes",
			Icon:        "🏆",
			Category:    "goals",
			Requirement: Requirement{Type: MetricGoalsCreated, Value: decimal.NewFromInt(5), Description: "5 objetivos creados"},
			Rarity:      RarityRare,
		},
		{
			ID:          "first_completion",
			Title:       "Primera Victoria",
			Description: "Completa tu primer objetivo",
			Icon:        "✅",
			Category:    "goals",
			Requirement: Requirement{Type: MetricGoalsCompleted, Value: decimal.NewFromInt(1), Description: "1 objetivo completado"},
			Rarity:      RarityRare,
		},
		{
			ID:          "transaction_tracker",
			Title:       "Rastreador de Gastos",
			Description: "Registra 25 transacciones",
			Icon:        "📊",
			Category:    "transactions",
			Requirement: Requirement{Type: MetricTransactionsCount, Value: decimal.NewFromInt(25), Description: "25 transacciones registradas"},
			Rarity:      RarityRare,
		},
		{
			ID:          "transaction_master",
			Title:       "Experto en Transacciones",
			Description: "Registra 100 transacciones",
			Icon:        "💼",
			Category:    "transactions",
			Requirement: Requirement{Type: MetricTransactionsCount, Value: decimal.NewFromInt(100), Description: "100 transacciones registradas"},
			Rarity:      RarityEpic,
		},
		{
			ID:          "balance_positive_week",
			Title:       "Balance Positivo",
			Description: "Mantén balance positivo por 14 días",
			Icon:        "💰",
			Category:    "streaks",
			Requirement: Requirement{Type: MetricBalancePositiveDays, Value: decimal.NewFromInt(14), Description: "14 días con balance positivo"},
			Rarity:      RarityRare,
		},
		{
			ID:          "balance_positive_month",
			Title:       "Estabilidad Financiera",
			Description: "Mantén balance positivo por 30 días",
			Icon:        "🏦",
			Category:    "streaks",
			Requirement: Requirement{Type: MetricBalancePositiveDays, Value: decimal.NewFromInt(30), Description: "30 días con balance positivo"},
			Rarity:      RarityEpic,
		},
		{
			ID:          "savings_streak_week",
			Title:       "Racha de Ahorros",
			Description: "Ahorra dinero por 7 días consecutivos",
			Icon:        "🔥",
			Category:    "streaks",
			Requirement: Requirement{Type: MetricSavingsStreak, Value: decimal.NewFromInt(7), Description: "7 días consecutivos ahorrando"},
			Rarity:      RarityRare,
		},
		{
			ID:          "savings_streak_month",
			Title:       "Disciplina Financiera",
			Description: "Ahorra dinero por 30 días consecutivos",
			Icon:        "💪",
			Category:    "streaks",
			Requirement: Requirement{Type: MetricSavingsStreak, Value: decimal.NewFromInt(30), Description: "30 días consecutivos ahorrando"},
			Rarity:      RarityEpic,
		},
		{
			ID:          "big_saver",
			Title:       "Gran Ahorrador",
			Description: "Ahorra más de $500,000 en total",
			Icon:        "💎",
			Category:    "milestones",
			Requirement: Requirement{Type: MetricAmountSaved, Value: decimal.NewFromInt(500000), Description: "$500,000 ahorrados"},
			Rarity:      RarityEpic,
		},
		{
			ID:          "financial_guru",
			Title:       "Gurú Financiero",
			Description: "Alcanza un balance positivo de $1,000,000",
			Icon:        "🧙‍♂️",
			Category:    "milestones",
			Requirement: Requirement{Type: MetricAmountSaved, Value: decimal.NewFromInt(1000000), Description: "$1,000,000 de balance positivo"},
			Rarity:      RarityLegendary,
		},
		{
			ID:          "millionaire",
			Title:       "Millonario",
			Description: "Ahorra más de $2,000,000 en total",
			Icon:        "👑",
			Category:    "milestones",
			Requirement: Requirement{Type: MetricAmountSaved, Value: decimal.NewFromInt(2000000), Description: "$2,000,000 ahorrados"},
			Rarity:      RarityLegendary,
		},
	}
}
