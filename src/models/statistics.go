package models

import "github.com/shopspring/decimal"

// Statistics is a derived summary of the ledger shown on the statistics
// tab. Averages are zero when the corresponding count is zero.
type Statistics struct {
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	Balance        decimal.Decimal `json:"balance"`
	IncomeCount    int             `json:"income_count"`
	ExpenseCount   int             `json:"expense_count"`
	AverageIncome  decimal.Decimal `json:"average_income"`
	AverageExpense decimal.Decimal `json:"average_expense"`
}
