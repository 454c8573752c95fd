// Package processors contains the derived-state machinery: the
// reconciler that keeps goal balances consistent with the ledger, and
// the achievement engine that evaluates unlock rules over aggregates.
package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/moneymetrics/src/goals"
	"github.com/username/moneymetrics/src/ledger"
	"github.com/username/moneymetrics/src/logger"
)

// Reconciler enforces the goal-balance invariant: a goal's current
// amount always equals the clamped signed sum of its linked ledger
// entries. Recomputation is a full pass over the linked entries,
// correctness over performance at personal-finance scale.
type Reconciler struct {
	ledger *ledger.Ledger
	goals  *goals.Store
}

// NewReconciler wires a reconciler over the given stores.
func NewReconciler(led *ledger.Ledger, gs *goals.Store) *Reconciler {
	return &Reconciler{ledger: led, goals: gs}
}

// ReconcileGoal recomputes the balance of one goal from its linked
// transactions. A negative sum is clamped to zero; withdrawals are
// validated upstream but the engine defends regardless. Unknown or
// deleted goal ids are tolerated: dangling links must not crash
// aggregation.
func (r *Reconciler) ReconcileGoal(goalID string) {
	if goalID == "" {
		return
	}
	sum := decimal.Zero
	for _, tx := range r.ledger.LinkedTo(goalID) {
		sum = sum.Add(tx.Signed())
	}
	if sum.IsNegative() {
		logger.L.Debug("Clamping negative goal balance to zero", "goalID", goalID, "sum", sum.String())
		sum = decimal.Zero
	}
	r.goals.SetCurrentAmount(goalID, sum)
}

// ReconcileAll recomputes every goal balance, e.g. after restoring
// persisted state.
func (r *Reconciler) ReconcileAll() {
	for _, g := range r.goals.All() {
		r.ReconcileGoal(g.ID)
	}
}
