// Package ledger holds the ordered transaction history, newest first,
// and answers the aggregate queries the rest of the core derives from.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/username/moneymetrics/src/models"
	"github.com/username/moneymetrics/src/security/validation"
)

// Update names the only transaction fields that may change after
// creation. Type, date and goal link are immutable.
type Update struct {
	Description *string
	Amount      *decimal.Decimal
}

// Ledger is the in-memory transaction store. Entries are kept newest
// first, which is the display and iteration contract.
type Ledger struct {
	entries []models.Transaction
	now     func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// SetClock overrides the timestamp source. Intended for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Add constructs a transaction with a fresh id and the current
// timestamp and prepends it to the ledger. Amount and description are
// re-checked here as a last line of defense; callers validate first.
func (l *Ledger) Add(amount decimal.Decimal, description string, typ models.TransactionType, link *models.GoalLink) (models.Transaction, error) {
	if err := validation.ValidateAmount(amount); err != nil {
		return models.Transaction{}, err
	}
	if err := validation.ValidateStringNotEmpty(description, "description"); err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		Type:        typ,
		Date:        l.now(),
		GoalLink:    link,
	}
	l.entries = append([]models.Transaction{tx}, l.entries...)
	return tx, nil
}

// Update replaces the given fields of the identified transaction. An
// unknown id is a silent no-op. An invalid amount rejects the whole
// update.
func (l *Ledger) Update(id string, upd Update) error {
	if upd.Amount != nil {
		if err := validation.ValidateAmount(*upd.Amount); err != nil {
			return err
		}
	}
	if upd.Description != nil {
		if err := validation.ValidateStringNotEmpty(*upd.Description, "description"); err != nil {
			return err
		}
	}
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		if upd.Description != nil {
			l.entries[i].Description = *upd.Description
		}
		if upd.Amount != nil {
			l.entries[i].Amount = *upd.Amount
		}
		return nil
	}
	return nil
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (models.Transaction, bool) {
	for _, tx := range l.entries {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// Delete removes the identified transaction. An unknown id is a silent
// no-op; the returned flag reports whether anything was removed.
func (l *Ledger) Delete(id string) bool {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the ledger, newest first.
func (l *Ledger) All() []models.Transaction {
	out := make([]models.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// TotalByType sums the stored (unsigned) amounts of all entries of the
// given type.
func (l *Ledger) TotalByType(typ models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l.entries {
		if tx.Type == typ {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance is total income minus total expenses.
func (l *Ledger) Balance() decimal.Decimal {
	return l.TotalByType(models.TypeIncome).Sub(l.TotalByType(models.TypeExpense))
}

// LinkedTo returns every entry linked to the given goal in insertion
// (oldest first) order. Used by the reconciler.
func (l *Ledger) LinkedTo(goalID string) []models.Transaction {
	var out []models.Transaction
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].LinkedTo(goalID) {
			out = append(out, l.entries[i])
		}
	}
	return out
}

// NetSince returns the signed sum of all entries dated at or after
// cutoff. Feeds the savings-streak metric.
func (l *Ledger) NetSince(cutoff time.Time) decimal.Decimal {
	net := decimal.Zero
	for _, tx := range l.entries {
		if !tx.Date.Before(cutoff) {
			net = net.Add(tx.Signed())
		}
	}
	return net
}

// Replace swaps in a restored transaction history, e.g. after loading a
// snapshot.
func (l *Ledger) Replace(entries []models.Transaction) {
	l.entries = make([]models.Transaction, len(entries))
	copy(l.entries, entries)
}
