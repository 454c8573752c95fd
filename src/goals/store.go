// Package goals holds the ordered savings goals and their structural
// operations. Goal balances are derived values owned by the reconciler.
package goals

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/username/moneymetrics/src/models"
	"github.com/username/moneymetrics/src/security/validation"
)

// Input carries the user-provided fields of a new goal.
type Input struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Color        string
	Emoji        string
}

// Update names the goal fields a caller may edit directly.
// CurrentAmount is deliberately absent: balances only change through
// reconciliation against the ledger.
type Update struct {
	Name         *string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
	Color        *string
	Emoji        *string
}

// Store is the in-memory goal collection. Goals are kept sorted by
// their order rank, which stays a dense 0..N-1 sequence after reorders.
type Store struct {
	goals   []models.Goal
	created int // goals ever created, never decremented
}

// New returns an empty goal store.
func New() *Store {
	return &Store{}
}

// Add assigns an id and the next order rank to the new goal and appends
// it. New goals start with a zero balance and bump the ever-created
// counter.
func (s *Store) Add(in Input) models.Goal {
	emoji := in.Emoji
	if emoji == "" {
		emoji = models.DefaultGoalEmoji
	}
	g := models.Goal{
		ID:            uuid.NewString(),
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      in.Deadline,
		Color:         in.Color,
		Emoji:         emoji,
		Order:         len(s.goals),
	}
	s.goals = append(s.goals, g)
	s.created++
	return g
}

// Get returns the goal with the given id.
func (s *Store) Get(id string) (models.Goal, bool) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}

// Update merges the given fields into the identified goal. An unknown
// id is a silent no-op.
func (s *Store) Update(id string, upd Update) error {
	if upd.Name != nil {
		if err := validation.ValidateGoalName(*upd.Name); err != nil {
			return err
		}
	}
	if upd.TargetAmount != nil {
		if err := validation.ValidateAmount(*upd.TargetAmount); err != nil {
			return err
		}
	}
	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.goals[i].Name = *upd.Name
		}
		if upd.TargetAmount != nil {
			s.goals[i].TargetAmount = *upd.TargetAmount
		}
		if upd.Deadline != nil {
			s.goals[i].Deadline = *upd.Deadline
		}
		if upd.Color != nil {
			s.goals[i].Color = *upd.Color
		}
		if upd.Emoji != nil {
			s.goals[i].Emoji = *upd.Emoji
		}
		return nil
	}
	return nil
}

// SetCurrentAmount overwrites a goal balance. Reserved for the
// reconciler; an unknown id is a no-op.
func (s *Store) SetCurrentAmount(id string, amount decimal.Decimal) {
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i].CurrentAmount = amount
			return
		}
	}
}

// Delete removes the identified goal. Remaining order values are not
// renumbered; order is only ever used as a relative sort key. Linked
// transactions keep their now-dangling goal link.
func (s *Store) Delete(id string) bool {
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder moves the goal at fromIndex of the order-sorted sequence to
// toIndex, then reassigns every order value to its positional index so
// the ranks stay a dense 0..N-1 sequence.
func (s *Store) Reorder(fromIndex, toIndex int) error {
	n := len(s.goals)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return fmt.Errorf("%w: reorder index out of range (%d -> %d of %d)", validation.ErrValidationFailed, fromIndex, toIndex, n)
	}

	ordered := s.All()
	moved := ordered[fromIndex]
	ordered = append(ordered[:fromIndex], ordered[fromIndex+1:]...)

	rest := ordered
	ordered = append([]models.Goal{}, rest[:toIndex]...)
	ordered = append(ordered, moved)
	ordered = append(ordered, rest[toIndex:]...)

	for i := range ordered {
		ordered[i].Order = i
	}
	s.goals = ordered
	return nil
}

// All returns a copy of the goals sorted by order rank.
func (s *Store) All() []models.Goal {
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Len returns the number of live goals.
func (s *Store) Len() int {
	return len(s.goals)
}

// Created returns how many goals were ever created, independent of
// later deletions. Feeds the goals_created metric.
func (s *Store) Created() int {
	return s.created
}

// CompletedCount returns how many live goals have reached their target.
func (s *Store) CompletedCount() int {
	count := 0
	for _, g := range s.goals {
		if g.IsCompleted() {
			count++
		}
	}
	return count
}

// Replace swaps in a restored goal list and ever-created counter, e.g.
// after loading a snapshot. Goals saved by versions without an emoji
// get the default one.
func (s *Store) Replace(goals []models.Goal, created int) {
	s.goals = make([]models.Goal, len(goals))
	copy(s.goals, goals)
	for i := range s.goals {
		if s.goals[i].Emoji == "" {
			s.goals[i].Emoji = models.DefaultGoalEmoji
		}
	}
	if created < len(goals) {
		created = len(goals)
	}
	s.created = created
}
