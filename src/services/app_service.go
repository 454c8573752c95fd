package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/moneymetrics/src/config"
	"github.com/username/moneymetrics/src/database"
	"github.com/username/moneymetrics/src/goals"
	"github.com/username/moneymetrics/src/ledger"
	"github.com/username/moneymetrics/src/logger"
	"github.com/username/moneymetrics/src/models"
	"github.com/username/moneymetrics/src/notify"
	"github.com/username/moneymetrics/src/processors"
	"github.com/username/moneymetrics/src/security/validation"
)

// goalsSnapshot is the persisted envelope of the goal store: the goal
// list plus the monotonic ever-created counter backing goals_created.
type goalsSnapshot struct {
	Goals   []models.Goal `json:"goals"`
	Created int           `json:"goals_created"`
}

// AppService owns the four persisted stores and orchestrates the
// mutation pipeline: apply, persist, reconcile, evaluate, queue.
// Operations are synchronous and single-threaded by contract; the only
// concurrent entry point is the notification auto-dismiss timer, which
// touches nothing beyond the shown-set (guarded by shownMu).
type AppService struct {
	store      *database.Store
	ledger     *ledger.Ledger
	goals      *goals.Store
	engine     *processors.AchievementEngine
	reconciler *processors.Reconciler
	Queue      *notify.Queue

	shownMu sync.Mutex
	shown   map[string]bool

	newlyUnlocked []models.Achievement
	now           func() time.Time
}

var _ App = (*AppService)(nil)

// NewAppService wires the core over the given snapshot store. Call
// Load before the first operation.
func NewAppService(store *database.Store) *AppService {
	led := ledger.New()
	gs := goals.New()
	s := &AppService{
		store:      store,
		ledger:     led,
		goals:      gs,
		engine:     processors.NewAchievementEngine(),
		reconciler: processors.NewReconciler(led, gs),
		shown:      make(map[string]bool),
		now:        time.Now,
	}
	s.Queue = notify.NewQueue(config.NotificationTimeout(), s.markShown)
	return s
}

// Load restores the four persisted entries, falling back to defaults
// per entry on absence or corruption, reconciles every goal balance and
// runs a suppressed evaluation pass: achievements already earned by the
// restored data are unlocked (or stay unlocked) but nothing is queued,
// so a reload never replays old notifications.
func (s *AppService) Load() error {
	var txs []models.Transaction
	if _, err := s.store.LoadSnapshot(database.KeyTransactions, &txs); err != nil {
		logger.L.Warn("Transactions snapshot unreadable, starting empty", "error", err)
		txs = nil
	}
	s.ledger.Replace(txs)

	var gsnap goalsSnapshot
	if _, err := s.store.LoadSnapshot(database.KeyGoals, &gsnap); err != nil {
		logger.L.Warn("Goals snapshot unreadable, starting empty", "error", err)
		gsnap = goalsSnapshot{}
	}
	s.goals.Replace(gsnap.Goals, gsnap.Created)

	var achievements []models.Achievement
	if _, err := s.store.LoadSnapshot(database.KeyAchievements, &achievements); err != nil {
		logger.L.Warn("Achievements snapshot unreadable, using default catalog", "error", err)
		achievements = nil
	}
	s.engine.Replace(achievements)

	var shownIDs []string
	if _, err := s.store.LoadSnapshot(database.KeyShown, &shownIDs); err != nil {
		logger.L.Warn("Shown-achievements snapshot unreadable, starting empty", "error", err)
		shownIDs = nil
	}
	s.shownMu.Lock()
	s.shown = make(map[string]bool, len(shownIDs))
	for _, id := range shownIDs {
		s.shown[id] = true
	}
	s.shownMu.Unlock()

	s.reconciler.ReconcileAll()

	// Initial-load suppression: evaluate against the restored data so
	// unlock state catches up, but queue nothing.
	s.engine.Evaluate(s.ledger, s.goals, s.shownCopy())
	s.persistAchievements()

	logger.L.Info("Application state loaded",
		"transactions", s.ledger.Len(),
		"goals", s.goals.Len(),
		"shownAchievements", len(shownIDs))
	return nil
}

// ResetAll clears the four persisted entries and returns the in-memory
// state to first-run defaults.
func (s *AppService) ResetAll() error {
	for _, key := range []string{database.KeyTransactions, database.KeyGoals, database.KeyAchievements, database.KeyShown} {
		if err := s.store.DeleteSnapshot(key); err != nil {
			logger.L.Error("Failed to delete snapshot on reset", "key", key, "error", err)
		}
	}
	s.ledger.Replace(nil)
	s.goals.Replace(nil, 0)
	s.engine.Reset()
	s.shownMu.Lock()
	s.shown = make(map[string]bool)
	s.shownMu.Unlock()
	s.newlyUnlocked = nil
	s.Queue.Clear()
	logger.L.Info("Application state reset to defaults")
	return nil
}

// AddTransaction validates and records a monetary event. A non-empty
// goalID links the transaction to that goal as a deposit/withdrawal;
// the goal's emoji and color are copied into the link as a display
// cache. The linked goal's balance is reconciled before achievements
// are re-evaluated.
func (s *AppService) AddTransaction(amountStr, description string, typ models.TransactionType, goalID string) (models.Transaction, error) {
	amount, err := validation.ParseAmount(amountStr)
	if err != nil {
		return models.Transaction{}, err
	}
	if !typ.IsValid() {
		return models.Transaction{}, fmt.Errorf("%w: unknown transaction type %q", validation.ErrValidationFailed, typ)
	}
	description = validation.SanitizeText(validation.StripUnprintable(description))
	if err := validation.ValidateDescription(description); err != nil {
		return models.Transaction{}, err
	}

	var link *models.GoalLink
	if goalID != "" {
		g, ok := s.goals.Get(goalID)
		if !ok {
			return models.Transaction{}, fmt.Errorf("%w: unknown goal %q", validation.ErrValidationFailed, goalID)
		}
		link = &models.GoalLink{GoalID: g.ID, GoalEmoji: g.Emoji, GoalColor: g.Color}
	}

	tx, err := s.ledger.Add(amount, description, typ, link)
	if err != nil {
		return models.Transaction{}, err
	}
	s.persistTransactions()
	s.afterLedgerMutation(goalID)
	return tx, nil
}

// UpdateTransaction edits the description and/or amount of an existing
// transaction. Unknown ids are a silent no-op. When the transaction is
// linked to a goal, an amount change re-reconciles that goal.
func (s *AppService) UpdateTransaction(id string, upd TransactionUpdate) error {
	var ledUpd ledger.Update
	if upd.AmountStr != nil {
		amount, err := validation.ParseAmount(*upd.AmountStr)
		if err != nil {
			return err
		}
		ledUpd.Amount = &amount
	}
	if upd.Description != nil {
		description := validation.SanitizeText(validation.StripUnprintable(*upd.Description))
		if err := validation.ValidateDescription(description); err != nil {
			return err
		}
		ledUpd.Description = &description
	}
	if ledUpd.Amount == nil && ledUpd.Description == nil {
		return nil
	}

	goalID := ""
	if tx, ok := s.ledger.Get(id); ok && tx.GoalLink != nil {
		goalID = tx.GoalLink.GoalID
	}
	if err := s.ledger.Update(id, ledUpd); err != nil {
		return err
	}
	s.persistTransactions()
	s.afterLedgerMutation(goalID)
	return nil
}

// DeleteTransaction removes a transaction. Unknown ids are a silent
// no-op. Deleting a goal-linked entry re-reconciles that goal.
func (s *AppService) DeleteTransaction(id string) error {
	goalID := ""
	if tx, ok := s.ledger.Get(id); ok && tx.GoalLink != nil {
		goalID = tx.GoalLink.GoalID
	}
	if !s.ledger.Delete(id) {
		return nil
	}
	s.persistTransactions()
	s.afterLedgerMutation(goalID)
	return nil
}

// Transactions returns the ledger, newest first.
func (s *AppService) Transactions() []models.Transaction {
	return s.ledger.All()
}

// AddGoal validates and creates a savings goal with a zero balance.
func (s *AppService) AddGoal(in GoalInput) (models.Goal, error) {
	name := validation.SanitizeText(validation.StripUnprintable(in.Name))
	if err := validation.ValidateGoalName(name); err != nil {
		return models.Goal{}, err
	}
	target, err := validation.ParseAmount(in.TargetAmountStr)
	if err != nil {
		return models.Goal{}, err
	}
	if err := validation.ValidateDeadline(in.Deadline, s.now()); err != nil {
		return models.Goal{}, err
	}

	g := s.goals.Add(goals.Input{
		Name:         name,
		TargetAmount: target,
		Deadline:     in.Deadline,
		Color:        in.Color,
		Emoji:        in.Emoji,
	})
	s.persistGoals()
	s.evaluateAndQueue()
	return g, nil
}

// UpdateGoal merges edited fields into a goal. Unknown ids are a
// silent no-op.
func (s *AppService) UpdateGoal(id string, upd GoalUpdate) error {
	var storeUpd goals.Update
	if upd.Name != nil {
		name := validation.SanitizeText(validation.StripUnprintable(*upd.Name))
		storeUpd.Name = &name
	}
	if upd.TargetAmountStr != nil {
		target, err := validation.ParseAmount(*upd.TargetAmountStr)
		if err != nil {
			return err
		}
		storeUpd.TargetAmount = &target
	}
	if upd.Deadline != nil {
		if err := validation.ValidateDeadline(*upd.Deadline, s.now()); err != nil {
			return err
		}
		storeUpd.Deadline = upd.Deadline
	}
	storeUpd.Color = upd.Color
	storeUpd.Emoji = upd.Emoji

	if err := s.goals.Update(id, storeUpd); err != nil {
		return err
	}
	s.persistGoals()
	// A target change can complete or un-complete a goal in progress
	// terms, so re-evaluate.
	s.evaluateAndQueue()
	return nil
}

// DeleteGoal removes a goal. Linked transactions are kept; their
// dangling links are tolerated by every aggregate. The ever-created
// counter is not decremented.
func (s *AppService) DeleteGoal(id string) error {
	if !s.goals.Delete(id) {
		return nil
	}
	s.persistGoals()
	s.evaluateAndQueue()
	return nil
}

// ReorderGoals moves a goal within the display order; order ranks are
// re-densified to 0..N-1. Out-of-range indices are rejected.
func (s *AppService) ReorderGoals(fromIndex, toIndex int) error {
	if err := s.goals.Reorder(fromIndex, toIndex); err != nil {
		return err
	}
	s.persistGoals()
	return nil
}

// QuickAdd is the one-click deposit shortcut. It is deliberately routed
// through the ledger as a linked income entry so reconciliation stays
// the single source of truth for goal balances.
func (s *AppService) QuickAdd(goalID, amountStr string) error {
	g, ok := s.goals.Get(goalID)
	if !ok {
		return fmt.Errorf("%w: unknown goal %q", validation.ErrValidationFailed, goalID)
	}
	_, err := s.AddTransaction(amountStr, fmt.Sprintf("Depósito: %s", g.Name), models.TypeIncome, goalID)
	return err
}

// Goals returns the goals sorted by display order.
func (s *AppService) Goals() []models.Goal {
	return s.goals.All()
}

// Achievements returns the catalog with its current unlock state.
func (s *AppService) Achievements() []models.Achievement {
	return s.engine.All()
}

// AchievementProgress returns the derived progress view for every
// achievement.
func (s *AppService) AchievementProgress() []models.AchievementProgress {
	return s.engine.Progress(s.ledger, s.goals)
}

// CheckNewAchievements runs an explicit evaluation pass and returns the
// achievements newly unlocked since the last ClearNewlyUnlocked call.
func (s *AppService) CheckNewAchievements() []models.Achievement {
	s.evaluateAndQueue()
	out := make([]models.Achievement, len(s.newlyUnlocked))
	copy(out, s.newlyUnlocked)
	return out
}

// ClearNewlyUnlocked forgets the accumulated newly-unlocked list. The
// notification queue is unaffected.
func (s *AppService) ClearNewlyUnlocked() {
	s.newlyUnlocked = nil
}

// Statistics summarizes the ledger for the statistics tab.
func (s *AppService) Statistics() models.Statistics {
	stats := models.Statistics{
		TotalIncome:   s.ledger.TotalByType(models.TypeIncome),
		TotalExpenses: s.ledger.TotalByType(models.TypeExpense),
	}
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpenses)
	for _, tx := range s.ledger.All() {
		if tx.Type == models.TypeIncome {
			stats.IncomeCount++
		} else {
			stats.ExpenseCount++
		}
	}
	if stats.IncomeCount > 0 {
		stats.AverageIncome = stats.TotalIncome.Div(decimal.NewFromInt(int64(stats.IncomeCount))).Round(2)
	}
	if stats.ExpenseCount > 0 {
		stats.AverageExpense = stats.TotalExpenses.Div(decimal.NewFromInt(int64(stats.ExpenseCount))).Round(2)
	}
	return stats
}

// afterLedgerMutation finishes a ledger mutation: reconcile the touched
// goal (if any), then re-evaluate the rules.
func (s *AppService) afterLedgerMutation(goalID string) {
	if goalID != "" {
		s.reconciler.ReconcileGoal(goalID)
		s.persistGoals()
	}
	s.evaluateAndQueue()
}

// evaluateAndQueue re-evaluates the rules against the current state and
// queues any newly satisfied, not-yet-shown achievement. Evaluate
// refreshes the progress cache itself.
func (s *AppService) evaluateAndQueue() {
	newly := s.engine.Evaluate(s.ledger, s.goals, s.shownCopy())
	if len(newly) > 0 {
		s.newlyUnlocked = append(s.newlyUnlocked, newly...)
		s.Queue.Push(newly...)
	}
	s.persistAchievements()
}

// markShown is the queue's dismissal callback: the id joins the
// persisted shown-set so the achievement is never re-queued.
func (s *AppService) markShown(id string) {
	s.shownMu.Lock()
	defer s.shownMu.Unlock()
	if s.shown[id] {
		return
	}
	s.shown[id] = true
	if err := s.store.SaveSnapshot(database.KeyShown, s.shownIDsLocked()); err != nil {
		logger.L.Error("Failed to persist shown-achievements set", "error", err)
	}
}

func (s *AppService) shownCopy() map[string]bool {
	s.shownMu.Lock()
	defer s.shownMu.Unlock()
	out := make(map[string]bool, len(s.shown))
	for id := range s.shown {
		out[id] = true
	}
	return out
}

func (s *AppService) shownIDsLocked() []string {
	ids := make([]string, 0, len(s.shown))
	for id := range s.shown {
		ids = append(ids, id)
	}
	return ids
}

// Persistence is best effort: in-memory state is authoritative for the
// session, so a failed snapshot write is logged and the mutation stands
// rather than surfacing a half-applied error to the caller.
func (s *AppService) persistTransactions() {
	if err := s.store.SaveSnapshot(database.KeyTransactions, s.ledger.All()); err != nil {
		logger.L.Error("Failed to persist transactions snapshot", "error", err)
	}
}

func (s *AppService) persistGoals() {
	if err := s.store.SaveSnapshot(database.KeyGoals, goalsSnapshot{Goals: s.goals.All(), Created: s.goals.Created()}); err != nil {
		logger.L.Error("Failed to persist goals snapshot", "error", err)
	}
}

func (s *AppService) persistAchievements() {
	if err := s.store.SaveSnapshot(database.KeyAchievements, s.engine.All()); err != nil {
		logger.L.Error("Failed to persist achievements snapshot", "error", err)
	}
}
