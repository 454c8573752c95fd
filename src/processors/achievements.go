package processors

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/username/moneymetrics/src/config"
	"github.com/username/moneymetrics/src/goals"
	"github.com/username/moneymetrics/src/ledger"
	"github.com/username/moneymetrics/src/logger"
	"github.com/username/moneymetrics/src/models"
)

const progressCacheKey = "achievement-progress"

// AchievementEngine owns the achievement catalog state and evaluates
// the unlock rules against ledger and goal aggregates. Unlocking is
// irreversible; the engine never re-locks an achievement regardless of
// how the aggregates move afterwards.
type AchievementEngine struct {
	achievements []models.Achievement
	progress     *cache.Cache
	now          func() time.Time
}

// NewAchievementEngine starts from the default locked catalog. Progress
// snapshots are cached briefly since the UI reads them far more often
// than state changes.
func NewAchievementEngine() *AchievementEngine {
	ttl := config.ProgressCacheTTL()
	return &AchievementEngine{
		achievements: models.DefaultAchievements(),
		progress:     cache.New(ttl, 2*ttl),
		now:          time.Now,
	}
}

// SetClock overrides the unlock timestamp source. Intended for tests.
func (e *AchievementEngine) SetClock(now func() time.Time) {
	e.now = now
}

// All returns a copy of the catalog with its current unlock state.
func (e *AchievementEngine) All() []models.Achievement {
	out := make([]models.Achievement, len(e.achievements))
	copy(out, e.achievements)
	return out
}

// Replace swaps in a restored catalog, e.g. after loading a snapshot.
// An empty list falls back to the default catalog.
func (e *AchievementEngine) Replace(achievements []models.Achievement) {
	if len(achievements) == 0 {
		e.achievements = models.DefaultAchievements()
	} else {
		e.achievements = make([]models.Achievement, len(achievements))
		copy(e.achievements, achievements)
	}
	e.Invalidate()
}

// Reset re-locks everything back to the default catalog.
func (e *AchievementEngine) Reset() {
	e.achievements = models.DefaultAchievements()
	e.Invalidate()
}

// Invalidate drops the cached progress snapshot. Call after any ledger
// or goal mutation.
func (e *AchievementEngine) Invalidate() {
	e.progress.Delete(progressCacheKey)
}

// aggregates are the derived inputs the metric rules read.
type aggregates struct {
	goalsCreated   int
	goalsCompleted int
	txCount        int
	totalSavings   decimal.Decimal
	recentNet      decimal.Decimal
}

func (e *AchievementEngine) gather(led *ledger.Ledger, gs *goals.Store) aggregates {
	return aggregates{
		goalsCreated:   gs.Created(),
		goalsCompleted: gs.CompletedCount(),
		txCount:        led.Len(),
		totalSavings:   led.Balance(),
		recentNet:      led.NetSince(e.now().AddDate(0, 0, -7)),
	}
}

// metricValue maps a metric type to its current value. The two streak
// metrics are deliberate proxies carried over from the original design:
// balance_positive_days is 1 while the balance is positive, and
// savings_streak is 7 while the last seven days net positive. Neither
// counts real consecutive days.
func metricValue(typ models.MetricType, agg aggregates) decimal.Decimal {
	switch typ {
	case models.MetricGoalsCreated:
		return decimal.NewFromInt(int64(agg.goalsCreated))
	case models.MetricGoalsCompleted:
		return decimal.NewFromInt(int64(agg.goalsCompleted))
	case models.MetricTransactionsCount:
		return decimal.NewFromInt(int64(agg.txCount))
	case models.MetricBalancePositiveDays:
		if agg.totalSavings.IsPositive() {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case models.MetricSavingsStreak:
		if agg.recentNet.IsPositive() {
			return decimal.NewFromInt(7)
		}
		return decimal.Zero
	case models.MetricAmountSaved:
		if agg.totalSavings.IsNegative() {
			return decimal.Zero
		}
		return agg.totalSavings
	}
	logger.L.Warn("Unknown achievement metric type", "type", string(typ))
	return decimal.Zero
}

// Progress recomputes the derived progress view for every achievement,
// serving a cached snapshot when the state has not changed since.
func (e *AchievementEngine) Progress(led *ledger.Ledger, gs *goals.Store) []models.AchievementProgress {
	if cached, found := e.progress.Get(progressCacheKey); found {
		return cached.([]models.AchievementProgress)
	}

	agg := e.gather(led, gs)
	out := make([]models.AchievementProgress, 0, len(e.achievements))
	for _, a := range e.achievements {
		current := metricValue(a.Requirement.Type, agg)
		out = append(out, models.AchievementProgress{
			AchievementID: a.ID,
			CurrentValue:  current,
			TargetValue:   a.Requirement.Value,
			IsCompleted:   current.GreaterThanOrEqual(a.Requirement.Value),
		})
	}
	e.progress.SetDefault(progressCacheKey, out)
	return out
}

// Evaluate runs one evaluation pass: every locked achievement whose
// metric has reached its requirement is unlocked and stamped. The
// returned slice holds, in catalog order, the achievements unlocked in
// this pass whose ids are not in the already-shown set; those are the
// ones to queue for notification.
func (e *AchievementEngine) Evaluate(led *ledger.Ledger, gs *goals.Store, shown map[string]bool) []models.Achievement {
	e.Invalidate()
	agg := e.gather(led, gs)

	var newly []models.Achievement
	for i := range e.achievements {
		a := &e.achievements[i]
		if a.IsUnlocked {
			continue
		}
		if metricValue(a.Requirement.Type, agg).LessThan(a.Requirement.Value) {
			continue
		}
		unlockedAt := e.now()
		a.IsUnlocked = true
		a.UnlockedAt = &unlockedAt
		logger.L.Info("Achievement unlocked", "id", a.ID, "title", a.Title, "rarity", string(a.Rarity))
		if !shown[a.ID] {
			newly = append(newly, *a)
		}
	}
	return newly
}
