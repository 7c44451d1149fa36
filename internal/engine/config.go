package engine

import (
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
)

// DefaultAdapterBudget bounds every recommendation adapter call.
const DefaultAdapterBudget = 20 * time.Second

// DefaultHistoryLimit caps the attempt history sent to the adapter.
const DefaultHistoryLimit = 50

// Config holds the engine's tunable thresholds.
type Config struct {
	// EligibilityThreshold is the prerequisite mastery needed to unlock a
	// concept.
	EligibilityThreshold float64

	// FrustrationPivot is the frustration above which selection steps back
	// to a prerequisite or sideways to a sibling.
	FrustrationPivot float64

	// A learner is stuck on a concept when mastery is below StuckMastery
	// after more than StuckAttempts attempts.
	StuckMastery  float64
	StuckAttempts int

	AdapterBudget time.Duration
	HistoryLimit  int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		EligibilityThreshold: concept.DefaultMasteryThreshold,
		FrustrationPivot:     mastery.FrustrationHigh,
		StuckMastery:         0.4,
		StuckAttempts:        3,
		AdapterBudget:        DefaultAdapterBudget,
		HistoryLimit:         DefaultHistoryLimit,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EligibilityThreshold <= 0 {
		c.EligibilityThreshold = d.EligibilityThreshold
	}
	if c.FrustrationPivot <= 0 {
		c.FrustrationPivot = d.FrustrationPivot
	}
	if c.StuckMastery <= 0 {
		c.StuckMastery = d.StuckMastery
	}
	if c.StuckAttempts <= 0 {
		c.StuckAttempts = d.StuckAttempts
	}
	if c.AdapterBudget <= 0 {
		c.AdapterBudget = d.AdapterBudget
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = d.HistoryLimit
	}
	return c
}

// BudgetFor returns an adapter budget that is strictly below the
// adapter's own request timeout. A non-positive budget means
// DefaultAdapterBudget; a non-positive timeout means unbounded.
func BudgetFor(budget, adapterTimeout time.Duration) time.Duration {
	if budget <= 0 {
		budget = DefaultAdapterBudget
	}
	if adapterTimeout <= 0 || budget < adapterTimeout {
		return budget
	}
	if b := adapterTimeout * 2 / 3; b > 0 {
		return b
	}
	return adapterTimeout / 2
}
