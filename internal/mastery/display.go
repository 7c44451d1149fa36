package mastery

// Level is a coarse, display-oriented reading of a state.
type Level string

const (
	LevelNew        Level = "new"
	LevelLearning   Level = "learning"
	LevelStruggling Level = "struggling"
	LevelMastered   Level = "mastered"
)

// ReportThreshold is the mastery score at which a concept is reported as
// mastered in progress views. Unlocking dependents uses the lower
// eligibility threshold instead.
const ReportThreshold = 0.7

// FrustrationHigh is the frustration score above which a learner is
// considered frustrated.
const FrustrationHigh = 0.7

// LevelOf maps a state to its display level.
func LevelOf(s State) Level {
	switch {
	case !s.Touched():
		return LevelNew
	case s.Mastery >= ReportThreshold:
		return LevelMastered
	case s.Frustration > FrustrationHigh:
		return LevelStruggling
	default:
		return LevelLearning
	}
}

// Icon returns the display icon for a level.
func (l Level) Icon() string {
	switch l {
	case LevelNew:
		return "·"
	case LevelLearning:
		return "📖"
	case LevelStruggling:
		return "😣"
	case LevelMastered:
		return "✅"
	default:
		return "?"
	}
}
