package engine

import (
	"cmp"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
)

// Selector is the deterministic next-concept ranking used whenever the
// recommendation adapter has nothing usable.
type Selector struct {
	threshold        float64
	frustrationPivot float64
	stuckMastery     float64
	stuckAttempts    int
}

// NewSelector creates a Selector with cfg's thresholds.
func NewSelector(cfg Config) Selector {
	cfg = cfg.withDefaults()
	return Selector{
		threshold:        cfg.EligibilityThreshold,
		frustrationPivot: cfg.FrustrationPivot,
		stuckMastery:     cfg.StuckMastery,
		stuckAttempts:    cfg.StuckAttempts,
	}
}

// Input is the snapshot the selector ranks.
type Input struct {
	Graph    *concept.Graph
	CourseID string
	// Scope is every active concept in scope, in course order.
	Scope []concept.Concept
	// Eligible is the subset of Scope whose prerequisites are mastered.
	Eligible []concept.Concept
	States   map[string]mastery.State
	// Current is the user's most recently touched state, if any. It may
	// belong to a concept outside Scope.
	Current *mastery.State
}

// Select returns the concept to study next, or nil when nothing is in
// scope.
func (s Selector) Select(in Input) *concept.Concept {
	if len(in.Scope) == 0 {
		return nil
	}

	if cur := in.Current; cur != nil {
		if cur.Frustration > s.frustrationPivot {
			if c := s.pivot(in, *cur); c != nil {
				return c
			}
		}
		if cur.Mastery < s.stuckMastery && cur.Attempts > s.stuckAttempts {
			others := exclude(in.Eligible, cur.ConceptID)
			if c := lowest(others, in.States, true); c != nil {
				return c
			}
		}
	}

	if len(in.Eligible) > 0 {
		return lowest(in.Eligible, in.States, true)
	}
	return s.absolute(in)
}

// pivot steps back to the weakest unmastered prerequisite of the current
// concept, or sideways to the weakest eligible sibling in its course.
// Sibling ties go to the one seen longest ago.
func (s Selector) pivot(in Input, cur mastery.State) *concept.Concept {
	var prereqs []concept.Concept
	if in.Graph != nil {
		for _, p := range in.Graph.Prerequisites(cur.ConceptID) {
			if !p.Active || !concept.InScope(p, in.CourseID) {
				continue
			}
			if in.States[p.ID].Mastery < s.threshold {
				prereqs = append(prereqs, p)
			}
		}
	}
	if c := lowest(prereqs, in.States, false); c != nil {
		return c
	}

	if in.Graph == nil {
		return nil
	}
	current, ok := in.Graph.Concept(cur.ConceptID)
	if !ok {
		return nil
	}
	var siblings []concept.Concept
	for _, c := range in.Eligible {
		if c.CourseID == current.CourseID && c.ID != current.ID {
			siblings = append(siblings, c)
		}
	}
	return lowest(siblings, in.States, true)
}

// absolute picks the weakest attempted concept in scope, or the first
// concept in course order when none has been attempted.
func (s Selector) absolute(in Input) *concept.Concept {
	var attempted []concept.Concept
	for _, c := range in.Scope {
		if _, ok := in.States[c.ID]; ok {
			attempted = append(attempted, c)
		}
	}
	if c := lowest(attempted, in.States, false); c != nil {
		return c
	}
	first := in.Scope[0]
	return &first
}

// lowest returns the concept with the smallest mastery. With byLastSeen,
// ties go to the one seen longest ago; never-attempted concepts count as
// mastery 0 seen at the zero time. Remaining ties follow course order.
func lowest(concepts []concept.Concept, states map[string]mastery.State, byLastSeen bool) *concept.Concept {
	if len(concepts) == 0 {
		return nil
	}
	best := concepts[0]
	for _, c := range concepts[1:] {
		if compareWeakness(c, best, states, byLastSeen) < 0 {
			best = c
		}
	}
	return &best
}

func compareWeakness(a, b concept.Concept, states map[string]mastery.State, byLastSeen bool) int {
	sa, sb := states[a.ID], states[b.ID]
	if c := cmp.Compare(sa.Mastery, sb.Mastery); c != 0 {
		return c
	}
	if byLastSeen {
		if c := sa.LastSeen.Compare(sb.LastSeen); c != 0 {
			return c
		}
	}
	return concept.CompareOrder(a, b)
}

func exclude(concepts []concept.Concept, id string) []concept.Concept {
	out := make([]concept.Concept, 0, len(concepts))
	for _, c := range concepts {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
