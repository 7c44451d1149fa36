package mastery

import "time"

// State is an immutable snapshot of one learner's signals for one concept.
// The zero value is the state of a concept the learner has never attempted.
type State struct {
	UserID      string
	ConceptID   string
	Mastery     float64
	Confidence  float64
	Frustration float64
	Attempts    int
	LastSeen    time.Time
	// Recommended is set when the concept was last chosen by the
	// recommendation adapter. Informational only.
	Recommended bool
	CreatedAt   time.Time
}

// Fresh returns the initial state for a (user, concept) pair.
func Fresh(userID, conceptID string) State {
	return State{UserID: userID, ConceptID: conceptID}
}

// Touched reports whether the learner has ever been graded on the concept.
func (s State) Touched() bool {
	return s.Attempts > 0
}

// Summary is the compact view of a state shared with the recommendation
// adapter and the HTTP transport.
type Summary struct {
	Mastery     float64 `json:"mastery_score"`
	Confidence  float64 `json:"confidence_score"`
	Frustration float64 `json:"frustration_score"`
	Attempts    int     `json:"attempts"`
}

// Summary returns the compact view of s.
func (s State) Summary() Summary {
	return Summary{
		Mastery:     s.Mastery,
		Confidence:  s.Confidence,
		Frustration: s.Frustration,
		Attempts:    s.Attempts,
	}
}

// Index maps states by concept ID.
func Index(states []State) map[string]State {
	m := make(map[string]State, len(states))
	for _, s := range states {
		m[s.ConceptID] = s
	}
	return m
}

// Scores maps concept ID to mastery score.
func Scores(states map[string]State) map[string]float64 {
	m := make(map[string]float64, len(states))
	for id, s := range states {
		m[id] = s.Mastery
	}
	return m
}

// MostRecent returns the state with the latest LastSeen. Ties go to the
// state with more attempts, then to the smaller concept ID.
func MostRecent(states []State) (State, bool) {
	if len(states) == 0 {
		return State{}, false
	}
	best := states[0]
	for _, s := range states[1:] {
		switch {
		case s.LastSeen.After(best.LastSeen):
			best = s
		case s.LastSeen.Equal(best.LastSeen):
			if s.Attempts > best.Attempts || (s.Attempts == best.Attempts && s.ConceptID < best.ConceptID) {
				best = s
			}
		}
	}
	return best, true
}
