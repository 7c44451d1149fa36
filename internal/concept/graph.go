package concept

import (
	"slices"
)

// DefaultMasteryThreshold is the mastery score a prerequisite must reach
// before the concepts that depend on it become eligible.
const DefaultMasteryThreshold = 0.6

// Graph is an immutable index over a set of concepts. Prerequisite edges
// are kept as an explicit adjacency map (concept ID to prerequisite IDs)
// alongside the reverse edges.
type Graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	byCourse   map[string][]Concept
	prereqs    map[string][]string
	dependents map[string][]string
}

// NewGraph indexes the given concepts. It does not validate them; call
// Validate to detect duplicates, dangling references and cycles.
// When IDs repeat, the first occurrence wins.
func NewGraph(concepts []Concept) *Graph {
	g := &Graph{
		concepts:   make([]Concept, 0, len(concepts)),
		byID:       make(map[string]*Concept, len(concepts)),
		byCourse:   make(map[string][]Concept),
		prereqs:    make(map[string][]string, len(concepts)),
		dependents: make(map[string][]string),
	}

	seen := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		c.Prerequisites = slices.Clone(c.Prerequisites)
		g.concepts = append(g.concepts, c)
	}
	SortByOrder(g.concepts)

	for i := range g.concepts {
		c := &g.concepts[i]
		g.byID[c.ID] = c
		g.byCourse[c.CourseID] = append(g.byCourse[c.CourseID], *c)
		g.prereqs[c.ID] = c.Prerequisites
		for _, p := range c.Prerequisites {
			g.dependents[p] = append(g.dependents[p], c.ID)
		}
	}
	return g
}

// Len returns the number of indexed concepts.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// Concept returns the concept with the given ID.
func (g *Graph) Concept(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// All returns every indexed concept in course order.
func (g *Graph) All() []Concept {
	return slices.Clone(g.concepts)
}

// Scope returns the active concepts of one course, or of every course when
// courseID is empty, in course order.
func (g *Graph) Scope(courseID string) []Concept {
	src := g.concepts
	if courseID != "" {
		src = g.byCourse[courseID]
	}
	out := make([]Concept, 0, len(src))
	for _, c := range src {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

// InScope reports whether the concept belongs to the given course. Every
// concept is in scope of the empty course.
func InScope(c Concept, courseID string) bool {
	return courseID == "" || c.CourseID == courseID
}

// PrerequisiteIDs returns the adjacency list of a concept.
func (g *Graph) PrerequisiteIDs(id string) []string {
	return slices.Clone(g.prereqs[id])
}

// Prerequisites returns the known direct prerequisites of a concept.
// Dangling references are skipped.
func (g *Graph) Prerequisites(id string) []Concept {
	ids := g.prereqs[id]
	out := make([]Concept, 0, len(ids))
	for _, pid := range ids {
		if p, ok := g.byID[pid]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// Dependents returns concepts that list id as a direct prerequisite.
func (g *Graph) Dependents(id string) []Concept {
	ids := g.dependents[id]
	out := make([]Concept, 0, len(ids))
	for _, did := range ids {
		if d, ok := g.byID[did]; ok {
			out = append(out, *d)
		}
	}
	return out
}

// IsEligible reports whether every prerequisite of the concept has a
// mastery score at or above threshold. mastery maps concept ID to the
// learner's score; a missing entry counts as 0. Inactive and unknown
// concepts are never eligible.
func (g *Graph) IsEligible(id string, mastery map[string]float64, threshold float64) bool {
	c, ok := g.byID[id]
	if !ok || !c.Active {
		return false
	}
	for _, pid := range c.Prerequisites {
		if mastery[pid] < threshold {
			return false
		}
	}
	return true
}

// Eligible returns the active concepts in scope whose prerequisites are
// all mastered, in course order. An empty result is valid.
func (g *Graph) Eligible(courseID string, mastery map[string]float64, threshold float64) []Concept {
	var out []Concept
	for _, c := range g.Scope(courseID) {
		if g.IsEligible(c.ID, mastery, threshold) {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks the indexed concepts for structural issues.
func (g *Graph) Validate() error {
	return Validate(g.concepts)
}
