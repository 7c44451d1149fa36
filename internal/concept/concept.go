package concept

import (
	"cmp"
	"slices"
)

// Course groups concepts into an ordered curriculum.
type Course struct {
	ID         string
	Name       string
	GradeLevel int
	Active     bool
}

// Concept is a single learnable node in the prerequisite graph.
type Concept struct {
	ID            string
	CourseID      string
	Title         string
	Description   string
	Difficulty    int
	OrderIndex    int
	Prerequisites []string
	Active        bool
}

// HasPrerequisite reports whether id is a direct prerequisite of c.
func (c Concept) HasPrerequisite(id string) bool {
	return slices.Contains(c.Prerequisites, id)
}

// CompareOrder orders concepts by position in their course, then title,
// then ID. Concepts from different courses interleave by position.
func CompareOrder(a, b Concept) int {
	if c := cmp.Compare(a.OrderIndex, b.OrderIndex); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortByOrder sorts concepts in place using CompareOrder.
func SortByOrder(concepts []Concept) {
	slices.SortStableFunc(concepts, CompareOrder)
}

// IDs returns the IDs of the given concepts in order.
func IDs(concepts []Concept) []string {
	ids := make([]string, len(concepts))
	for i, c := range concepts {
		ids[i] = c.ID
	}
	return ids
}
