package concept

import (
	"testing"
)

func testConcepts() []Concept {
	return []Concept{
		{ID: "counting", CourseID: "math", Title: "Counting", Difficulty: 1, OrderIndex: 1, Active: true},
		{ID: "addition", CourseID: "math", Title: "Addition", Difficulty: 1, OrderIndex: 2, Prerequisites: []string{"counting"}, Active: true},
		{ID: "subtraction", CourseID: "math", Title: "Subtraction", Difficulty: 2, OrderIndex: 3, Prerequisites: []string{"counting"}, Active: true},
		{ID: "multiplication", CourseID: "math", Title: "Multiplication", Difficulty: 3, OrderIndex: 4, Prerequisites: []string{"addition", "subtraction"}, Active: true},
		{ID: "retired", CourseID: "math", Title: "Retired", Difficulty: 1, OrderIndex: 5, Active: false},
		{ID: "letters", CourseID: "reading", Title: "Letters", Difficulty: 1, OrderIndex: 1, Active: true},
		{ID: "words", CourseID: "reading", Title: "Words", Difficulty: 2, OrderIndex: 2, Prerequisites: []string{"letters"}, Active: true},
	}
}

func TestScope_Course(t *testing.T) {
	g := NewGraph(testConcepts())

	got := IDs(g.Scope("math"))
	want := []string{"counting", "addition", "subtraction", "multiplication"}
	if len(got) != len(want) {
		t.Fatalf("Scope(math) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scope(math)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScope_AllCoursesSkipsInactive(t *testing.T) {
	g := NewGraph(testConcepts())
	all := g.Scope("")
	if len(all) != 6 {
		t.Fatalf("Scope(\"\") returned %d concepts, want 6", len(all))
	}
	for _, c := range all {
		if c.ID == "retired" {
			t.Error("inactive concept returned from Scope")
		}
	}
	// Position 1 concepts from both courses come first.
	if all[0].OrderIndex != 1 || all[1].OrderIndex != 1 {
		t.Errorf("first two concepts have order %d and %d, want 1 and 1", all[0].OrderIndex, all[1].OrderIndex)
	}
}

func TestEligible_NoMastery(t *testing.T) {
	g := NewGraph(testConcepts())
	got := IDs(g.Eligible("", nil, DefaultMasteryThreshold))
	want := map[string]bool{"counting": true, "letters": true}
	if len(got) != len(want) {
		t.Fatalf("Eligible = %v, want roots only", got)
	}
	for _, id := range got {
		if !want[id] {
			t.Errorf("unexpected eligible concept %q", id)
		}
	}
}

func TestEligible_ThresholdBoundary(t *testing.T) {
	g := NewGraph(testConcepts())

	tests := []struct {
		name    string
		mastery float64
		want    bool
	}{
		{"below", 0.59, false},
		{"at threshold", 0.6, true},
		{"above", 0.9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]float64{"counting": tt.mastery}
			if got := g.IsEligible("addition", m, DefaultMasteryThreshold); got != tt.want {
				t.Errorf("IsEligible(addition) with counting=%.2f = %v, want %v", tt.mastery, got, tt.want)
			}
		})
	}
}

func TestEligible_AllPrerequisitesRequired(t *testing.T) {
	g := NewGraph(testConcepts())
	m := map[string]float64{"counting": 1, "addition": 0.8, "subtraction": 0.3}
	if g.IsEligible("multiplication", m, DefaultMasteryThreshold) {
		t.Error("multiplication eligible with subtraction unmastered")
	}
	m["subtraction"] = 0.6
	if !g.IsEligible("multiplication", m, DefaultMasteryThreshold) {
		t.Error("multiplication not eligible with all prerequisites mastered")
	}
}

func TestEligible_CourseFilter(t *testing.T) {
	g := NewGraph(testConcepts())
	m := map[string]float64{"counting": 0.7, "letters": 0.7}
	for _, c := range g.Eligible("reading", m, DefaultMasteryThreshold) {
		if c.CourseID != "reading" {
			t.Errorf("Eligible(reading) returned %q from course %q", c.ID, c.CourseID)
		}
	}
}

func TestEligible_InactiveNeverEligible(t *testing.T) {
	g := NewGraph(testConcepts())
	if g.IsEligible("retired", nil, DefaultMasteryThreshold) {
		t.Error("inactive concept reported eligible")
	}
	if g.IsEligible("nonexistent", nil, DefaultMasteryThreshold) {
		t.Error("unknown concept reported eligible")
	}
}

func TestEligible_DanglingPrerequisiteBlocks(t *testing.T) {
	g := NewGraph([]Concept{
		{ID: "a", CourseID: "c", Title: "A", Difficulty: 1, Prerequisites: []string{"ghost"}, Active: true},
	})
	if len(g.Eligible("", nil, DefaultMasteryThreshold)) != 0 {
		t.Error("concept with dangling prerequisite reported eligible")
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	g := NewGraph(testConcepts())

	prereqs := IDs(g.Prerequisites("multiplication"))
	if len(prereqs) != 2 || prereqs[0] != "addition" || prereqs[1] != "subtraction" {
		t.Errorf("Prerequisites(multiplication) = %v", prereqs)
	}

	deps := IDs(g.Dependents("counting"))
	if len(deps) != 2 {
		t.Errorf("Dependents(counting) = %v, want 2 entries", deps)
	}
}

func TestNewGraph_FirstDuplicateWins(t *testing.T) {
	g := NewGraph([]Concept{
		{ID: "a", CourseID: "c", Title: "First", Difficulty: 1, Active: true},
		{ID: "a", CourseID: "c", Title: "Second", Difficulty: 1, Active: true},
	})
	c, ok := g.Concept("a")
	if !ok {
		t.Fatal("concept a not found")
	}
	if c.Title != "First" {
		t.Errorf("got title %q, want First", c.Title)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}
