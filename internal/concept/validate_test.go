package concept

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	if err := Validate(testConcepts()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name     string
		concepts []Concept
		want     string
	}{
		{
			name: "duplicate",
			concepts: []Concept{
				{ID: "a", CourseID: "c", Difficulty: 1},
				{ID: "a", CourseID: "c", Difficulty: 1},
			},
			want: `duplicate concept ID: "a"`,
		},
		{
			name: "dangling",
			concepts: []Concept{
				{ID: "a", CourseID: "c", Difficulty: 1, Prerequisites: []string{"zzz"}},
			},
			want: `nonexistent prerequisite "zzz"`,
		},
		{
			name: "self reference",
			concepts: []Concept{
				{ID: "a", CourseID: "c", Difficulty: 1, Prerequisites: []string{"a"}},
			},
			want: "lists itself",
		},
		{
			name: "cycle",
			concepts: []Concept{
				{ID: "root", CourseID: "c", Difficulty: 1},
				{ID: "a", CourseID: "c", Difficulty: 1, Prerequisites: []string{"b"}},
				{ID: "b", CourseID: "c", Difficulty: 1, Prerequisites: []string{"a"}},
			},
			want: "cycle detected involving concepts: a, b",
		},
		{
			name: "missing course",
			concepts: []Concept{
				{ID: "a", Difficulty: 1},
			},
			want: "has no course",
		},
		{
			name: "bad difficulty",
			concepts: []Concept{
				{ID: "a", CourseID: "c"},
			},
			want: "difficulty must be >= 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.concepts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCycleMembers_IncludesDownstream(t *testing.T) {
	got := CycleMembers([]Concept{
		{ID: "a", Prerequisites: []string{"b"}},
		{ID: "b", Prerequisites: []string{"a"}},
		{ID: "c", Prerequisites: []string{"a"}},
		{ID: "d"},
	})
	want := []string{"a", "b", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("CycleMembers = %v, want %v", got, want)
	}
}

func TestCycleConceptsStayIneligible(t *testing.T) {
	g := NewGraph([]Concept{
		{ID: "a", CourseID: "c", Difficulty: 1, Prerequisites: []string{"b"}, Active: true},
		{ID: "b", CourseID: "c", Difficulty: 1, Prerequisites: []string{"a"}, Active: true},
	})
	if got := g.Eligible("c", nil, DefaultMasteryThreshold); len(got) != 0 {
		t.Errorf("Eligible on a pure cycle = %v, want none", IDs(got))
	}
}
