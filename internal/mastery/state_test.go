package mastery

import (
	"testing"
	"time"
)

func TestMostRecent(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	states := []State{
		{ConceptID: "a", LastSeen: t0},
		{ConceptID: "b", LastSeen: t0.Add(time.Hour)},
		{ConceptID: "c", LastSeen: t0.Add(30 * time.Minute)},
	}
	got, ok := MostRecent(states)
	if !ok || got.ConceptID != "b" {
		t.Errorf("MostRecent = %q, want b", got.ConceptID)
	}

	if _, ok := MostRecent(nil); ok {
		t.Error("MostRecent(nil) reported a state")
	}
}

func TestMostRecent_TieBreak(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	states := []State{
		{ConceptID: "z", LastSeen: t0, Attempts: 1},
		{ConceptID: "y", LastSeen: t0, Attempts: 3},
		{ConceptID: "x", LastSeen: t0, Attempts: 3},
	}
	got, _ := MostRecent(states)
	if got.ConceptID != "x" {
		t.Errorf("MostRecent = %q, want x", got.ConceptID)
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		state State
		want  Level
	}{
		{State{}, LevelNew},
		{State{Attempts: 1, Mastery: 0.7}, LevelMastered},
		{State{Attempts: 4, Mastery: 0.2, Frustration: 0.8}, LevelStruggling},
		{State{Attempts: 2, Mastery: 0.5, Frustration: 0.7}, LevelLearning},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.state); got != tt.want {
			t.Errorf("LevelOf(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
