package engine

import (
	"context"
	"math"
	"testing"

	"github.com/abhisek/masteryforge/internal/mastery"
)

func TestProgress(t *testing.T) {
	st := newFakeStore(
		state("u", "a", 0.8, 0.0, 4, 1),
		state("u", "b", 0.3, 0.6, 2, 2),
	)
	e := newEngine(course(), st, nil)

	r, err := e.Progress(context.Background(), "u", "math")
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != 3 || r.Mastered != 1 || r.EligibleCount != 2 || r.Attempted != 2 {
		t.Errorf("counts = total %d mastered %d eligible %d attempted %d", r.Total, r.Mastered, r.EligibleCount, r.Attempted)
	}
	if math.Abs(r.Percent-100.0/3) > 1e-9 {
		t.Errorf("percent = %v", r.Percent)
	}
	if math.Abs(r.AverageFrustration-0.3) > 1e-9 {
		t.Errorf("average frustration = %v, want 0.3", r.AverageFrustration)
	}

	levels := map[string]mastery.Level{}
	for _, p := range r.Concepts {
		levels[p.Concept.ID] = p.Level
	}
	if levels["a"] != mastery.LevelMastered || levels["b"] != mastery.LevelLearning || levels["c"] != mastery.LevelNew {
		t.Errorf("levels = %v", levels)
	}
	if r.Concepts[2].Eligible {
		t.Error("c should be locked behind b")
	}
}

func TestProgress_Empty(t *testing.T) {
	e := newEngine(nil, newFakeStore(), nil)
	r, err := e.Progress(context.Background(), "u", "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != 0 || r.Percent != 0 || r.AverageFrustration != 0 {
		t.Errorf("report = %+v", r)
	}
}
