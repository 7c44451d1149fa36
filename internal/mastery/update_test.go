package mastery

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{-20, BandLow},
		{0, BandLow},
		{49.99, BandLow},
		{50, BandMid},
		{79.99, BandMid},
		{80, BandHigh},
		{100, BandHigh},
		{250, BandHigh},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestApply_Deltas(t *testing.T) {
	start := State{ConceptID: "c", Mastery: 0.5, Frustration: 0.5, Confidence: 0.5, Attempts: 2}

	tests := []struct {
		name                      string
		score                     float64
		mastery, frust, confident float64
	}{
		{"high", 90, 0.65, 0.30, 0.60},
		{"mid", 60, 0.55, 0.55, 0.52},
		{"low", 10, 0.51, 0.70, 0.45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(start, tt.score, testNow)
			if !approx(got.Mastery, tt.mastery) {
				t.Errorf("mastery = %v, want %v", got.Mastery, tt.mastery)
			}
			if !approx(got.Frustration, tt.frust) {
				t.Errorf("frustration = %v, want %v", got.Frustration, tt.frust)
			}
			if !approx(got.Confidence, tt.confident) {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.confident)
			}
			if got.Attempts != 3 {
				t.Errorf("attempts = %d, want 3", got.Attempts)
			}
			if !got.LastSeen.Equal(testNow) {
				t.Errorf("last seen = %v, want %v", got.LastSeen, testNow)
			}
		})
	}

	if start.Attempts != 2 || start.Mastery != 0.5 {
		t.Error("Apply modified its input")
	}
}

func TestApply_StaysInBounds(t *testing.T) {
	scores := []float64{-50, 0, 25, 49, 50, 65, 79, 80, 95, 100, 400}
	starts := []State{
		{},
		{Mastery: 1, Frustration: 1, Confidence: 1},
		{Mastery: 0.99, Frustration: 0.01, Confidence: 0.02},
	}
	for _, start := range starts {
		for _, score := range scores {
			s := start
			for i := 0; i < 20; i++ {
				s = Apply(s, score, testNow)
				for name, v := range map[string]float64{"mastery": s.Mastery, "frustration": s.Frustration, "confidence": s.Confidence} {
					if v < 0 || v > 1 {
						t.Fatalf("%s = %v out of [0,1] after score %v", name, v, score)
					}
				}
			}
			if s.Attempts != start.Attempts+20 {
				t.Errorf("attempts = %d, want %d", s.Attempts, start.Attempts+20)
			}
		}
	}
}

func TestApply_HighScoreImprovesUntilClamped(t *testing.T) {
	s := Fresh("u", "c")
	s.Frustration = 1
	for i := 0; i < 10; i++ {
		next := Apply(s, 85, testNow)
		if s.Mastery < 1 && next.Mastery <= s.Mastery {
			t.Fatalf("step %d: mastery %v did not increase from %v", i, next.Mastery, s.Mastery)
		}
		if s.Frustration > 0 && next.Frustration >= s.Frustration {
			t.Fatalf("step %d: frustration %v did not decrease from %v", i, next.Frustration, s.Frustration)
		}
		s = next
	}
	if s.Mastery != 1 || s.Frustration != 0 {
		t.Errorf("after 10 high scores: mastery=%v frustration=%v, want 1 and 0", s.Mastery, s.Frustration)
	}
}

func TestApply_OutOfRangeScoreClamped(t *testing.T) {
	s := Fresh("u", "c")
	if got, want := Apply(s, 150, testNow), Apply(s, 100, testNow); got != want {
		t.Errorf("score 150 gave %+v, want same as 100: %+v", got, want)
	}
	if got, want := Apply(s, -5, testNow), Apply(s, 0, testNow); got != want {
		t.Errorf("score -5 gave %+v, want same as 0: %+v", got, want)
	}
}

func TestClampScore_NaN(t *testing.T) {
	if got := ClampScore(math.NaN()); got != 0 {
		t.Errorf("ClampScore(NaN) = %v, want 0", got)
	}
}
