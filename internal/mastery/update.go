package mastery

import (
	"fmt"
	"time"
)

// Band classifies a quiz score for the update rule.
type Band int

const (
	BandLow  Band = iota // score < 50
	BandMid              // 50 <= score < 80
	BandHigh             // score >= 80
)

func (b Band) String() string {
	switch b {
	case BandHigh:
		return "high"
	case BandMid:
		return "mid"
	case BandLow:
		return "low"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Band boundaries in percent.
const (
	HighScore = 80.0
	MidScore  = 50.0
)

// Delta is the signed change a band applies to each signal.
type Delta struct {
	Mastery     float64
	Frustration float64
	Confidence  float64
}

var bandDeltas = map[Band]Delta{
	BandHigh: {Mastery: 0.15, Frustration: -0.20, Confidence: 0.10},
	BandMid:  {Mastery: 0.05, Frustration: 0.05, Confidence: 0.02},
	BandLow:  {Mastery: 0.01, Frustration: 0.20, Confidence: -0.05},
}

// DeltaFor returns the signal changes applied for a band.
func DeltaFor(b Band) Delta {
	return bandDeltas[b]
}

// ClampScore limits a quiz score to [0, 100].
func ClampScore(score float64) float64 {
	return clamp(score, 0, 100)
}

// BandFor classifies a score after clamping it.
func BandFor(score float64) Band {
	score = ClampScore(score)
	switch {
	case score >= HighScore:
		return BandHigh
	case score >= MidScore:
		return BandMid
	default:
		return BandLow
	}
}

// Apply returns the state that results from grading one attempt with the
// given score at time now. The input is not modified. Attempts grows by
// one, LastSeen becomes now and every signal stays inside [0, 1].
func Apply(s State, score float64, now time.Time) State {
	d := DeltaFor(BandFor(score))
	next := s
	next.Mastery = clamp(s.Mastery+d.Mastery, 0, 1)
	next.Frustration = clamp(s.Frustration+d.Frustration, 0, 1)
	next.Confidence = clamp(s.Confidence+d.Confidence, 0, 1)
	next.Attempts = s.Attempts + 1
	next.LastSeen = now
	return next
}

func clamp(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
