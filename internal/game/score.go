package game

import "fmt"

// HitKind classifies where a dart landed.
type HitKind string

const (
	HitMiss         HitKind = "MISS"
	HitBullseye     HitKind = "BULLSEYE"
	HitHalfBullseye HitKind = "HALF_BULLSEYE"
	HitSingle       HitKind = "SINGLE"
	HitDouble       HitKind = "DOUBLE"
	HitTreble       HitKind = "TREBLE"
)

// HitOutcome is what a dart hit. Section is the wedge's base score and is
// zero for misses and bulls.
type HitOutcome struct {
	Kind    HitKind `json:"kind"`
	Section int     `json:"section,omitempty"`
}

// Multiplier returns the ring multiplier applied to the section score.
func (h HitOutcome) Multiplier() int {
	switch h.Kind {
	case HitSingle:
		return 1
	case HitDouble:
		return 2
	case HitTreble:
		return 3
	default:
		return 0
	}
}

// Points returns the positive value of the hit.
func (h HitOutcome) Points() int {
	switch h.Kind {
	case HitBullseye:
		return BullseyePoints
	case HitHalfBullseye:
		return HalfBullseyePoints
	default:
		return h.Section * h.Multiplier()
	}
}

func (h HitOutcome) String() string {
	switch h.Kind {
	case HitBullseye:
		return "BULL"
	case HitHalfBullseye:
		return "25"
	case HitSingle:
		return fmt.Sprintf("S%d", h.Section)
	case HitDouble:
		return fmt.Sprintf("D%d", h.Section)
	case HitTreble:
		return fmt.Sprintf("T%d", h.Section)
	default:
		return "MISS"
	}
}

// ShotResult is the resolved outcome of one dart.
type ShotResult struct {
	Distance           float64    `json:"distance"`
	NormalizedDistance float64    `json:"normalized_distance"`
	Degrees            float64    `json:"degrees"`
	Outcome            HitOutcome `json:"outcome"`
	ScoreDelta         int        `json:"score_delta"` // added to the thrower's running total
}

// ResolveScore maps polar coordinates onto the board's rings and sections.
// Ring bounds are inclusive; section starts are inclusive and ends exclusive.
func ResolveScore(normalizedDistance, degrees float64, layout *BoardLayout) ShotResult {
	res := ShotResult{
		Distance:           normalizedDistance * layout.Radius,
		NormalizedDistance: normalizedDistance,
		Degrees:            degrees,
		Outcome:            HitOutcome{Kind: HitMiss},
	}
	rings := layout.Rings

	switch {
	case normalizedDistance <= rings.Bullseye:
		res.Outcome = HitOutcome{Kind: HitBullseye}
	case normalizedDistance <= rings.HalfBullseye:
		res.Outcome = HitOutcome{Kind: HitHalfBullseye}
	case normalizedDistance <= rings.DoubleFar:
		kind := HitSingle
		if normalizedDistance >= rings.TrebleNear && normalizedDistance <= rings.TrebleFar {
			kind = HitTreble
		} else if normalizedDistance >= rings.DoubleNear {
			kind = HitDouble
		}
		// Sections partition [0, 360), so the first match is the only one.
		if idx, ok := layout.SectionAt(degrees); ok {
			res.Outcome = HitOutcome{Kind: kind, Section: layout.Sections[idx].Score}
		}
	}

	res.ScoreDelta = -res.Outcome.Points()
	return res
}

// ResolveShot resolves a landing point straight to its score.
func ResolveShot(landing Vec2, layout *BoardLayout) ShotResult {
	nDist, degrees := ResolvePosition(landing, layout)
	return ResolveScore(nDist, degrees, layout)
}
