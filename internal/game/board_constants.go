package game

// Board geometry and scoring constants.
// Defaults line up with the board artwork (images/board.png) at 1:1 world scale.

const (
	SectionCount = 20
	SectionArc   = 360.0 / SectionCount // 18 degrees per wedge

	DefaultBoardRadius = 300.0
	DefaultBoardX      = -25.0
	DefaultBoardY      = 0.0

	// DefaultCalibrationOffset rotates raw atan2 output so that degree 0 sits
	// on the wire between the "1" and "20" wedges. Re-derive it for any other
	// artwork orientation.
	DefaultCalibrationOffset = 459.0

	BullseyePoints     = 50
	HalfBullseyePoints = 25

	DefaultStartingScore = 301
	DefaultDartsPerTurn  = 3

	// Crosshair jitter amplitude per frame, world units.
	ShakeFocused   = 0.2
	ShakeUnfocused = 1.5

	// Max crosshair travel per mouse motion event.
	MaxMotionStep = 5.0
)

// CanonicalSectionOrder lists wedge scores of a standard board starting at the
// 20 and running counter-clockwise. Index i owns degrees [i*18, i*18+18).
var CanonicalSectionOrder = [SectionCount]int{
	20, 5, 12, 9, 14, 11, 8, 16, 7, 19, 3, 17, 2, 15, 10, 6, 13, 4, 18, 1,
}

// DefaultRings returns regulation ring proportions normalized to the outer
// double wire (170mm).
func DefaultRings() Rings {
	return Rings{
		Bullseye:     0.0374, // 6.35mm
		HalfBullseye: 0.0935, // 15.9mm
		TrebleNear:   0.5824, // 99mm
		TrebleFar:    0.6294, // 107mm
		DoubleNear:   0.9529, // 162mm
		DoubleFar:    1.0,    // 170mm
	}
}

// PrototypeRings returns the thresholds tuned for the first pixel-art board,
// where the scoring area covers only the inner fifth of the sprite radius.
func PrototypeRings() Rings {
	return Rings{
		Bullseye:     0.01,
		HalfBullseye: 0.02,
		TrebleNear:   0.10,
		TrebleFar:    0.11,
		DoubleNear:   0.17,
		DoubleFar:    0.18,
	}
}
