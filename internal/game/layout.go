package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRadius     = errors.New("board radius must be positive and finite")
	ErrInvalidCenter     = errors.New("board center must be finite")
	ErrInvalidOffset     = errors.New("calibration offset must be finite")
	ErrInvalidRings      = errors.New("ring thresholds must be strictly increasing within (0, 1]")
	ErrInvalidSections   = errors.New("sections must partition [0, 360) exactly once")
	ErrInvalidScoreOrder = errors.New("section scores must be a permutation of 1..20")
)

// Rings holds the normalized radii of the scoring ring boundaries, inner to outer.
type Rings struct {
	Bullseye     float64 `json:"bullseye"`
	HalfBullseye float64 `json:"half_bullseye"`
	TrebleNear   float64 `json:"treble_near"`
	TrebleFar    float64 `json:"treble_far"`
	DoubleNear   float64 `json:"double_near"`
	DoubleFar    float64 `json:"double_far"`
}

func (r Rings) ordered() []float64 {
	return []float64{r.Bullseye, r.HalfBullseye, r.TrebleNear, r.TrebleFar, r.DoubleNear, r.DoubleFar}
}

// Validate reports whether the thresholds are strictly increasing within (0, 1].
func (r Rings) Validate() error {
	prev := 0.0
	for i, v := range r.ordered() {
		if math.IsNaN(v) || v <= prev || v > 1 {
			return fmt.Errorf("%w: threshold %d is %v (previous %v)", ErrInvalidRings, i, v, prev)
		}
		prev = v
	}
	return nil
}

// Section is one angular wedge. Start is inclusive, End exclusive.
type Section struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Score int     `json:"score"`
}

func (s Section) Contains(degrees float64) bool {
	return degrees >= s.Start && degrees < s.End
}

func (s Section) String() string {
	return fmt.Sprintf("Start: %g, End: %g", s.Start, s.End)
}

// LayoutOptions are the tunable inputs of a board layout.
type LayoutOptions struct {
	Center            Vec2
	Radius            float64
	Rings             Rings
	CalibrationOffset float64
	ScoreOrder        [SectionCount]int
}

// DefaultLayoutOptions returns the regulation board drawn at the default position.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Center:            NewVec2(DefaultBoardX, DefaultBoardY),
		Radius:            DefaultBoardRadius,
		Rings:             DefaultRings(),
		CalibrationOffset: DefaultCalibrationOffset,
		ScoreOrder:        CanonicalSectionOrder,
	}
}

// BoardLayout is the immutable scoring geometry of a dartboard.
// It is never mutated after NewBoardLayout returns and may be shared freely.
type BoardLayout struct {
	Center            Vec2
	Radius            float64
	Rings             Rings
	CalibrationOffset float64
	Sections          [SectionCount]Section
}

// NewBoardLayout builds equal-width sections from the score order and
// validates the whole layout.
func NewBoardLayout(opts LayoutOptions) (*BoardLayout, error) {
	if math.IsNaN(opts.Radius) || math.IsInf(opts.Radius, 0) || opts.Radius <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, opts.Radius)
	}
	if !opts.Center.IsFinite() {
		return nil, fmt.Errorf("%w: got %+v", ErrInvalidCenter, opts.Center)
	}
	if math.IsNaN(opts.CalibrationOffset) || math.IsInf(opts.CalibrationOffset, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidOffset, opts.CalibrationOffset)
	}
	if err := opts.Rings.Validate(); err != nil {
		return nil, err
	}
	if err := validateScoreOrder(opts.ScoreOrder); err != nil {
		return nil, err
	}

	layout := &BoardLayout{
		Center:            opts.Center,
		Radius:            opts.Radius,
		Rings:             opts.Rings,
		CalibrationOffset: opts.CalibrationOffset,
	}
	for i := 0; i < SectionCount; i++ {
		layout.Sections[i] = Section{
			Start: float64(i) * SectionArc,
			End:   float64(i)*SectionArc + SectionArc,
			Score: opts.ScoreOrder[i],
		}
	}
	if err := validateSections(layout.Sections[:]); err != nil {
		return nil, err
	}
	return layout, nil
}

// MustBoardLayout is like NewBoardLayout but panics on an invalid layout.
func MustBoardLayout(opts LayoutOptions) *BoardLayout {
	layout, err := NewBoardLayout(opts)
	if err != nil {
		panic(fmt.Sprintf("board layout: %v", err))
	}
	return layout
}

// SectionAt returns the index of the section owning the given calibrated degree.
func (b *BoardLayout) SectionAt(degrees float64) (int, bool) {
	for i, s := range b.Sections {
		if s.Contains(degrees) {
			return i, true
		}
	}
	return -1, false
}

func validateScoreOrder(order [SectionCount]int) error {
	var seen [SectionCount + 1]bool
	for i, score := range order {
		if score < 1 || score > SectionCount {
			return fmt.Errorf("%w: index %d has score %d", ErrInvalidScoreOrder, i, score)
		}
		if seen[score] {
			return fmt.Errorf("%w: score %d appears twice", ErrInvalidScoreOrder, score)
		}
		seen[score] = true
	}
	return nil
}

func validateSections(sections []Section) error {
	if len(sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidSections)
	}
	if sections[0].Start != 0 {
		return fmt.Errorf("%w: first section starts at %v", ErrInvalidSections, sections[0].Start)
	}
	for i, s := range sections {
		if s.End <= s.Start {
			return fmt.Errorf("%w: section %d is empty (%s)", ErrInvalidSections, i, s)
		}
		if i > 0 && s.Start != sections[i-1].End {
			return fmt.Errorf("%w: gap or overlap before section %d (%s)", ErrInvalidSections, i, s)
		}
	}
	if last := sections[len(sections)-1]; last.End != 360 {
		return fmt.Errorf("%w: last section ends at %v", ErrInvalidSections, last.End)
	}
	return nil
}
