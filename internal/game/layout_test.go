package game

import (
	"errors"
	"testing"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	layout, err := NewBoardLayout(DefaultLayoutOptions())
	if err != nil {
		t.Fatalf("default layout rejected: %v", err)
	}
	if layout.Sections[0].Start != 0 || layout.Sections[SectionCount-1].End != 360 {
		t.Errorf("sections span [%v, %v), want [0, 360)",
			layout.Sections[0].Start, layout.Sections[SectionCount-1].End)
	}
	for i, s := range layout.Sections {
		if s.Score != CanonicalSectionOrder[i] {
			t.Errorf("section %d score=%d, want %d", i, s.Score, CanonicalSectionOrder[i])
		}
		if s.End-s.Start != SectionArc {
			t.Errorf("section %d width=%v, want %v", i, s.End-s.Start, SectionArc)
		}
	}
}

func TestPrototypeRingsAreValid(t *testing.T) {
	if err := PrototypeRings().Validate(); err != nil {
		t.Errorf("prototype rings rejected: %v", err)
	}
}

func TestLayoutRejectsBadRings(t *testing.T) {
	cases := map[string]Rings{
		"zero bullseye":    {0, 0.02, 0.1, 0.11, 0.17, 0.18},
		"not increasing":   {0.01, 0.02, 0.11, 0.10, 0.17, 0.18},
		"equal thresholds": {0.01, 0.02, 0.10, 0.10, 0.17, 0.18},
		"beyond edge":      {0.1, 0.2, 0.5, 0.6, 0.9, 1.01},
	}
	for name, rings := range cases {
		opts := DefaultLayoutOptions()
		opts.Rings = rings
		if _, err := NewBoardLayout(opts); !errors.Is(err, ErrInvalidRings) {
			t.Errorf("%s: err=%v, want ErrInvalidRings", name, err)
		}
	}
}

func TestLayoutRejectsBadScoreOrder(t *testing.T) {
	dup := CanonicalSectionOrder
	dup[1] = 20

	outOfRange := CanonicalSectionOrder
	outOfRange[0] = 21

	for name, order := range map[string][SectionCount]int{"duplicate": dup, "out of range": outOfRange} {
		opts := DefaultLayoutOptions()
		opts.ScoreOrder = order
		if _, err := NewBoardLayout(opts); !errors.Is(err, ErrInvalidScoreOrder) {
			t.Errorf("%s: err=%v, want ErrInvalidScoreOrder", name, err)
		}
	}
}

func TestLayoutRejectsBadRadius(t *testing.T) {
	for _, r := range []float64{0, -300} {
		opts := DefaultLayoutOptions()
		opts.Radius = r
		if _, err := NewBoardLayout(opts); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: err=%v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestValidateSectionsDetectsGaps(t *testing.T) {
	sections := []Section{
		{Start: 0, End: 180, Score: 1},
		{Start: 190, End: 360, Score: 2},
	}
	if err := validateSections(sections); !errors.Is(err, ErrInvalidSections) {
		t.Errorf("gap: err=%v, want ErrInvalidSections", err)
	}

	sections = []Section{
		{Start: 0, End: 180, Score: 1},
		{Start: 180, End: 350, Score: 2},
	}
	if err := validateSections(sections); !errors.Is(err, ErrInvalidSections) {
		t.Errorf("short: err=%v, want ErrInvalidSections", err)
	}
}

func TestMustBoardLayoutPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBoardLayout did not panic on invalid rings")
		}
	}()
	opts := DefaultLayoutOptions()
	opts.Rings = Rings{}
	MustBoardLayout(opts)
}

func TestSectionsPartitionFullCircle(t *testing.T) {
	layout := MustBoardLayout(DefaultLayoutOptions())
	for tenth := 0; tenth < 3600; tenth++ {
		deg := float64(tenth) / 10
		matches := 0
		for _, s := range layout.Sections {
			if s.Contains(deg) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("degree %v matched %d sections, want 1", deg, matches)
		}
	}
}
