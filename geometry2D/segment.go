package geometry2D

import (
	"fmt"
	"math"
	"strings"
)

// WallKind selects the reflection formula of a segment. The plain kinds
// mirror the interior neighbor across the missing side; the strained kinds
// additionally inject the segment's Excitation.
type WallKind uint8

const (
	RightWall WallKind = iota
	LeftWall
	TopWall
	BottomWall
	StrainedLeftWall
	StrainedRightWall
)

var (
	WallNames = map[string]WallKind{
		"right":         RightWall,
		"left":          LeftWall,
		"top":           TopWall,
		"bottom":        BottomWall,
		"strainedleft":  StrainedLeftWall,
		"strainedright": StrainedRightWall,
	}
	WallPrintNames = []string{"Right", "Left", "Top", "Bottom", "StrainedLeft", "StrainedRight"}
)

func (wk WallKind) String() string {
	if int(wk) < len(WallPrintNames) {
		return WallPrintNames[wk]
	}
	return fmt.Sprintf("WallKind(%d)", uint8(wk))
}

func (wk WallKind) Valid() bool { return wk <= StrainedRightWall }

// Driven reports whether the kind carries a source term.
func (wk WallKind) Driven() bool {
	return wk == StrainedLeftWall || wk == StrainedRightWall
}

func ParseWallKind(label string) (wk WallKind, err error) {
	var (
		ok bool
	)
	if wk, ok = WallNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unable to use wall named %q: %w", label, ErrUnsupportedBoundaryType)
	}
	return
}

// DefaultSourceCutoff is the time after which a driven wall stops injecting.
const DefaultSourceCutoff = 0.3

// Excitation is a finite duration sinusoid: cos(2*pi*t) while t < Cutoff.
type Excitation struct {
	Cutoff float64
}

func (e Excitation) Input(t float64) float64 {
	if t < e.Cutoff {
		return math.Cos(2 * math.Pi * t)
	}
	return 0
}

// Segment is one axis aligned edge of an obstacle, running from A to B.
type Segment struct {
	A, B   Coordinate
	Kind   WallKind
	Source Excitation
}

func NewSegment(kind WallKind, a, b Coordinate) (s Segment, err error) {
	if !kind.Valid() {
		err = fmt.Errorf("segment %v-%v: %v: %w", a, b, kind, ErrUnsupportedBoundaryType)
		return
	}
	if a.Equal(b) {
		err = fmt.Errorf("segment %v-%v has zero length: %w", a, b, ErrInvalidGeometry)
		return
	}
	if a.X != b.X && a.Y != b.Y {
		err = fmt.Errorf("segment %v-%v is not axis aligned: %w", a, b, ErrInvalidGeometry)
		return
	}
	s = Segment{A: a, B: b, Kind: kind}
	if kind.Driven() {
		s.Source = Excitation{Cutoff: DefaultSourceCutoff}
	}
	return
}

// MustSegment is NewSegment for literal geometry, it panics on error.
func MustSegment(kind WallKind, a, b Coordinate) Segment {
	s, err := NewSegment(kind, a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// WithSourceCutoff returns a copy of a driven segment using cutoff.
func (s Segment) WithSourceCutoff(cutoff float64) Segment {
	if s.Kind.Driven() {
		s.Source = Excitation{Cutoff: cutoff}
	}
	return s
}

func (s Segment) Xs() [2]float64 { return [2]float64{s.A.X, s.B.X} }
func (s Segment) Ys() [2]float64 { return [2]float64{s.A.Y, s.B.Y} }

func (s Segment) Leftward() bool   { return s.A.X > s.B.X }
func (s Segment) Rightward() bool  { return s.A.X < s.B.X }
func (s Segment) Upward() bool     { return s.A.Y > s.B.Y }
func (s Segment) Downward() bool   { return s.A.Y < s.B.Y }
func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y }
func (s Segment) Vertical() bool   { return s.A.X == s.B.X }

func (s Segment) Equal(o Segment) bool {
	return s.A.Equal(o.A) && s.B.Equal(o.B) && s.Kind == o.Kind
}

func (s Segment) String() string {
	return fmt.Sprintf("%s[%v->%v]", s.Kind, s.A, s.B)
}
