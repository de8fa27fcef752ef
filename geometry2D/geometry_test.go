package geometry2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate(t *testing.T) {
	c, err := NewCoordinate(1.5, 0)
	assert.NoError(t, err)
	assert.Equal(t, Coordinate{1.5, 0}, c)
	assert.True(t, c.Equal(MustCoordinate(1.5, 0)))
	assert.Equal(t, "(1.5,0)", c.String())

	_, err = NewCoordinate(-0.1, 1)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
	assert.Panics(t, func() { MustCoordinate(1, -1) })
}

func TestSegment(t *testing.T) {
	var (
		p00 = MustCoordinate(0, 0)
		p50 = MustCoordinate(5, 0)
		p55 = MustCoordinate(5, 5)
	)
	{ // Orientation predicates
		s := MustSegment(TopWall, p00, p50)
		assert.True(t, s.Horizontal())
		assert.True(t, s.Rightward())
		assert.False(t, s.Leftward() || s.Upward() || s.Downward() || s.Vertical())
		assert.Equal(t, [2]float64{0, 5}, s.Xs())
		assert.Equal(t, [2]float64{0, 0}, s.Ys())

		s = MustSegment(RightWall, p50, p55)
		assert.True(t, s.Vertical() && s.Downward())
		s = MustSegment(RightWall, p55, p50)
		assert.True(t, s.Vertical() && s.Upward())
		s = MustSegment(BottomWall, p50, p00)
		assert.True(t, s.Horizontal() && s.Leftward())
	}
	{ // Construction errors
		_, err := NewSegment(LeftWall, p00, p00)
		assert.True(t, errors.Is(err, ErrInvalidGeometry))
		_, err = NewSegment(LeftWall, p00, p55)
		assert.True(t, errors.Is(err, ErrInvalidGeometry))
		_, err = NewSegment(WallKind(42), p00, p50)
		assert.True(t, errors.Is(err, ErrUnsupportedBoundaryType))
		assert.Panics(t, func() { MustSegment(TopWall, p00, p55) })
	}
	{ // Only driven kinds carry a source
		s := MustSegment(StrainedLeftWall, p00, MustCoordinate(0, 5))
		assert.Equal(t, DefaultSourceCutoff, s.Source.Cutoff)
		assert.Equal(t, 1.5, s.WithSourceCutoff(1.5).Source.Cutoff)
		plain := MustSegment(LeftWall, p00, MustCoordinate(0, 5))
		assert.Equal(t, Excitation{}, plain.WithSourceCutoff(1.5).Source)
	}
	assert.Equal(t, "Top[(0,0)->(5,0)]", MustSegment(TopWall, p00, p50).String())
}

func TestWallKindNames(t *testing.T) {
	for i, name := range WallPrintNames {
		wk, err := ParseWallKind(name)
		assert.NoError(t, err)
		assert.Equal(t, WallKind(i), wk)
		assert.Equal(t, name, wk.String())
	}
	wk, err := ParseWallKind(" strainedLEFT ")
	assert.NoError(t, err)
	assert.True(t, wk.Driven())
	assert.False(t, RightWall.Driven())
	_, err = ParseWallKind("diagonal")
	assert.True(t, errors.Is(err, ErrUnsupportedBoundaryType))
	assert.Equal(t, "WallKind(9)", WallKind(9).String())
}

func TestExcitation(t *testing.T) {
	e := Excitation{Cutoff: DefaultSourceCutoff}
	assert.Equal(t, 1., e.Input(0))
	assert.InDelta(t, math.Cos(2*math.Pi*0.25), e.Input(0.25), 1.e-15)
	assert.Equal(t, 0., e.Input(0.3))
	assert.Equal(t, 0., e.Input(2))
}

func TestCornerClassification(t *testing.T) {
	var (
		p = func(x, y float64) Coordinate { return MustCoordinate(x, y) }
		// Clockwise rectangle on screen axes, y grows downward
		top    = MustSegment(TopWall, p(0, 0), p(5, 0))
		right  = MustSegment(RightWall, p(5, 0), p(5, 5))
		bottom = MustSegment(BottomWall, p(5, 5), p(0, 5))
		left   = MustSegment(LeftWall, p(0, 5), p(0, 0))
	)
	{ // Pass through loop, wave inside
		c, ok := ClassifyCorner(top, right, true)
		assert.True(t, ok)
		assert.Equal(t, Corner{p(5, 0), RightTop}, c)
		c, ok = ClassifyCorner(right, bottom, true)
		assert.True(t, ok)
		assert.Equal(t, Corner{p(5, 5), RightBottom}, c)
		c, ok = ClassifyCorner(bottom, left, true)
		assert.True(t, ok)
		assert.Equal(t, Corner{p(0, 5), LeftBottom}, c)
		c, ok = ClassifyCorner(left, top, true)
		assert.True(t, ok)
		assert.Equal(t, Corner{p(0, 0), LeftTop}, c)
		// Collinear junctions are not corners
		_, ok = ClassifyCorner(top, MustSegment(TopWall, p(5, 0), p(6, 0)), true)
		assert.False(t, ok)
	}
	{ // The same junctions do not qualify as external corners
		for _, pair := range [][2]Segment{{top, right}, {right, bottom}, {bottom, left}, {left, top}} {
			_, ok := ClassifyCorner(pair[0], pair[1], false)
			assert.False(t, ok)
		}
	}
	{ // Blocking loop traversed the other way, wave outside
		var (
			up    = MustSegment(RightWall, p(3, 3), p(3, 2))
			west  = MustSegment(TopWall, p(3, 2), p(2, 2))
			down  = MustSegment(LeftWall, p(2, 2), p(2, 3))
			east  = MustSegment(BottomWall, p(2, 3), p(3, 3))
			check = func(s1, s2 Segment, want Corner) {
				c, ok := ExternalCorner(s1, s2)
				assert.True(t, ok)
				assert.Equal(t, want, c)
				assert.Equal(t, want.Kind.String()+want.Point.String(), c.String())
			}
		)
		check(up, west, Corner{p(3, 2), RightTop})
		check(west, down, Corner{p(2, 2), LeftTop})
		check(down, east, Corner{p(2, 3), LeftBottom})
		check(east, up, Corner{p(3, 3), RightBottom})
	}
}
