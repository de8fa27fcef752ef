package Wave2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofdtd/geometry2D"
	"github.com/notargets/gofdtd/utils"
)

// rampField is 4x4 with (i,j) = 4*i + j + 1
func rampField() utils.Matrix {
	m := utils.NewMatrix(4, 4)
	for k := range m.DataP {
		m.DataP[k] = float64(k + 1)
	}
	return m
}

func TestReflectWall(t *testing.T) {
	var (
		cur   = rampField()
		prev  = utils.NewMatrix(4, 4)
		alpha = 0.16
		side  = 0.25
		xs    = utils.Index{0, 0}
		ys    = utils.Index{1, 2}
		left  = geometry2D.MustSegment(geometry2D.LeftWall, pt(0, 1), pt(0, 3))
	)
	{ // (0,1): c = 2, 2*c(1,1) + c(0,0) + c(0,2) = 12 + 1 + 3
		vals := ReflectWall(left, cur, prev, xs, ys, alpha, side, 0)
		assert.Len(t, vals, 2)
		assert.InDelta(t, 4+alpha*(16-8), vals[0], 1.e-14)
		// (0,2): c = 3, 2*7 + 2 + 4
		assert.InDelta(t, 6+alpha*(20-12), vals[1], 1.e-14)
	}
	{ // A driven wall subtracts 2*side*input(t) from the neighbor sum
		driven := geometry2D.MustSegment(geometry2D.StrainedLeftWall, pt(0, 1), pt(0, 3))
		vals := ReflectWall(driven, cur, prev, xs, ys, alpha, side, 0)
		assert.InDelta(t, 4+alpha*(16-2*side-8), vals[0], 1.e-14)
		// and falls back to the plain formula after the cutoff
		vals = ReflectWall(driven, cur, prev, xs, ys, alpha, side, 0.5)
		assert.InDelta(t, 4+alpha*(16-8), vals[0], 1.e-14)
		assert.Equal(t, 2*side, SourceTerm(driven, side, 0))
		assert.Equal(t, 0., SourceTerm(left, side, 0))
	}
	{ // Values are read from cur, never from the written cells
		bottom := geometry2D.MustSegment(geometry2D.BottomWall, pt(0, 1), pt(3, 1))
		vals := ReflectWall(bottom, cur, prev, utils.Index{1, 2}, utils.Index{3, 3}, alpha, side, 0)
		// (1,3): c = 8, c(0,3) + c(2,3) + 2*c(1,2) = 4 + 12 + 14
		assert.InDelta(t, 16+alpha*(30-32), vals[0], 1.e-14)
	}
	assert.Panics(t, func() {
		s := geometry2D.Segment{A: pt(0, 0), B: pt(1, 0), Kind: geometry2D.WallKind(42)}
		ReflectWall(s, cur, prev, xs, ys, alpha, side, 0)
	})
}

func TestReflectCorner(t *testing.T) {
	var (
		cur   = rampField()
		prev  = utils.NewMatrix(4, 4)
		alpha = 0.16
	)
	// (3,0): c = 13, 2*c(2,0) + 2*c(3,1) = 18 + 28
	rt := geometry2D.Corner{Point: pt(1, 0), Kind: geometry2D.RightTop}
	assert.InDelta(t, 26+alpha*(46-52), ReflectCorner(rt, cur, prev, 3, 0, alpha), 1.e-14)
	// (0,3): c = 4, 2*c(1,3) + 2*c(0,2) = 16 + 6
	lb := geometry2D.Corner{Point: pt(0, 1), Kind: geometry2D.LeftBottom}
	assert.InDelta(t, 8+alpha*(22-16), ReflectCorner(lb, cur, prev, 0, 3, alpha), 1.e-14)
	assert.Panics(t, func() {
		ReflectCorner(geometry2D.Corner{Kind: geometry2D.CornerKind(9)}, cur, prev, 0, 0, alpha)
	})
}

func TestUniformFieldIsSteady(t *testing.T) {
	var (
		cur   = utils.NewMatrix(4, 4).AddScalar(1)
		prev  = utils.NewMatrix(4, 4).AddScalar(1)
		alpha = 0.16
		xs    = utils.Index{1, 2}
		ys    = utils.Index{1, 1}
	)
	for kind := range geometry2D.WallPrintNames {
		s := geometry2D.Segment{A: pt(0, 0), B: pt(1, 0), Kind: geometry2D.WallKind(kind)}
		for _, val := range ReflectWall(s, cur, prev, xs, ys, alpha, 0.25, 1) {
			assert.Equal(t, 1., val, s.Kind.String())
		}
	}
	for kind := range geometry2D.CornerPrintNames {
		c := geometry2D.Corner{Kind: geometry2D.CornerKind(kind)}
		assert.Equal(t, 1., ReflectCorner(c, cur, prev, 2, 2, alpha))
	}
}
