package Wave2D

import (
	"fmt"

	"github.com/notargets/gofdtd/geometry2D"
	"github.com/notargets/gofdtd/utils"
)

/*
	All boundary formulas are the leapfrog update

		new = 2*c[x,y] - p[x,y] + alpha*(neighborSum - 4*c[x,y])

	with the neighbor missing behind the wall replaced by the opposite interior
	neighbor, i.e. that neighbor counts twice. Neighbor reads wrap around the
	lattice, as the default stencil does.
*/

// neighbors holds the weights of the four neighbors in a neighborSum, in the
// order x-1, x+1, y-1, y+1.
type neighbors [4]float64

var (
	wallWeights = map[geometry2D.WallKind]neighbors{
		geometry2D.RightWall:         {2, 0, 1, 1},
		geometry2D.LeftWall:          {0, 2, 1, 1},
		geometry2D.TopWall:           {1, 1, 0, 2},
		geometry2D.BottomWall:        {1, 1, 2, 0},
		geometry2D.StrainedLeftWall:  {0, 2, 1, 1},
		geometry2D.StrainedRightWall: {2, 0, 1, 1},
	}
	cornerWeights = map[geometry2D.CornerKind]neighbors{
		geometry2D.RightTop:    {2, 0, 0, 2},
		geometry2D.LeftTop:     {0, 2, 0, 2},
		geometry2D.RightBottom: {2, 0, 2, 0},
		geometry2D.LeftBottom:  {0, 2, 2, 0},
	}
)

func (w neighbors) sum(cur utils.Matrix, x, y int) (s float64) {
	if w[0] != 0 {
		s += w[0] * cur.AtWrap(x-1, y)
	}
	if w[1] != 0 {
		s += w[1] * cur.AtWrap(x+1, y)
	}
	if w[2] != 0 {
		s += w[2] * cur.AtWrap(x, y-1)
	}
	if w[3] != 0 {
		s += w[3] * cur.AtWrap(x, y+1)
	}
	return
}

func leapfrog(cur, prev utils.Matrix, x, y int, alpha, neighborSum float64) float64 {
	c := cur.AtWrap(x, y)
	return 2*c - prev.AtWrap(x, y) + alpha*(neighborSum-4*c)
}

// SourceTerm is the amount a driven segment subtracts from its neighborSum
// at time t; zero for plain segments.
func SourceTerm(s geometry2D.Segment, side, t float64) float64 {
	if !s.Kind.Driven() {
		return 0
	}
	return 2 * side * s.Source.Input(t)
}

// ReflectWall computes the new values of the cells (xs[n], ys[n]) along a
// segment. All values are read from cur and prev before anything is written.
func ReflectWall(s geometry2D.Segment, cur, prev utils.Matrix, xs, ys utils.Index,
	alpha, side, t float64) (values []float64) {
	var (
		w, ok = wallWeights[s.Kind]
		src   = SourceTerm(s, side, t)
	)
	if !ok {
		panic(fmt.Errorf("no reflection formula for %v: %w", s.Kind, geometry2D.ErrUnsupportedBoundaryType))
	}
	values = make([]float64, len(xs))
	for n := range xs {
		x, y := xs[n], ys[n]
		values[n] = leapfrog(cur, prev, x, y, alpha, w.sum(cur, x, y)-src)
	}
	return
}

func ReflectCorner(c geometry2D.Corner, cur, prev utils.Matrix, x, y int, alpha float64) float64 {
	w, ok := cornerWeights[c.Kind]
	if !ok {
		panic(fmt.Errorf("no reflection formula for %v: %w", c.Kind, geometry2D.ErrUnsupportedBoundaryType))
	}
	return leapfrog(cur, prev, x, y, alpha, w.sum(cur, x, y))
}
