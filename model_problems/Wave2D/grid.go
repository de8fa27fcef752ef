package Wave2D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gofdtd/geometry2D"
	"github.com/notargets/gofdtd/utils"
)

var ErrUnstableDiscretization = errors.New("unstable discretization")

// Grid discretizes a width x height domain into square cells of size Side,
// stepped in time by DT.
type Grid struct {
	Width, Height float64
	Side, DT      float64
}

func NewGrid(width, height, side, dt float64) (g Grid, err error) {
	if dt > side {
		err = fmt.Errorf("courant condition requires dt <= side, have dt = %v, side = %v: %w",
			dt, side, ErrUnstableDiscretization)
		return
	}
	if !(side > 0) || !(dt > 0) {
		err = fmt.Errorf("side and dt must be positive, have side = %v, dt = %v: %w",
			side, dt, geometry2D.ErrInvalidGeometry)
		return
	}
	g = Grid{Width: width, Height: height, Side: side, DT: dt}
	if g.RowNum() < 1 || g.ColNum() < 1 {
		err = fmt.Errorf("domain %v x %v holds no cells of side %v: %w",
			width, height, side, geometry2D.ErrInvalidGeometry)
		g = Grid{}
	}
	return
}

func (g Grid) CalculateGridNum(coord float64) int {
	return int(math.Floor(coord / g.Side))
}

// RowNum is the number of cells along x, the first field index.
func (g Grid) RowNum() int { return g.CalculateGridNum(g.Width) }

// ColNum is the number of cells along y, the second field index.
func (g Grid) ColNum() int { return g.CalculateGridNum(g.Height) }

func (g Grid) Alpha() float64 { return utils.POW(g.DT/g.Side, 2) }

// Steps is the number of steps needed to reach finalTime.
func (g Grid) Steps(finalTime float64) int {
	return int(math.Ceil(finalTime/g.DT - utils.NODETOL))
}

// offsetIndex pulls an index off the outer lattice edge; index 0 stays put.
func offsetIndex(i int) int {
	if i != 0 {
		i--
	}
	return i
}

// WallIndices returns the cells covered by a segment: a half open, ascending
// run along the segment's axis at a constant offset index across it.
func (g Grid) WallIndices(s geometry2D.Segment) (xs, ys utils.Index) {
	if s.Horizontal() {
		xmin, xmax := g.sortedRange(s.A.X, s.B.X)
		xs = utils.NewSpan(xmin, xmax)
		ys = utils.NewConst(len(xs), offsetIndex(g.CalculateGridNum(s.A.Y)))
		return
	}
	ymin, ymax := g.sortedRange(s.A.Y, s.B.Y)
	ys = utils.NewSpan(ymin, ymax)
	xs = utils.NewConst(len(ys), offsetIndex(g.CalculateGridNum(s.A.X)))
	return
}

func (g Grid) CornerIndex(c geometry2D.Corner) (x, y int) {
	x = offsetIndex(g.CalculateGridNum(c.Point.X))
	y = offsetIndex(g.CalculateGridNum(c.Point.Y))
	return
}

func (g Grid) sortedRange(a, b float64) (imin, imax int) {
	if a > b {
		a, b = b, a
	}
	return g.CalculateGridNum(a), g.CalculateGridNum(b)
}

func (g Grid) Print() {
	fmt.Printf("%8.5f x %8.5f\t= Domain\n", g.Width, g.Height)
	fmt.Printf("%8.5f\t\t= Side\n", g.Side)
	fmt.Printf("%8.5f\t\t= DT\n", g.DT)
	fmt.Printf("[%d x %d]\t\t= Lattice\n", g.RowNum(), g.ColNum())
	fmt.Printf("%8.5f\t\t= Alpha\n", g.Alpha())
}
