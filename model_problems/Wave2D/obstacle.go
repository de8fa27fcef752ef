package Wave2D

import (
	"fmt"

	"github.com/notargets/gofdtd/geometry2D"
	"github.com/notargets/gofdtd/utils"
)

// Obstacle is a closed loop of segments. A pass through obstacle only
// reflects; a blocking one also clears the cell layer behind its walls so the
// unconstrained stencil cannot leak a wave across.
type Obstacle struct {
	Name        string
	segments    []geometry2D.Segment
	passThrough bool
	corners     []*geometry2D.Corner // corners[i] joins segments[i] and segments[i+1]
}

func NewObstacle(segments []geometry2D.Segment, passThrough bool) (o *Obstacle, err error) {
	var (
		n = len(segments)
	)
	if n == 0 {
		err = fmt.Errorf("obstacle has no segments: %w", geometry2D.ErrInvalidGeometry)
		return
	}
	o = &Obstacle{
		segments:    make([]geometry2D.Segment, n),
		passThrough: passThrough,
		corners:     make([]*geometry2D.Corner, n),
	}
	copy(o.segments, segments)
	for i, s := range o.segments {
		if c, ok := geometry2D.ClassifyCorner(s, o.segments[(i+1)%n], passThrough); ok {
			o.corners[i] = &c
		}
	}
	return
}

func (o *Obstacle) PassThrough() bool { return o.passThrough }

func (o *Obstacle) Segments() []geometry2D.Segment {
	s := make([]geometry2D.Segment, len(o.segments))
	copy(s, o.segments)
	return s
}

// Corners lists the classified junctions in loop order.
func (o *Obstacle) Corners() (corners []geometry2D.Corner) {
	for _, c := range o.corners {
		if c != nil {
			corners = append(corners, *c)
		}
	}
	return
}

// Xs and Ys trace the outline of the obstacle, segment by segment.
func (o *Obstacle) Xs() (xs []float64) {
	for _, s := range o.segments {
		xs = append(xs, s.A.X, s.B.X)
	}
	return
}

func (o *Obstacle) Ys() (ys []float64) {
	for _, s := range o.segments {
		ys = append(ys, s.A.Y, s.B.Y)
	}
	return
}

type wallPlan struct {
	segment geometry2D.Segment
	xs, ys  utils.Index
	corner  *geometry2D.Corner // corner shared with the next segment
	cx, cy  int
}

// BoundaryPlan is an obstacle with every index range resolved on a Grid.
type BoundaryPlan struct {
	obstacle         *Obstacle
	alpha, side      float64
	walls            []wallPlan
	clearXs, clearYs utils.Index // cells a blocking obstacle zeroes each step
}

func (o *Obstacle) Resolve(g Grid) (bp *BoundaryPlan) {
	var (
		n = len(o.segments)
	)
	bp = &BoundaryPlan{
		obstacle: o,
		alpha:    g.Alpha(),
		side:     g.Side,
		walls:    make([]wallPlan, n),
	}
	for i, s := range o.segments {
		var (
			wp = wallPlan{segment: s}
		)
		wp.xs, wp.ys = g.WallIndices(s)
		if c := o.corners[(i-1+n)%n]; c != nil {
			x, y := g.CornerIndex(*c)
			wp.xs, wp.ys = trimCell(wp.xs, wp.ys, x, y)
		}
		if c := o.corners[i]; c != nil {
			wp.corner = c
			wp.cx, wp.cy = g.CornerIndex(*c)
			wp.xs, wp.ys = trimCell(wp.xs, wp.ys, wp.cx, wp.cy)
		}
		bp.walls[i] = wp
	}
	if !o.passThrough {
		bp.resolveBody(g)
	}
	return
}

// trimCell removes (x,y) from the run when it sits at either end; the cell
// belongs to a corner.
func trimCell(xs, ys utils.Index, x, y int) (utils.Index, utils.Index) {
	var (
		n = len(xs)
	)
	switch {
	case n == 0:
	case xs[0] == x && ys[0] == y:
		return xs.DropFirst(), ys.DropFirst()
	case xs[n-1] == x && ys[n-1] == y:
		return xs.DropLast(), ys.DropLast()
	}
	return xs, ys
}

// resolveBody collects the cells a blocking plan clears after its walls are
// written: the layer behind each wall, the body side neighbors of each corner
// and, when the loop winds around its body, every cell whose center lies
// inside the loop. Cells that carry a wall or corner formula are never cleared.
func (bp *BoundaryPlan) resolveBody(g Grid) {
	var (
		nr, nc  = g.RowNum(), g.ColNum()
		written = make(map[[2]int]bool)
		cleared = make(map[[2]int]bool)
		key     = func(x, y int) [2]int { return [2]int{utils.Wrap(x, nr), utils.Wrap(y, nc)} }
		zero    = func(x, y int) {
			k := key(x, y)
			if written[k] || cleared[k] {
				return
			}
			cleared[k] = true
			bp.clearXs, bp.clearYs = append(bp.clearXs, k[0]), append(bp.clearYs, k[1])
		}
	)
	for _, wp := range bp.walls {
		if wp.corner != nil {
			written[key(wp.cx, wp.cy)] = true
		}
		for n := range wp.xs {
			written[key(wp.xs[n], wp.ys[n])] = true
		}
	}
	for _, wp := range bp.walls {
		if wp.corner != nil {
			for _, d := range cornerOffsets(wp.segment) {
				zero(wp.cx+d[0], wp.cy+d[1])
			}
		}
		d := layerOffset(wp.segment)
		for n := range wp.xs {
			zero(wp.xs[n]+d[0], wp.ys[n]+d[1])
		}
	}
	if bp.obstacle.windsClockwise() {
		var (
			lo, hi = bp.obstacle.bounds()
			xmax   = min(g.CalculateGridNum(hi.X), nr-1)
			ymax   = min(g.CalculateGridNum(hi.Y), nc-1)
		)
		for x := g.CalculateGridNum(lo.X); x <= xmax; x++ {
			for y := g.CalculateGridNum(lo.Y); y <= ymax; y++ {
				if bp.obstacle.contains((float64(x)+0.5)*g.Side, (float64(y)+0.5)*g.Side) {
					zero(x, y)
				}
			}
		}
	}
}

// Apply overwrites the boundary cells of next, reading only cur and prev.
func (bp *BoundaryPlan) Apply(next, cur, prev utils.Matrix, t float64) {
	for _, wp := range bp.walls {
		if wp.corner != nil {
			next.Set(wp.cx, wp.cy, ReflectCorner(*wp.corner, cur, prev, wp.cx, wp.cy, bp.alpha))
		}
		next.AssignIndexed(wp.xs, wp.ys,
			ReflectWall(wp.segment, cur, prev, wp.xs, wp.ys, bp.alpha, bp.side, t))
	}
	if len(bp.clearXs) != 0 {
		next.AssignScalarIndexed(bp.clearXs, bp.clearYs, 0, 0, 0)
	}
}

// Cells lists every cell the plan writes a formula to, for diagnostics and plotting.
func (bp *BoundaryPlan) Cells() (xs, ys utils.Index) {
	for _, wp := range bp.walls {
		if wp.corner != nil {
			xs, ys = append(xs, wp.cx), append(ys, wp.cy)
		}
		xs, ys = append(xs, wp.xs...), append(ys, wp.ys...)
	}
	return
}

// Cleared lists the cells a blocking plan zeroes on every step.
func (bp *BoundaryPlan) Cleared() (xs, ys utils.Index) {
	return bp.clearXs, bp.clearYs
}

// windsClockwise is true when the body lies to the right of travel, with y
// pointing down. The reflecting side of every wall formula then faces away
// from the enclosed cells.
func (o *Obstacle) windsClockwise() bool {
	var (
		area float64
	)
	for _, s := range o.segments {
		area += s.A.X*s.B.Y - s.B.X*s.A.Y
	}
	return area > 0
}

func (o *Obstacle) bounds() (lo, hi geometry2D.Coordinate) {
	lo, hi = o.segments[0].A, o.segments[0].A
	for _, s := range o.segments {
		for _, p := range [2]geometry2D.Coordinate{s.A, s.B} {
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
	}
	return
}

// contains is an even-odd crossing test of the point against the loop.
func (o *Obstacle) contains(x, y float64) (inside bool) {
	for _, s := range o.segments {
		if (s.A.Y > y) != (s.B.Y > y) {
			if x < s.A.X+(y-s.A.Y)*(s.B.X-s.A.X)/(s.B.Y-s.A.Y) {
				inside = !inside
			}
		}
	}
	return
}

// layerOffset points from a wall cell to the body side cell behind it.
func layerOffset(s geometry2D.Segment) [2]int {
	switch {
	case s.Downward():
		return [2]int{-1, 0}
	case s.Upward():
		return [2]int{1, 0}
	case s.Leftward():
		return [2]int{0, -1}
	default:
		return [2]int{0, 1}
	}
}

// cornerOffsets point from a corner cell to its two body side neighbors,
// keyed by the direction of the segment arriving at it.
func cornerOffsets(s geometry2D.Segment) [2][2]int {
	switch {
	case s.Downward():
		return [2][2]int{{0, 1}, {-1, 0}}
	case s.Upward():
		return [2][2]int{{0, -1}, {1, 0}}
	case s.Leftward():
		return [2][2]int{{0, -1}, {-1, 0}}
	default:
		return [2][2]int{{0, 1}, {1, 0}}
	}
}
