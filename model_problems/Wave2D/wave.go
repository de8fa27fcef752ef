package Wave2D

import (
	"runtime"

	"github.com/notargets/gofdtd/utils"
)

// Wave is one emitted generation of the field. Its storage is never shared
// with the WaveFactory that produced it.
type Wave struct {
	Value utils.Matrix // [RowNum, ColNum], indexed [x, y]
	Time  float64      // Time the generation was computed from
	Step  int          // 1 for the first emitted wave
}

func (w Wave) At(x, y int) float64 { return w.Value.At(x, y) }

func (w Wave) Dims() (rows, cols int) { return w.Value.Dims() }

// Transpose returns the field indexed [y, x], for renderers that draw rows
// along y.
func (w Wave) Transpose() utils.Matrix { return w.Value.Transpose() }

// WaveFactory advances the field with the leapfrog scheme, two generations
// at a time.
type WaveFactory struct {
	grid       Grid
	obstacles  []*Obstacle
	plans      []*BoundaryPlan
	current    utils.Matrix
	previous   utils.Matrix
	next       utils.Matrix
	time       float64
	step       int
	Partitions *utils.PartitionMap
	laplacian  *Laplacian
}

type Option func(wf *WaveFactory)

// WithParallelDegree splits the interior update into NP row blocks.
func WithParallelDegree(NP int) Option {
	return func(wf *WaveFactory) {
		wf.Partitions = utils.NewPartitionMap(NP, wf.grid.RowNum())
	}
}

// WithSparseLaplacian computes the interior update with an assembled
// periodic Laplacian instead of shifted copies of the field.
func WithSparseLaplacian() Option {
	return func(wf *WaveFactory) {
		wf.laplacian = NewPeriodicLaplacian(wf.grid.RowNum(), wf.grid.ColNum())
	}
}

func NewWaveFactory(g Grid, obstacles []*Obstacle, opts ...Option) (wf *WaveFactory) {
	var (
		nr, nc = g.RowNum(), g.ColNum()
	)
	wf = &WaveFactory{
		grid:       g,
		obstacles:  make([]*Obstacle, len(obstacles)),
		plans:      make([]*BoundaryPlan, len(obstacles)),
		current:    utils.NewMatrix(nr, nc),
		previous:   utils.NewMatrix(nr, nc),
		next:       utils.NewMatrix(nr, nc),
		Partitions: utils.NewPartitionMap(runtime.NumCPU(), nr),
	}
	copy(wf.obstacles, obstacles)
	for i, o := range wf.obstacles {
		wf.plans[i] = o.Resolve(g)
	}
	for _, opt := range opts {
		opt(wf)
	}
	return
}

func (wf *WaveFactory) Grid() Grid             { return wf.grid }
func (wf *WaveFactory) Obstacles() []*Obstacle { return wf.obstacles }
func (wf *WaveFactory) Time() float64          { return wf.time }
func (wf *WaveFactory) Step() int              { return wf.step }
func (wf *WaveFactory) Current() utils.Matrix  { return wf.current.Copy() }
func (wf *WaveFactory) Previous() utils.Matrix { return wf.previous.Copy() }
func (wf *WaveFactory) Plans() []*BoundaryPlan { return wf.plans }

func (wf *WaveFactory) ParallelDegree() int {
	return wf.Partitions.ParallelDegree
}

func (wf *WaveFactory) UsesSparseLaplacian() bool {
	return wf.laplacian != nil
}

// Advance computes the next generation, emits it and commits it.
func (wf *WaveFactory) Advance() (w Wave) {
	var (
		alpha = wf.grid.Alpha()
	)
	if wf.laplacian != nil {
		wf.Partitions.ForEachBucket(func(_, kMin, kMax int) {
			wf.laplacian.Leapfrog(wf.next, wf.current, wf.previous, alpha, kMin, kMax)
		})
	} else {
		wf.Partitions.ForEachBucket(func(_, kMin, kMax int) {
			wf.interiorUpdate(kMin, kMax, alpha)
		})
	}
	for _, bp := range wf.plans {
		bp.Apply(wf.next, wf.current, wf.previous, wf.time)
	}
	w = Wave{
		Value: wf.next.Copy(),
		Time:  wf.time,
		Step:  wf.step + 1,
	}
	w.Value.SetReadOnly("wave")
	// The oldest generation becomes scratch space for the following step
	wf.previous, wf.current, wf.next = wf.current, wf.next, wf.previous
	wf.time += wf.grid.DT
	wf.step++
	return
}

// interiorUpdate applies the unconstrained stencil to rows [iMin, iMax),
// with the four neighbors taken cyclically.
func (wf *WaveFactory) interiorUpdate(iMin, iMax int, alpha float64) {
	var (
		nr, nc = wf.current.Dims()
		c      = wf.current.DataP
		p      = wf.previous.DataP
		n      = wf.next.DataP
	)
	for i := iMin; i < iMax; i++ {
		var (
			row  = i * nc
			up   = utils.Wrap(i-1, nr) * nc
			down = utils.Wrap(i+1, nr) * nc
		)
		for j := 0; j < nc; j++ {
			var (
				left  = utils.Wrap(j-1, nc)
				right = utils.Wrap(j+1, nc)
				cc    = c[row+j]
			)
			shiftedSum := c[row+left] + c[row+right] + c[down+j] + c[up+j]
			n[row+j] = 2*cc - p[row+j] + alpha*(shiftedSum-4*cc)
		}
	}
}
