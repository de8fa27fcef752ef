package Wave2D

import (
	"github.com/notargets/gofdtd/utils"
)

// Laplacian is the periodic five point stencil assembled as a sparse
// operator over the flattened field, cell (i,j) at i*nc+j.
type Laplacian struct {
	nr, nc int
	Op     utils.CSR
}

func NewPeriodicLaplacian(nr, nc int) (L *Laplacian) {
	var (
		N   = nr * nc
		dok = utils.NewDOK(N, N)
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			k := i*nc + j
			dok.Accumulate(k, k, -4)
			dok.Accumulate(k, utils.Wrap(i-1, nr)*nc+j, 1)
			dok.Accumulate(k, utils.Wrap(i+1, nr)*nc+j, 1)
			dok.Accumulate(k, i*nc+utils.Wrap(j-1, nc), 1)
			dok.Accumulate(k, i*nc+utils.Wrap(j+1, nc), 1)
		}
	}
	L = &Laplacian{nr: nr, nc: nc, Op: dok.ToCSR()}
	return
}

// Apply returns (L*u)[k] for the cells of rows [iMin, iMax).
func (L *Laplacian) Apply(u utils.Matrix, iMin, iMax int) (lu []float64) {
	var (
		uD = u.DataP
	)
	lu = make([]float64, (iMax-iMin)*L.nc)
	for k := iMin * L.nc; k < iMax*L.nc; k++ {
		lu[k-iMin*L.nc] = L.Op.RowDot(k, uD)
	}
	return
}

// Leapfrog writes next = 2*cur - prev + alpha*L*cur for rows [iMin, iMax).
func (L *Laplacian) Leapfrog(next, cur, prev utils.Matrix, alpha float64, iMin, iMax int) {
	var (
		lu     = L.Apply(cur, iMin, iMax)
		offset = iMin * L.nc
		c, p   = cur.DataP, prev.DataP
		n      = next.DataP
	)
	for kk, val := range lu {
		k := kk + offset
		n[k] = 2*c[k] - p[k] + alpha*val
	}
}
