package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

// Accumulate adds val to the (i,j) entry, so repeated couplings sum up.
func (m DOK) Accumulate(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }

// RowDot is row i of the matrix times x, computed by the sparse BLAS kernel
// over the stored entries of the row.
func (m CSR) RowDot(i int, x []float64) float64 {
	var (
		raw        = m.M.RawMatrix()
		begin, end = raw.Indptr[i], raw.Indptr[i+1]
	)
	return blas.Dusdot(raw.Data[begin:end], raw.Ind[begin:end], x, 1)
}
