package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major field backed by gonum. DataP aliases the
// storage of M so hot loops can index it directly: element (i,j) lives at
// DataP[i*nc+j].
type Matrix struct {
	M        *mat.Dense
	DataP    []float64
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var (
		m    *mat.Dense
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, nr*nc)
	}
	m = mat.NewDense(nr, nc, data)
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
		name:  "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) IsReadOnly() bool { return m.readOnly }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.DataP
	)
	R = NewMatrix(nc, nr)
	dataR := R.DataP
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataR[j*nr+i] = data[i*nc+j]
		}
	}
	return
}

// AtWrap reads element (i,j) with both indices wrapped onto the matrix.
func (m Matrix) AtWrap(i, j int) float64 {
	var (
		nr, nc = m.Dims()
	)
	return m.DataP[Wrap(i, nr)*nc+Wrap(j, nc)]
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	m.DataP[Wrap(i, nr)*nc+Wrap(j, nc)] = val
	return m
}

// AssignIndexed writes Val[n] into (I[n], J[n]) for every n.
func (m Matrix) AssignIndexed(I, J Index, Val []float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	if len(I) != len(J) || len(I) != len(Val) {
		err := fmt.Errorf("length of indices and values are not equal: len(I) = %v, len(J) = %v, len(Val) = %v", len(I), len(J), len(Val))
		panic(err)
	}
	for n, val := range Val {
		m.DataP[Wrap(I[n], nr)*nc+Wrap(J[n], nc)] = val
	}
	return m
}

// AssignScalarIndexed writes val into (I[n]+di, J[n]+dj) for every n.
func (m Matrix) AssignScalarIndexed(I, J Index, di, dj int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	for n := range I {
		m.DataP[Wrap(I[n]+di, nr)*nc+Wrap(J[n]+dj, nc)] = val
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] += a
	}
	return m
}

// Non chainable methods
func (m Matrix) Min() (min float64) {
	min = math.MaxFloat64
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = -math.MaxFloat64
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) AbsMax() (max float64) {
	for _, val := range m.DataP {
		if math.Abs(val) > max {
			max = math.Abs(val)
		}
	}
	return
}

func (m Matrix) Equal(A Matrix) bool {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		return false
	}
	for i, val := range m.DataP {
		if val != A.DataP[i] {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("%s =\n%v", m.name, mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// Wrap maps i onto [0, imax) cyclically, so -1 is imax-1 and imax is 0.
func Wrap(i, imax int) int {
	i %= imax
	if i < 0 {
		i += imax
	}
	return i
}
