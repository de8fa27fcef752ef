package utils

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
)

// NewLatticeMesh triangulates a uniform nr x nc lattice with one vertex per
// cell center, vertex (i,j) stored at i*nc+j to match Matrix.DataP.
func NewLatticeMesh(nr, nc int, side float64) (gm geometry.TriMesh) {
	var (
		xy    = make([]float32, 2*nr*nc)
		verts = make([][3]int64, 0, 2*(nr-1)*(nc-1))
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			ind := i*nc + j
			xy[2*ind] = float32((float64(i) + 0.5) * side)
			xy[2*ind+1] = float32((float64(j) + 0.5) * side)
		}
	}
	for i := 0; i < nr-1; i++ {
		for j := 0; j < nc-1; j++ {
			v00 := int64(i*nc + j)
			v10 := int64((i+1)*nc + j)
			v01 := int64(i*nc + j + 1)
			v11 := int64((i+1)*nc + j + 1)
			verts = append(verts, [3]int64{v00, v10, v11}, [3]int64{v00, v11, v01})
		}
	}
	gm = geometry.NewTriMesh(xy, verts)
	return
}

type SurfacePlot struct {
	Chart      *chart2d.Chart2D
	Mesh       geometry.TriMesh
	FMin, FMax float32
}

func NewSurfacePlot(width, height int, xmin, xmax, ymin, ymax float64,
	gm geometry.TriMesh, fmin, fmax float64) (sp *SurfacePlot) {
	sp = &SurfacePlot{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax), float32(ymin), float32(ymax),
			width, height, utils2.WHITE, utils2.BLACK),
		Mesh: gm,
		FMin: float32(fmin),
		FMax: float32(fmax),
	}
	return
}

// AddOutline draws a polyline given as alternating x,y coordinates.
func (sp *SurfacePlot) AddOutline(xs, ys []float64, col color.RGBA) {
	var (
		line []float32
	)
	for i := 0; i+1 < len(xs); i++ {
		line = append(line,
			float32(xs[i]), float32(ys[i]),
			float32(xs[i+1]), float32(ys[i+1]))
	}
	if len(line) != 0 {
		sp.Chart.AddLine(line, col)
	}
}

func (sp *SurfacePlot) PlotField(field []float64) {
	vs := geometry.VertexScalar{
		TMesh:       &sp.Mesh,
		FieldValues: Float32(field),
	}
	sp.Chart.AddShadedVertexScalar(&vs, sp.FMin, sp.FMax)
}
