package Wave2D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofdtd/geometry2D"
	"github.com/notargets/gofdtd/utils"
)

var pt = geometry2D.MustCoordinate

func TestGrid(t *testing.T) {
	{ // Lattice sizing
		g, err := NewGrid(5, 5, 0.25, 0.1)
		require.NoError(t, err)
		assert.Equal(t, 20, g.RowNum())
		assert.Equal(t, 20, g.ColNum())
		assert.InDelta(t, 0.16, g.Alpha(), 1.e-15)
		assert.Equal(t, 10, g.Steps(1))
		assert.Equal(t, 10, g.Steps(0.95))

		g, err = NewGrid(5, 2.5, 0.25, 0.1)
		require.NoError(t, err)
		assert.Equal(t, 20, g.RowNum())
		assert.Equal(t, 10, g.ColNum())

		g, err = NewGrid(5, 5, 0.05, 0.01)
		require.NoError(t, err)
		assert.Equal(t, 100, g.RowNum())
		assert.Equal(t, 100, g.ColNum())
	}
	{ // Grid numbers of exact multiples
		for _, side := range []float64{0.125, 0.25, 0.5} {
			g, err := NewGrid(10, 10, side, side/2)
			require.NoError(t, err)
			for k := 0; k < 40; k++ {
				assert.Equal(t, k, g.CalculateGridNum(side*float64(k)))
			}
		}
	}
	{ // Rejected discretizations
		_, err := NewGrid(5, 5, 0.1, 0.2)
		assert.True(t, errors.Is(err, ErrUnstableDiscretization))
		_, err = NewGrid(5, 5, 0, 0)
		assert.True(t, errors.Is(err, geometry2D.ErrInvalidGeometry))
		// dt <= side also needs a positive dt
		_, err = NewGrid(5, 5, 0.25, 0)
		assert.True(t, errors.Is(err, geometry2D.ErrInvalidGeometry))
		_, err = NewGrid(5, 5, 0.25, 0.25)
		assert.NoError(t, err)
		_, err = NewGrid(0.1, 5, 0.25, 0.1)
		assert.True(t, errors.Is(err, geometry2D.ErrInvalidGeometry))
	}
}

func TestGridIndices(t *testing.T) {
	g, err := NewGrid(5, 5, 0.25, 0.1)
	require.NoError(t, err)
	{ // Top edge stays on index 0
		xs, ys := g.WallIndices(geometry2D.MustSegment(geometry2D.TopWall, pt(0, 0), pt(5, 0)))
		assert.Equal(t, utils.NewRange(0, 19), xs)
		assert.Equal(t, utils.NewConst(20, 0), ys)
	}
	{ // Bottom edge is pulled inside, the run is ascending whatever the direction
		xs, ys := g.WallIndices(geometry2D.MustSegment(geometry2D.BottomWall, pt(5, 5), pt(0, 5)))
		assert.Equal(t, utils.NewRange(0, 19), xs)
		assert.Equal(t, utils.NewConst(20, 19), ys)
	}
	{
		xs, ys := g.WallIndices(geometry2D.MustSegment(geometry2D.RightWall, pt(5, 0), pt(5, 5)))
		assert.Equal(t, utils.NewConst(20, 19), xs)
		assert.Equal(t, utils.NewRange(0, 19), ys)
	}
	{ // Interior segment, half open on its far end
		xs, ys := g.WallIndices(geometry2D.MustSegment(geometry2D.LeftWall, pt(1, 3), pt(1, 2)))
		assert.Equal(t, utils.Index{3, 3, 3, 3}, xs)
		assert.Equal(t, utils.Index{8, 9, 10, 11}, ys)
	}
	{
		x, y := g.CornerIndex(geometry2D.Corner{Point: pt(5, 0), Kind: geometry2D.RightTop})
		assert.Equal(t, [2]int{19, 0}, [2]int{x, y})
		x, y = g.CornerIndex(geometry2D.Corner{Point: pt(0, 0), Kind: geometry2D.LeftTop})
		assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
		x, y = g.CornerIndex(geometry2D.Corner{Point: pt(2, 3), Kind: geometry2D.LeftBottom})
		assert.Equal(t, [2]int{7, 11}, [2]int{x, y})
	}
}
