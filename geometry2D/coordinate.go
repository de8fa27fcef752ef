package geometry2D

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeometry         = errors.New("invalid geometry")
	ErrUnsupportedBoundaryType = errors.New("unsupported boundary type")
)

// Coordinate is a point in the non-negative quadrant of the physical domain.
type Coordinate struct {
	X, Y float64
}

func NewCoordinate(x, y float64) (c Coordinate, err error) {
	if x < 0 || y < 0 {
		err = fmt.Errorf("coordinate (%v,%v) has a negative component: %w", x, y, ErrInvalidGeometry)
		return
	}
	c = Coordinate{X: x, Y: y}
	return
}

// MustCoordinate is NewCoordinate for literal geometry, it panics on error.
func MustCoordinate(x, y float64) Coordinate {
	c, err := NewCoordinate(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}
