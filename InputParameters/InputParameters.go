package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofdtd/geometry2D"
	"github.com/notargets/gofdtd/model_problems/Wave2D"
)

var ErrInvalidInput = errors.New("invalid input parameters")

// Parameters obtained from the YAML input file
type InputParametersWave2D struct {
	Title        string         `yaml:"Title"`
	Width        float64        `yaml:"Width"`
	Height       float64        `yaml:"Height"`
	Side         float64        `yaml:"Side"`
	DT           float64        `yaml:"DT"`
	FinalTime    float64        `yaml:"FinalTime"`
	SourceCutoff *float64       `yaml:"SourceCutoff"` // Defaults to geometry2D.DefaultSourceCutoff, 0 disables sources
	ColorScale   float64        `yaml:"ColorScale"`   // Defaults to Wave2D.DefaultColorScale
	Obstacles    []ObstacleSpec `yaml:"Obstacles"`
}

type ObstacleSpec struct {
	Name        string        `yaml:"Name"`
	PassThrough *bool         `yaml:"PassThrough"` // Defaults to true
	Segments    []SegmentSpec `yaml:"Segments"`
}

type SegmentSpec struct {
	Kind string     `yaml:"Kind"` // One of geometry2D.WallPrintNames, any case
	From [2]float64 `yaml:"From"`
	To   [2]float64 `yaml:"To"`
}

// ExampleFile is the sample scene: a reflecting box holding a blocking cross,
// driven from a section of the left wall.
const ExampleFile = `
########################################
Title: "Cross Obstacle"
Width: 5.0
Height: 5.0
Side: 0.05
DT: 0.01
FinalTime: 5
SourceCutoff: 0.3
ColorScale: 0.01
Obstacles:
  - Name: Box
    PassThrough: true
    Segments:
      - {Kind: Top, From: [0, 0], To: [5, 0]}
      - {Kind: Right, From: [5, 0], To: [5, 5]}
      - {Kind: Bottom, From: [5, 5], To: [0, 5]}
      - {Kind: Left, From: [0, 5], To: [0, 0]}
  - Name: Cross
    PassThrough: false
    Segments:
      - {Kind: Bottom, From: [1, 2], To: [2, 2]}
      - {Kind: Right, From: [2, 2], To: [2, 1]}
      - {Kind: Bottom, From: [2, 1], To: [3, 1]}
      - {Kind: Left, From: [3, 1], To: [3, 2]}
      - {Kind: Bottom, From: [3, 2], To: [4, 2]}
      - {Kind: Left, From: [4, 2], To: [4, 3]}
      - {Kind: Top, From: [4, 3], To: [3, 3]}
      - {Kind: Left, From: [3, 3], To: [3, 4]}
      - {Kind: Top, From: [3, 4], To: [2, 4]}
      - {Kind: Right, From: [2, 4], To: [2, 3]}
      - {Kind: Top, From: [2, 3], To: [1, 3]}
      - {Kind: Right, From: [1, 3], To: [1, 2]}
  - Name: Source
    Segments:
      - {Kind: StrainedLeft, From: [0, 2], To: [0, 4]}
########################################
`

func (ip *InputParametersWave2D) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.SourceCutoff == nil {
		cutoff := geometry2D.DefaultSourceCutoff
		ip.SourceCutoff = &cutoff
	}
	if ip.ColorScale == 0 {
		ip.ColorScale = Wave2D.DefaultColorScale
	}
	return
}

func (ip *InputParametersWave2D) Validate() (err error) {
	switch {
	case ip.Width <= 0 || ip.Height <= 0:
		err = fmt.Errorf("domain %v x %v must have a positive size: %w", ip.Width, ip.Height, ErrInvalidInput)
	case ip.Side <= 0 || ip.DT <= 0:
		err = fmt.Errorf("Side and DT must be positive: %w", ErrInvalidInput)
	case ip.FinalTime <= 0:
		err = fmt.Errorf("FinalTime must be positive: %w", ErrInvalidInput)
	case len(ip.Obstacles) == 0:
		err = fmt.Errorf("at least one obstacle is required: %w", ErrInvalidInput)
	}
	if err != nil {
		return
	}
	for i, o := range ip.Obstacles {
		if len(o.Segments) == 0 {
			return fmt.Errorf("obstacle %d (%s) has no segments: %w", i, o.Name, ErrInvalidInput)
		}
	}
	return
}

func (ip *InputParametersWave2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f x %8.5f\t= Domain\n", ip.Width, ip.Height)
	fmt.Printf("%8.5f\t\t= Side\n", ip.Side)
	fmt.Printf("%8.5f\t\t= DT\n", ip.DT)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= SourceCutoff\n", ip.sourceCutoff())
	fmt.Printf("%8.5f\t\t= ColorScale\n", ip.ColorScale)
	for _, o := range ip.Obstacles {
		fmt.Printf("Obstacle[%s] PassThrough = %v, %d segments\n",
			o.Name, o.passThrough(), len(o.Segments))
	}
}

func (ip *InputParametersWave2D) BuildGrid() (Wave2D.Grid, error) {
	return Wave2D.NewGrid(ip.Width, ip.Height, ip.Side, ip.DT)
}

func (ip *InputParametersWave2D) BuildObstacles() (obstacles []*Wave2D.Obstacle, err error) {
	for _, od := range ip.Obstacles {
		var (
			segments []geometry2D.Segment
			o        *Wave2D.Obstacle
		)
		for _, ss := range od.Segments {
			var s geometry2D.Segment
			if s, err = ss.build(); err != nil {
				err = fmt.Errorf("obstacle %s: %w", od.Name, err)
				return
			}
			segments = append(segments, s.WithSourceCutoff(ip.sourceCutoff()))
		}
		if o, err = Wave2D.NewObstacle(segments, od.passThrough()); err != nil {
			err = fmt.Errorf("obstacle %s: %w", od.Name, err)
			return
		}
		o.Name = od.Name
		obstacles = append(obstacles, o)
	}
	return
}

func (ip *InputParametersWave2D) sourceCutoff() float64 {
	if ip.SourceCutoff == nil {
		return geometry2D.DefaultSourceCutoff
	}
	return *ip.SourceCutoff
}

func (od ObstacleSpec) passThrough() bool {
	return od.PassThrough == nil || *od.PassThrough
}

func (ss SegmentSpec) build() (s geometry2D.Segment, err error) {
	var (
		kind geometry2D.WallKind
		a, b geometry2D.Coordinate
	)
	if kind, err = geometry2D.ParseWallKind(ss.Kind); err != nil {
		return
	}
	if a, err = geometry2D.NewCoordinate(ss.From[0], ss.From[1]); err != nil {
		return
	}
	if b, err = geometry2D.NewCoordinate(ss.To[0], ss.To[1]); err != nil {
		return
	}
	return geometry2D.NewSegment(kind, a, b)
}
