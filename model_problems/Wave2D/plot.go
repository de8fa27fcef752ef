package Wave2D

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gofdtd/utils"
)

// DefaultColorScale bounds the field values a renderer maps onto its palette.
const DefaultColorScale = 0.01

// MaxFrameCells bounds the lattice size a frame stream may declare.
const MaxFrameCells = 1 << 26

var ErrInvalidFrameHeader = errors.New("invalid frame header")

/*
	BinaryFrameWriter stores waves as a little endian stream:

		int64 rows, int64 cols
		per frame: float64 time, rows*cols float64 values in [x, y] order
*/
type BinaryFrameWriter struct {
	w      io.Writer
	closer io.Closer
	rows   int
	cols   int
	Frames int
}

func NewBinaryFrameWriter(w io.Writer, g Grid) (bw *BinaryFrameWriter, err error) {
	bw = &BinaryFrameWriter{
		w:    w,
		rows: g.RowNum(),
		cols: g.ColNum(),
	}
	if c, ok := w.(io.Closer); ok {
		bw.closer = c
	}
	if err = binary.Write(w, binary.LittleEndian, [2]int64{int64(bw.rows), int64(bw.cols)}); err != nil {
		err = fmt.Errorf("unable to write frame header: %w", err)
	}
	return
}

func CreateBinaryFrameFile(fileName string, g Grid) (bw *BinaryFrameWriter, err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return
	}
	if bw, err = NewBinaryFrameWriter(file, g); err != nil {
		file.Close()
	}
	return
}

func (bw *BinaryFrameWriter) WriteFrame(w Wave) (err error) {
	nr, nc := w.Dims()
	if nr != bw.rows || nc != bw.cols {
		return fmt.Errorf("frame is %d x %d, stream is %d x %d", nr, nc, bw.rows, bw.cols)
	}
	if err = binary.Write(bw.w, binary.LittleEndian, w.Time); err != nil {
		return
	}
	if err = binary.Write(bw.w, binary.LittleEndian, w.Value.DataP); err != nil {
		return
	}
	bw.Frames++
	return
}

func (bw *BinaryFrameWriter) Close() error {
	if bw.closer != nil {
		return bw.closer.Close()
	}
	return nil
}

// ReadBinaryFrames decodes a stream written by BinaryFrameWriter.
func ReadBinaryFrames(r io.Reader) (frames []Wave, err error) {
	var (
		dims [2]int64
	)
	if err = binary.Read(r, binary.LittleEndian, &dims); err != nil {
		err = fmt.Errorf("unable to read frame header: %w", err)
		return
	}
	if dims[0] < 1 || dims[1] < 1 || dims[0] > MaxFrameCells/dims[1] {
		err = fmt.Errorf("lattice %d x %d: %w", dims[0], dims[1], ErrInvalidFrameHeader)
		return
	}
	nr, nc := int(dims[0]), int(dims[1])
	for step := 1; ; step++ {
		var t float64
		if err = binary.Read(r, binary.LittleEndian, &t); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			return
		}
		data := make([]float64, nr*nc)
		if err = binary.Read(r, binary.LittleEndian, data); err != nil {
			err = fmt.Errorf("truncated frame %d: %w", step, err)
			return
		}
		w := Wave{Value: utils.NewMatrix(nr, nc, data), Time: t, Step: step}
		w.Value.SetReadOnly("wave")
		frames = append(frames, w)
	}
}

// ChartSink shows each frame as a shaded surface over the lattice with the
// obstacle outlines drawn on top.
type ChartSink struct {
	Plot *utils.SurfacePlot
}

func NewChartSink(wf *WaveFactory, width, height int, colorScale float64) (cs *ChartSink) {
	var (
		g  = wf.Grid()
		gm = utils.NewLatticeMesh(g.RowNum(), g.ColNum(), g.Side)
	)
	cs = &ChartSink{
		Plot: utils.NewSurfacePlot(width, height, 0, g.Width, 0, g.Height,
			gm, -colorScale, colorScale),
	}
	for _, o := range wf.Obstacles() {
		cs.Plot.AddOutline(o.Xs(), o.Ys(), utils2.WHITE)
	}
	return
}

func (cs *ChartSink) WriteFrame(w Wave) error {
	cs.Plot.PlotField(w.Value.DataP)
	return nil
}

func (cs *ChartSink) Close() error { return nil }
