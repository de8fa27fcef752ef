package Wave2D

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// TerminalSink draws each frame as shaded text cells, x across and y down,
// with a status line at the bottom. Positive values are red, negative blue.
type TerminalSink struct {
	screen     tcell.Screen
	colorScale float64
	quit       chan struct{}
}

// NewTerminalSink initializes screen and takes it over until Close. Pressing
// Escape, q or Ctrl-C calls onQuit.
func NewTerminalSink(screen tcell.Screen, colorScale float64, onQuit func()) (ts *TerminalSink, err error) {
	if err = screen.Init(); err != nil {
		return
	}
	if colorScale <= 0 {
		colorScale = DefaultColorScale
	}
	ts = &TerminalSink{
		screen:     screen,
		colorScale: colorScale,
		quit:       make(chan struct{}),
	}
	screen.Clear()
	go ts.pollEvents(onQuit)
	return
}

func (ts *TerminalSink) pollEvents(onQuit func()) {
	for {
		ev := ts.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				if onQuit != nil {
					onQuit()
				}
				return
			}
		case *tcell.EventResize:
			ts.screen.Sync()
		}
		select {
		case <-ts.quit:
			return
		default:
		}
	}
}

// Shade maps a field value onto a glyph and a style.
func (ts *TerminalSink) Shade(val float64) (r rune, style tcell.Style) {
	var (
		level = int(math.Round(math.Abs(val) / ts.colorScale * float64(len(shades)-1)))
	)
	if level > len(shades)-1 {
		level = len(shades) - 1
	}
	r = shades[level]
	style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	if val < 0 {
		style = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	}
	return
}

func (ts *TerminalSink) WriteFrame(w Wave) error {
	var (
		nr, nc        = w.Dims()
		width, height = ts.screen.Size()
		rows          = height - 1
	)
	if width < 1 || rows < 1 {
		return nil
	}
	for cy := 0; cy < rows; cy++ {
		y := cy * nc / rows
		for cx := 0; cx < width; cx++ {
			x := cx * nr / width
			r, style := ts.Shade(w.At(x, y))
			ts.screen.SetContent(cx, cy, r, nil, style)
		}
	}
	status := fmt.Sprintf("step %6d  t = %8.5f  [Esc/q quits]", w.Step, w.Time)
	for cx := 0; cx < width; cx++ {
		r := ' '
		if cx < len(status) {
			r = rune(status[cx])
		}
		ts.screen.SetContent(cx, rows, r, nil, tcell.StyleDefault)
	}
	ts.screen.Show()
	return nil
}

func (ts *TerminalSink) Close() error {
	close(ts.quit)
	ts.screen.Fini()
	return nil
}
