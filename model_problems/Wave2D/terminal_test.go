package Wave2D

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofdtd/utils"
)

func TestTerminalSink(t *testing.T) {
	var (
		screen = tcell.NewSimulationScreen("UTF-8")
		quit   = make(chan struct{}, 1)
	)
	ts, err := NewTerminalSink(screen, 0.01, func() { quit <- struct{}{} })
	require.NoError(t, err)
	screen.SetSize(20, 21)

	{ // Glyph density follows the magnitude, color the sign
		r, style := ts.Shade(0)
		assert.Equal(t, ' ', r)
		assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorRed), style)
		r, _ = ts.Shade(0.005)
		assert.Equal(t, '▒', r)
		r, style = ts.Shade(-1)
		assert.Equal(t, '█', r)
		assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorBlue), style)
	}

	field := utils.NewMatrix(20, 20)
	field.Set(3, 5, 0.01).Set(7, 2, -0.0025)
	w := Wave{Value: field, Time: 0.5, Step: 6}
	require.NoError(t, ts.WriteFrame(w))

	r, _, style, _ := screen.GetContent(3, 5)
	assert.Equal(t, '█', r)
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorRed), style)

	r, _, style, _ = screen.GetContent(7, 2)
	assert.Equal(t, '░', r)
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorBlue), style)

	r, _, _, _ = screen.GetContent(5, 3)
	assert.Equal(t, ' ', r)
	// Status line below the field
	r, _, _, _ = screen.GetContent(0, 20)
	assert.Equal(t, 's', r)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	<-quit
	assert.NoError(t, ts.Close())
}
