package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofdtd/model_problems/Wave2D"
	"github.com/notargets/gofdtd/utils"
)

func TestFrameStats(t *testing.T) {
	g, err := Wave2D.NewGrid(1, 1, 0.5, 0.25)
	require.NoError(t, err)
	fileName := filepath.Join(t.TempDir(), "frames.bin")
	bw, err := Wave2D.CreateBinaryFrameFile(fileName, g)
	require.NoError(t, err)
	require.NoError(t, bw.WriteFrame(Wave2D.Wave{
		Value: utils.NewMatrix(2, 2, []float64{1, -1, 1, -1}), Time: 0.25, Step: 1}))
	require.NoError(t, bw.WriteFrame(Wave2D.Wave{
		Value: utils.NewMatrix(2, 2, []float64{0, 0, 0, 2}), Time: 0.5, Step: 2}))
	require.NoError(t, bw.Close())

	stats := readFrames(fileName)
	require.Len(t, stats, 2)
	assert.Equal(t, FrameStats{time: 0.25, min: -1, max: 1, rms: 1, energy: 1}, stats[0])
	assert.Equal(t, FrameStats{time: 0.5, min: 0, max: 2, rms: 1, energy: 1}, stats[1])

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, stats))
	assert.Equal(t, "time,min,max,rms,energy\n0.25,-1,1,1,1\n0.5,0,2,1,1\n", buf.String())
}
