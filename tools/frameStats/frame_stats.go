package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/notargets/gofdtd/model_problems/Wave2D"
)

var (
	frameFile string
	csvFile   string
)

func main() {
	frameFilePtr := flag.String("frameFile", frameFile, "binary frame file written by gofdtd 2D -o")
	csvFilePtr := flag.String("csvFile", csvFile, "write the statistics to this CSV file")
	flag.Parse()
	frameFile, csvFile = *frameFilePtr, *csvFilePtr
	if len(frameFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", frameFile)
	stats := readFrames(frameFile)
	for _, fs := range stats {
		fmt.Printf("%v, %v, %v, %v, %v\n", fs.time, fs.min, fs.max, fs.rms, fs.energy)
	}
	if len(csvFile) != 0 {
		f, err := os.Create(csvFile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err = writeCSV(f, stats); err != nil {
			panic(err)
		}
	}
}

type FrameStats struct {
	time          float64
	min, max, rms float64
	energy        float64 // Mean of the squared field
}

func NewFrameStats(w Wave2D.Wave) (fs FrameStats) {
	var (
		data = w.Value.DataP
		N    = float64(len(data))
	)
	fs = FrameStats{
		time: w.Time,
		min:  w.Value.Min(),
		max:  w.Value.Max(),
	}
	for _, val := range data {
		fs.energy += val * val
	}
	fs.energy /= N
	fs.rms = math.Sqrt(fs.energy)
	return
}

func readFrames(fileName string) (stats []FrameStats) {
	var (
		err    error
		f      *os.File
		frames []Wave2D.Wave
	)
	if f, err = os.Open(fileName); err != nil {
		panic(err)
	}
	defer f.Close()
	if frames, err = Wave2D.ReadBinaryFrames(bufio.NewReader(f)); err != nil {
		panic(err)
	}
	for _, w := range frames {
		stats = append(stats, NewFrameStats(w))
	}
	return
}

func writeCSV(w io.Writer, stats []FrameStats) (err error) {
	var (
		cw = csv.NewWriter(w)
		ff = func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	)
	if err = cw.Write([]string{"time", "min", "max", "rms", "energy"}); err != nil {
		return
	}
	for _, fs := range stats {
		if err = cw.Write([]string{ff(fs.time), ff(fs.min), ff(fs.max), ff(fs.rms), ff(fs.energy)}); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
