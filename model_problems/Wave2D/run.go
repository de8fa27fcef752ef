package Wave2D

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/notargets/gofdtd/utils"
)

var ErrNumericalBlowup = errors.New("numerical blowup")

// FrameSink consumes emitted waves, one frame per call.
type FrameSink interface {
	WriteFrame(w Wave) error
	Close() error
}

type RunMeta struct {
	Steps       int           // Number of calls to Advance
	PlotSteps   int           // Hand every PlotSteps-th wave to the sinks
	ReportSteps int           // Print progress every ReportSteps steps, 0 for none
	FrameTime   time.Duration // Pause after each plotted frame
}

// Run advances wf rm.Steps times and returns the last emitted wave. It stops
// early when ctx is done, a sink fails or the field stops being finite.
func Run(ctx context.Context, wf *WaveFactory, rm RunMeta, sinks ...FrameSink) (last Wave, err error) {
	var (
		plotSteps = rm.PlotSteps
		start     = time.Now()
	)
	if plotSteps < 1 {
		plotSteps = 1
	}
	for n := 0; n < rm.Steps; n++ {
		if err = ctx.Err(); err != nil {
			return
		}
		last = wf.Advance()
		if utils.IsNan(last.Value) {
			err = fmt.Errorf("step %d, time %8.5f: %w", last.Step, last.Time, ErrNumericalBlowup)
			return
		}
		if last.Step%plotSteps == 0 {
			for _, sink := range sinks {
				if err = sink.WriteFrame(last); err != nil {
					return
				}
			}
			if rm.FrameTime > 0 {
				time.Sleep(rm.FrameTime)
			}
		}
		if rm.ReportSteps > 0 && last.Step%rm.ReportSteps == 0 {
			fmt.Printf("step = %6d, time = %8.5f, min,max = %10.7f,%10.7f\n",
				last.Step, last.Time, last.Value.Min(), last.Value.Max())
		}
	}
	if rm.ReportSteps > 0 {
		fmt.Printf("Completed %d steps in %v\n", rm.Steps, time.Since(start))
	}
	return
}
