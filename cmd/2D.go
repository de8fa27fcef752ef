/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofdtd/InputParameters"
	"github.com/notargets/gofdtd/model_problems/Wave2D"
	"github.com/notargets/gofdtd/utils"
)

type Model2D struct {
	ICFile     string
	OutputFile string
	Graph      bool
	Terminal   bool
	PlotSteps  int
	Delay      time.Duration
	Parallel   int
	Sparse     bool
	Perf       bool
	Profile    bool
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional wave solver, reads a scene file and outputs wave frames",
	Long: `
Two dimensional wave solver, reads a scene file and outputs wave frames

gofdtd 2D -I scene.yaml [-o frames.bin] [-g | -t]`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.OutputFile, _ = cmd.Flags().GetString("output")
		m2d.Graph = viper.GetBool("graph")
		m2d.Terminal = viper.GetBool("terminal")
		m2d.PlotSteps = viper.GetInt("plotSteps")
		m2d.Delay = time.Duration(viper.GetInt("delay")) * time.Millisecond
		m2d.Parallel = viper.GetInt("parallel")
		m2d.Sparse = viper.GetBool("sparse")
		m2d.Perf, _ = cmd.Flags().GetBool("perf")
		m2d.Profile = viper.GetBool("profile")
		ip := processInput(m2d)
		if err = Run2D(m2d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParametersWave2D) {
	var (
		err error
	)
	if len(m2d.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
		os.Exit(1)
	}
	if ip, err = readInput(m2d.ICFile); err != nil {
		panic(err)
	}
	return
}

func readInput(fileName string) (ip *InputParameters.InputParametersWave2D, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParametersWave2D{}
	if err = ip.Parse(data); err != nil {
		return
	}
	err = ip.Validate()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the scene:\n\t- domain size, Side and DT\n\t- obstacles and their walls")
	TwoDCmd.Flags().StringP("output", "o", "", "write every plotted frame to this binary file")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	TwoDCmd.Flags().BoolP("terminal", "t", false, "display the solution in the terminal while computing")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	TwoDCmd.Flags().IntP("plotSteps", "s", 1, "number of steps before plotting each frame")
	TwoDCmd.Flags().IntP("parallel", "n", 0, "number of goroutines for the stencil, 0 uses every CPU")
	TwoDCmd.Flags().Bool("sparse", false, "compute the stencil with an assembled sparse operator")
	TwoDCmd.Flags().Bool("perf", false, "count CPU instructions used by the solver (linux)")
	for _, name := range []string{"graph", "terminal", "delay", "plotSteps", "parallel", "sparse"} {
		if err := viper.BindPFlag(name, TwoDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	if err := viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile")); err != nil {
		panic(err)
	}
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParametersWave2D) (err error) {
	var (
		g         Wave2D.Grid
		obstacles []*Wave2D.Obstacle
		opts      []Wave2D.Option
		sinks     []Wave2D.FrameSink
	)
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if g, err = ip.BuildGrid(); err != nil {
		return
	}
	if obstacles, err = ip.BuildObstacles(); err != nil {
		return
	}
	ip.Print()
	g.Print()
	if m2d.Parallel > 0 {
		opts = append(opts, Wave2D.WithParallelDegree(m2d.Parallel))
	}
	if m2d.Sparse {
		opts = append(opts, Wave2D.WithSparseLaplacian())
	}
	wf := Wave2D.NewWaveFactory(g, obstacles, opts...)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", wf.ParallelDegree())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	defer func() {
		for _, sink := range sinks {
			if cerr := sink.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()
	if len(m2d.OutputFile) != 0 {
		var bw *Wave2D.BinaryFrameWriter
		if bw, err = Wave2D.CreateBinaryFrameFile(m2d.OutputFile, g); err != nil {
			return
		}
		sinks = append(sinks, bw)
	}
	if m2d.Graph {
		sinks = append(sinks, Wave2D.NewChartSink(wf, 1024, 1024, ip.ColorScale))
	}
	rm := Wave2D.RunMeta{
		Steps:       g.Steps(ip.FinalTime),
		PlotSteps:   m2d.PlotSteps,
		ReportSteps: 100,
		FrameTime:   m2d.Delay,
	}
	if m2d.Terminal {
		var (
			screen tcell.Screen
			ts     *Wave2D.TerminalSink
		)
		if screen, err = tcell.NewScreen(); err != nil {
			return
		}
		if ts, err = Wave2D.NewTerminalSink(screen, ip.ColorScale, stop); err != nil {
			return
		}
		sinks = append(sinks, ts)
		rm.ReportSteps = 0
	}

	run := func() (err error) {
		_, err = Wave2D.Run(ctx, wf, rm, sinks...)
		return
	}
	if m2d.Perf {
		err = countInstructions(run)
	} else {
		err = run()
	}
	if errors.Is(err, context.Canceled) {
		fmt.Printf("Interrupted at step %d, time %8.5f\n", wf.Step(), wf.Time())
		err = nil
	}
	fmt.Println(utils.GetMemUsage())
	return
}
