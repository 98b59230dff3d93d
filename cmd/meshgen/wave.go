package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/pvd"
	"github.com/arloliu/vtkio/vtu"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) waveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wave",
		Short: "Write a time series of a travelling wave and its .pvd index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWave(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.Int("points", 20, "Number of points on the line")
	flags.Int("steps", 10, "Number of time steps")
	flags.Float64("dt", 0.1, "Time between steps")
	flags.Int("workers", runtime.NumCPU(), "Number of steps written in parallel")
	flags.String("name", "wave", "Base name of the generated files")
	a.bind("wave", flags.Lookup("points"), flags.Lookup("steps"), flags.Lookup("dt"),
		flags.Lookup("workers"), flags.Lookup("name"))

	return cmd
}

func (a *app) runWave(ctx context.Context) error {
	numPoints := a.v.GetInt("wave.points")
	steps := a.v.GetInt("wave.steps")
	dt := a.v.GetFloat64("wave.dt")
	name := a.v.GetString("wave.name")
	outDir := a.v.GetString("out-dir")
	skip := a.v.GetBool("skip-unchanged")

	if numPoints < 2 {
		return fmt.Errorf("wave needs at least 2 points, got %d", numPoints)
	}
	if steps < 1 {
		return fmt.Errorf("wave needs at least 1 step, got %d", steps)
	}
	ct, err := a.compression(format.CompressionNone)
	if err != nil {
		return err
	}

	results := make([]fileResult, steps)
	files := make([]string, steps)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.v.GetInt("wave.workers"), 1))
	for step := range steps {
		files[step] = fmt.Sprintf("%s_%d.vtu", name, step)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			w, err := vtu.NewWriter(vtu.WithCompression(ct), vtu.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := waveMesh(numPoints, float64(step)*dt).register(w); err != nil {
				return err
			}

			res, err := writeMesh(w, filepath.Join(outDir, files[step]), skip)
			if err != nil {
				return fmt.Errorf("step %d: %w", step, err)
			}
			results[step] = res

			a.logger.WithFields(logrus.Fields{"step": step, "skipped": res.Skipped}).Debug("wave step done")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	index := filepath.Join(outDir, name+".pvd")
	series, err := pvd.NewWriter(index, pvd.WithLogger(a.logger))
	if err != nil {
		return err
	}
	for step, file := range files {
		if err := series.AddStep(float64(step)*dt, file); err != nil {
			return err
		}
	}
	if err := series.Save(); err != nil {
		return err
	}

	return a.printResults(results, index)
}
