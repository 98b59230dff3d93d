package main

import (
	"fmt"
	"path/filepath"

	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/vtu"
	"github.com/spf13/cobra"
)

func (a *app) spiralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spiral",
		Short: "Write a single spiral polyline, LZ4 compressed by default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSpiral()
		},
	}

	flags := cmd.Flags()
	flags.Int("points", 1000, "Number of points on the spiral")
	flags.String("file", "spiral.vtu", "Output file name")
	a.bind("spiral", flags.Lookup("points"), flags.Lookup("file"))

	return cmd
}

func (a *app) runSpiral() error {
	numPoints := a.v.GetInt("spiral.points")
	if numPoints < 1 {
		return fmt.Errorf("spiral needs at least 1 point, got %d", numPoints)
	}

	ct, err := a.compression(format.CompressionLZ4)
	if err != nil {
		return err
	}

	w, err := vtu.NewWriter(vtu.WithCompression(ct), vtu.WithLogger(a.logger))
	if err != nil {
		return err
	}
	if err := spiralMesh(numPoints).register(w); err != nil {
		return err
	}

	path := filepath.Join(a.v.GetString("out-dir"), a.v.GetString("spiral.file"))
	res, err := writeMesh(w, path, a.v.GetBool("skip-unchanged"))
	if err != nil {
		return err
	}

	return a.printResults([]fileResult{res}, "")
}
