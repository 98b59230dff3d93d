// Command meshgen generates sample unstructured meshes with the vtkio writers.
//
//	meshgen wave   --steps 10 --points 20 --out-dir out/
//	meshgen spiral --points 1000 --compression lz4
//
// Every flag can also be set through a MESHGEN_ environment variable
// (MESHGEN_WAVE_STEPS=20) or a config file passed with --config.
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).root().Execute(); err != nil {
		os.Exit(1)
	}
}
