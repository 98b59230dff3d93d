package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/vtkio/internal/hash"
	"github.com/arloliu/vtkio/vtu"
	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// fileResult is the outcome of writing one generated file.
type fileResult struct {
	vtu.Report
	Skipped bool `json:"skipped"`
}

// writeMesh writes w to path. With skipUnchanged set, an existing file with
// the same size and checksum as the new content is kept as is.
func writeMesh(w *vtu.Writer, path string, skipUnchanged bool) (fileResult, error) {
	if skipUnchanged {
		report, err := w.WriteTo(io.Discard)
		if err != nil {
			return fileResult{}, err
		}
		size, sum, err := fileDigest(path)
		if err == nil && size == report.TotalBytes && sum == report.Checksum {
			report.Path = path
			return fileResult{Report: report, Skipped: true}, nil
		}
	}

	report, err := w.Write(path)
	if err != nil {
		return fileResult{}, err
	}

	return fileResult{Report: report}, nil
}

func fileDigest(path string) (int64, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sw := hash.NewSumWriter(io.Discard)
	if _, err := io.Copy(sw, f); err != nil {
		return 0, 0, errors.Wrapf(err, "read %s", path)
	}

	return sw.Count(), sw.Sum64(), nil
}

func (a *app) printResults(results []fileResult, index string) error {
	if a.v.GetBool("json") {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Files []fileResult `json:"files"`
			Index string       `json:"index,omitempty"`
		}{Files: results, Index: index})
	}

	var total, raw uint64
	for _, r := range results {
		state := "wrote"
		if r.Skipped {
			state = "kept"
		}
		codec := r.Compression.String()
		if r.Fallback {
			codec += " (fallback)"
		}
		fmt.Fprintf(a.out, "%-5s %s  %s  %s, %d arrays\n",
			state, filepath.Base(r.Path), humanize.Bytes(uint64(r.TotalBytes)), codec, len(r.Blocks))
		total += uint64(r.TotalBytes)
		raw += r.RawBytes()
	}
	if index != "" {
		fmt.Fprintf(a.out, "index %s\n", filepath.Base(index))
	}
	fmt.Fprintf(a.out, "%s in %d files (%s of array data)\n",
		humanize.Bytes(total), len(results), humanize.Bytes(raw))

	return nil
}
