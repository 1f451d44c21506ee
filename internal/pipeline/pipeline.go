package pipeline

import (
	"fmt"
	"os"

	"github.com/Crystalsage/barnsley/internal/config"
	"github.com/Crystalsage/barnsley/internal/fern"
	"github.com/Crystalsage/barnsley/internal/ppm"
	"github.com/Crystalsage/barnsley/internal/raster"
)

// Options controls a full render.
type Options struct {
	Config config.Config
	Source fern.Source // optional: defaults to a clock-seeded source
}

// Result holds the output of a pipeline run.
type Result struct {
	Raster  *raster.Raster
	Plotted int // number of leaf plots, including repeats on the same cell
}

// Run executes the render: validate → allocate → fill background → draw fern.
func Run(opts Options) (*Result, error) {
	cfg := opts.Config

	// 1. Reject bad parameters before allocating anything
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 2. Allocate and paint the background
	r, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("allocating raster: %w", err)
	}
	r.Fill(cfg.Background)

	// 3. Walk the IFS
	src := opts.Source
	if src == nil {
		src = fern.NewRandomSource()
	}
	n, err := fern.Generate(r, cfg.Leaf, cfg.Iterations, src)
	if err != nil {
		return nil, fmt.Errorf("generating fern: %w", err)
	}

	return &Result{
		Raster:  r,
		Plotted: n,
	}, nil
}

// WriteFile encodes the result as a PPM at path and returns the file size.
func WriteFile(res *Result, path string) (int64, error) {
	if err := ppm.EncodeFile(path, res.Raster); err != nil {
		return 0, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return fi.Size(), nil
}
