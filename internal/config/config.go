// Package config holds the fixed rendering parameters.
package config

import (
	"errors"
	"fmt"

	"github.com/Crystalsage/barnsley/internal/raster"
)

// Compile-time render parameters used by Default.
const (
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultIterations = 200_000
	DefaultOutputPath = "output.ppm"
)

// Default colors: dark background, teal leaf.
var (
	DefaultBackground = raster.Color{R: 0x21, G: 0x20, B: 0x1D}
	DefaultLeaf       = raster.Color{R: 0x26, G: 0xBB, B: 0xB8}
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config controls a single render.
type Config struct {
	Width      int
	Height     int
	Iterations int // number of IFS steps, each plotting one point
	Background raster.Color
	Leaf       raster.Color
	OutputPath string
}

// Default returns the configuration used by the fern binary.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Iterations: DefaultIterations,
		Background: DefaultBackground,
		Leaf:       DefaultLeaf,
		OutputPath: DefaultOutputPath,
	}
}

// Validate rejects configurations that cannot produce an image.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations %d must be positive", ErrInvalid, c.Iterations)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalid)
	}
	return nil
}
