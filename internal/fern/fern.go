// Package fern draws a Barnsley fern into a raster using the chaos game: a
// random walk over four affine maps whose attractor is the fern.
package fern

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Crystalsage/barnsley/internal/raster"
)

// Point is the walker position in fern space. x spans roughly [-2.2, 2.7]
// and y spans [0, 10].
type Point struct {
	X, Y float64
}

// Affine maps (x, y) to (A*x + B*y + E, C*x + D*y + F). Limit is the
// cumulative probability bound used to select it.
type Affine struct {
	A, B, C, D, E, F float64
	Limit            float64
}

// Apply returns the image of p under the map.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.E,
		Y: m.C*p.X + m.D*p.Y + m.F,
	}
}

// Indices into Transforms.
const (
	Stem = iota
	SmallestLeaflet
	OppositeLeaflet
	SuccessiveLeaflets
)

// Transforms are Barnsley's maps ordered by ascending Limit.
var Transforms = [4]Affine{
	Stem:               {A: 0, B: 0, C: 0, D: 0.16, E: 0, F: 0, Limit: 0.01},
	SmallestLeaflet:    {A: 0.20, B: -0.26, C: 0.23, D: 0.22, E: 0, F: 1.6, Limit: 0.08},
	OppositeLeaflet:    {A: -0.15, B: 0.28, C: 0.26, D: 0.26, E: 0, F: 0.44, Limit: 0.15},
	SuccessiveLeaflets: {A: 0.85, B: 0.04, C: -0.04, D: 0.85, E: 0, F: 1.6, Limit: 1},
}

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// NewRandomSource returns a source seeded from the clock.
func NewRandomSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Select returns the index into Transforms chosen by the draw r.
func Select(r float64) int {
	for i, m := range Transforms[:len(Transforms)-1] {
		if r <= m.Limit {
			return i
		}
	}
	return len(Transforms) - 1
}

// Step advances p by one randomly chosen map.
func Step(p Point, r float64) Point {
	return Transforms[Select(r)].Apply(p)
}

// ToRaster maps p onto a width x height raster. The fern is centred
// horizontally, its base sits on the bottom edge, and 11 fern units span the
// raster in each direction. Cells outside the raster are clamped to the
// nearest edge cell.
func ToRaster(p Point, width, height int) (row, col int) {
	w, h := float64(width), float64(height)
	c := math.Round(w/2 + p.X*w/11)
	r := math.Round(h - p.Y*h/11)
	return clamp(r, height), clamp(c, width)
}

func clamp(v float64, n int) int {
	if !(v >= 0) {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// Plot marks the cell for p with c and returns it.
func Plot(r *raster.Raster, p Point, c raster.Color) (row, col int) {
	row, col = ToRaster(p, r.Width(), r.Height())
	r.Set(row, col, c)
	return row, col
}

// Generate runs iterations steps of the walk from the origin and plots each
// visited point in leaf, overwriting whatever the cell held. It returns the
// number of points plotted.
func Generate(r *raster.Raster, leaf raster.Color, iterations int, src Source) (int, error) {
	if iterations < 0 {
		return 0, fmt.Errorf("negative iteration count %d", iterations)
	}

	var p Point
	for i := 0; i < iterations; i++ {
		p = Step(p, src.Float64())
		Plot(r, p, leaf)
	}
	return iterations, nil
}
