// Package raster holds the in-memory pixel grid that the fern is drawn into
// and the encoder reads from.
package raster

import (
	"errors"
	"fmt"
	"slices"
)

// ErrSize is returned when a raster is requested with non-positive dimensions.
var ErrSize = errors.New("invalid raster size")

// Raster is a fixed-size grid of colors stored row-major, row 0 at the top.
type Raster struct {
	width  int
	height int
	pixels []Color
}

// New allocates a width x height raster with every cell zeroed.
func New(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	return &Raster{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}, nil
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// Fill overwrites every cell with c.
func (r *Raster) Fill(c Color) {
	for i := range r.pixels {
		r.pixels[i] = c
	}
}

// In reports whether (row, col) addresses a cell of the raster.
func (r *Raster) In(row, col int) bool {
	return row >= 0 && row < r.height && col >= 0 && col < r.width
}

// At returns the color at (row, col). It panics if the cell is out of range.
func (r *Raster) At(row, col int) Color {
	if !r.In(row, col) {
		panic(fmt.Sprintf("raster: cell (%d,%d) outside %dx%d", row, col, r.width, r.height))
	}
	return r.pixels[row*r.width+col]
}

// Set stores c at (row, col) and reports whether the cell existed.
// Out-of-range writes are dropped.
func (r *Raster) Set(row, col int, c Color) bool {
	if !r.In(row, col) {
		return false
	}
	r.pixels[row*r.width+col] = c
	return true
}

// Row returns the cells of one row. The slice aliases the raster storage.
// It panics if row is out of range.
func (r *Raster) Row(row int) []Color {
	if row < 0 || row >= r.height {
		panic(fmt.Sprintf("raster: row %d outside 0..%d", row, r.height-1))
	}
	off := row * r.width
	return r.pixels[off : off+r.width]
}

// Equal reports whether both rasters have the same size and cells.
func (r *Raster) Equal(o *Raster) bool {
	return r.width == o.width && r.height == o.height && slices.Equal(r.pixels, o.pixels)
}

// Count returns how many cells hold c.
func (r *Raster) Count(c Color) int {
	n := 0
	for _, p := range r.pixels {
		if p == c {
			n++
		}
	}
	return n
}
