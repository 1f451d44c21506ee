// Package ppm reads and writes binary Netpbm pixel maps (P6) with 8-bit
// channels.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Crystalsage/barnsley/internal/raster"
)

// Header fields written for every image: binary RGB, 8-bit channels.
const (
	Magic  = "P6"
	MaxVal = 255
)

// Header returns the text header for a width x height image.
func Header(width, height int) string {
	return fmt.Sprintf("%s\n%d %d %d\n", Magic, width, height, MaxVal)
}

// Size returns the encoded length in bytes of a width x height image.
func Size(width, height int) int64 {
	return int64(len(Header(width, height))) + int64(width)*int64(height)*3
}

// Encode writes r to w as a P6 image. Pixels are emitted row-major from the
// top row, three bytes per pixel taken from the low bytes of the packed color:
// red, then green, then blue.
func Encode(w io.Writer, r *raster.Raster) error {
	bw := bufio.NewWriterSize(w, 64*1024)

	if _, err := bw.WriteString(Header(r.Width(), r.Height())); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	line := make([]byte, r.Width()*3)
	for y := 0; y < r.Height(); y++ {
		for x, c := range r.Row(y) {
			v := c.Packed()
			line[x*3] = byte(v & 0x0000FF)
			line[x*3+1] = byte((v & 0x00FF00) >> 8)
			line[x*3+2] = byte((v & 0xFF0000) >> 16)
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("writing row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}
	return nil
}

// EncodeFile creates (or truncates) path and writes r to it.
func EncodeFile(path string, r *raster.Raster) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, r); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
