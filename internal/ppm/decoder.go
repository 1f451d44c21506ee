package ppm

import (
	"fmt"

	"github.com/Crystalsage/barnsley/internal/raster"
)

// Decode parses a P6 image with 8-bit channels into a raster. Bytes past the
// announced pixel data are ignored.
func Decode(data []byte) (*raster.Raster, error) {
	info, err := GetInfo(data)
	if err != nil {
		return nil, err
	}
	if info.MaxVal != MaxVal {
		return nil, fmt.Errorf("%w: max value %d, only %d supported", ErrFormat, info.MaxVal, MaxVal)
	}

	body := data[info.HeaderLen:]
	if len(body) < info.BodySize() {
		return nil, fmt.Errorf("%w: expected %d pixel bytes for %dx%d, got %d",
			ErrFormat, info.BodySize(), info.Width, info.Height, len(body))
	}

	r, err := raster.New(info.Width, info.Height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < info.Height; y++ {
		row := r.Row(y)
		off := y * info.Width * 3
		for x := range row {
			p := body[off+x*3:]
			row[x] = raster.Unpack(uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16)
		}
	}
	return r, nil
}
