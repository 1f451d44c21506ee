package ppm

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrFormat is wrapped by every parse failure.
var ErrFormat = errors.New("malformed PPM")

// Info contains metadata parsed from a PPM header.
type Info struct {
	Magic     string
	Width     int
	Height    int
	MaxVal    int
	HeaderLen int // offset of the first pixel byte
}

// BodySize returns the number of pixel bytes the header announces.
func (i *Info) BodySize() int {
	return i.Width * i.Height * 3
}

// GetInfo parses the header of a P6 image without reading pixel data.
// Fields may be separated by any whitespace and '#' comments, as Netpbm
// allows; exactly one whitespace byte follows the max value.
func GetInfo(data []byte) (*Info, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: data too short", ErrFormat)
	}
	if string(data[:2]) != Magic {
		return nil, fmt.Errorf("%w: magic %q, expected %q", ErrFormat, data[:2], Magic)
	}

	pos := 2
	var fields [3]int
	names := [3]string{"width", "height", "max value"}
	for i := range fields {
		start, end, err := nextToken(data, pos)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrFormat, names[i], err)
		}
		n, err := strconv.Atoi(string(data[start:end]))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: invalid %s %q", ErrFormat, names[i], data[start:end])
		}
		fields[i] = n
		pos = end
	}

	if fields[0] > math.MaxInt/3/fields[1] {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrFormat, fields[0], fields[1])
	}

	if pos >= len(data) || !isSpace(data[pos]) {
		return nil, fmt.Errorf("%w: missing separator after header", ErrFormat)
	}

	return &Info{
		Magic:     Magic,
		Width:     fields[0],
		Height:    fields[1],
		MaxVal:    fields[2],
		HeaderLen: pos + 1,
	}, nil
}

// nextToken skips whitespace and comments from pos and returns the bounds of
// the following run of digits.
func nextToken(data []byte, pos int) (start, end int, err error) {
	for pos < len(data) {
		switch {
		case isSpace(data[pos]):
			pos++
		case data[pos] == '#':
			for pos < len(data) && data[pos] != '\n' && data[pos] != '\r' {
				pos++
			}
		default:
			start = pos
			for pos < len(data) && data[pos] >= '0' && data[pos] <= '9' {
				pos++
			}
			if pos == start {
				return 0, 0, fmt.Errorf("unexpected byte %q at offset %d", data[pos], pos)
			}
			return start, pos, nil
		}
	}
	return 0, 0, errors.New("unexpected end of header")
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
