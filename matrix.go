package qrcode

import (
	"errors"
	"fmt"

	"github.com/makiuchi-d/gozxing"

	"github.com/RashadAnsari/qrgen/internal/bitset"
)

// Matrix is an immutable grid of QR modules. (0, 0) is the top left corner,
// x grows to the right and y grows downwards.
type Matrix struct {
	width  int
	height int

	// Row-major module states, true for dark.
	bits *bitset.Bitset
}

// NewMatrix builds a width x height matrix by asking dark for every module.
func NewMatrix(width, height int, dark func(x, y int) bool) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid matrix dimensions %dx%d", width, height)
	}

	bits := bitset.WithCapacity(width * height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bits.AppendBools(dark(x, y))
		}
	}

	return &Matrix{width: width, height: height, bits: bits}, nil
}

// MatrixFromBitmap copies a rows-of-columns bitmap, bitmap[y][x].
func MatrixFromBitmap(bitmap [][]bool) (*Matrix, error) {
	if len(bitmap) == 0 {
		return nil, errors.New("empty bitmap")
	}

	width := len(bitmap[0])

	for y, row := range bitmap {
		if len(row) != width {
			return nil, fmt.Errorf("bitmap row %d has %d modules, expected %d", y, len(row), width)
		}
	}

	return NewMatrix(width, len(bitmap), func(x, y int) bool {
		return bitmap[y][x]
	})
}

func matrixFromBitMatrix(bm *gozxing.BitMatrix) (*Matrix, error) {
	return NewMatrix(bm.GetWidth(), bm.GetHeight(), bm.Get)
}

func (m *Matrix) Width() int {
	return m.width
}

func (m *Matrix) Height() int {
	return m.height
}

// Get reports whether the module at (x, y) is dark. Coordinates outside the
// matrix are light.
func (m *Matrix) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}

	v, _ := m.bits.At(y*m.width + x)

	return v
}

// DarkModules returns the number of dark modules.
func (m *Matrix) DarkModules() int {
	return m.bits.Count()
}
