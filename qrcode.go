package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	svgo "github.com/ajstarks/svgo"
)

const (
	DefaultWidth  = 300
	DefaultHeight = 300

	// Quiet zone in modules around the symbol.
	DefaultMargin = 0

	DefaultPNGName = "out.png"
	DefaultSVGName = "out.svg"
)

type QRCode struct {
	// Original content encoded.
	content string

	level RecoveryLevel

	// User settable drawing options. A nil BackgroundColor is resolved with
	// DefaultBackground(ForegroundColor) at render time.
	ForegroundColor Colour
	BackgroundColor Colour

	// Qr Code margin.
	Margin int

	Encoder Encoder
}

func New(content string, level RecoveryLevel) *QRCode {
	return &QRCode{
		content: content,
		level:   level,

		ForegroundColor: DefaultForeground,

		Margin: DefaultMargin,

		Encoder: ZXingEncoder{},
	}
}

func (q *QRCode) Level() RecoveryLevel {
	return q.level
}

// Matrix encodes the content. See Encoder for the meaning of width and height.
func (q *QRCode) Matrix(width, height int) (*Matrix, error) {
	return q.Encoder.Encode(q.content, q.level, q.Margin, width, height)
}

func (q *QRCode) background() Colour {
	if q.BackgroundColor != nil {
		return q.BackgroundColor
	}

	return DefaultBackground(q.ForegroundColor)
}

// Image returns the symbol as a width x height bitmap, one pixel per module
// of the matrix the encoder produced for that size.
func (q *QRCode) Image(width, height int) (*image.Paletted, error) {
	m, err := q.Matrix(width, height)
	if err != nil {
		return nil, err
	}

	return RenderImage(m, q.ForegroundColor, q.background()), nil
}

func (q *QRCode) PNG(width, height int) ([]byte, error) {
	img, err := q.Image(width, height)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	if err := EncodePNG(&b, img); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// SVG renders the natural, unscaled symbol with one unit square per dark
// module.
func (q *QRCode) SVG() ([]byte, error) {
	m, err := q.Matrix(0, 0)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer

	if err := RenderSVG(&b, m, q.ForegroundColor); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// RenderImage maps every module of m to one pixel: fg when dark, bg when
// light.
func RenderImage(m *Matrix, fg, bg Colour) *image.Paletted {
	rect := image.Rectangle{Min: image.Point{}, Max: image.Point{X: m.Width(), Y: m.Height()}}

	// Saves a few bytes to have them in this order.
	p := color.Palette([]color.Color{bg.NRGBA(), fg.NRGBA()})
	img := image.NewPaletted(rect, p)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}

	return img
}

func EncodePNG(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: png.BestCompression}

	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}

	return nil
}

// RenderSVG writes one 1x1 rect per dark module of m, filled with fg. Light
// modules draw nothing and there is no background rect.
func RenderSVG(w io.Writer, m *Matrix, fg Colour) error {
	ew := &errWriter{w: w}

	svg := svgo.New(ew)

	svg.Startview(m.Width(), m.Height(), 0, 0, m.Width(), m.Height())
	svg.Group(fillAttrs(fg)...)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				svg.Rect(x, y, 1, 1)
			}
		}
	}

	svg.Gend()
	svg.End()

	if ew.err != nil {
		return fmt.Errorf("writing svg: %w", ew.err)
	}

	return nil
}

func fillAttrs(c Colour) []string {
	n := c.NRGBA()

	attrs := []string{fmt.Sprintf(`fill="#%02x%02x%02x"`, n.R, n.G, n.B)}

	if n.A != 0xff {
		attrs = append(attrs, fmt.Sprintf(`fill-opacity="%.3f"`, float64(n.A)/255))
	}

	return attrs
}

// errWriter keeps the first write error, svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
