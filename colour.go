package qrcode

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Colour is either an Opaque RGB value or a WithAlpha ARGB value.
type Colour interface {
	NRGBA() color.NRGBA
	String() string

	isColour()
}

// Opaque is a fully opaque 0xRRGGBB colour.
type Opaque struct {
	RGB uint32
}

func (c Opaque) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.RGB >> 16), G: uint8(c.RGB >> 8), B: uint8(c.RGB), A: 0xff}
}

func (c Opaque) String() string {
	return fmt.Sprintf("0x%06X", c.RGB&0xffffff)
}

func (Opaque) isColour() {}

// WithAlpha is a 0xAARRGGBB colour with explicit alpha.
type WithAlpha struct {
	ARGB uint32
}

func (c WithAlpha) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.ARGB >> 16), G: uint8(c.ARGB >> 8), B: uint8(c.ARGB), A: uint8(c.ARGB >> 24)}
}

func (c WithAlpha) String() string {
	return fmt.Sprintf("0x%08X", c.ARGB)
}

func (WithAlpha) isColour() {}

var (
	DefaultForeground Colour = Opaque{RGB: 0x000000}

	OpaqueBackground      Colour = WithAlpha{ARGB: 0xFFFFFFFF}
	TransparentBackground Colour = WithAlpha{ARGB: 0x00FFFFFF}
)

// DefaultBackground picks the light module colour for fg: opaque white for
// an Opaque foreground, transparent white when the foreground carries alpha.
func DefaultBackground(fg Colour) Colour {
	if _, ok := fg.(WithAlpha); ok {
		return TransparentBackground
	}

	return OpaqueBackground
}

// ParseColour parses RRGGBB or AARRGGBB hex text with an optional 0x prefix.
func ParseColour(s string) (Colour, error) {
	hex := s
	if strings.HasPrefix(hex, "0x") || strings.HasPrefix(hex, "0X") {
		hex = hex[2:]
	}

	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("invalid colour %q: expected 6 (RRGGBB) or 8 (AARRGGBB) hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: not a hex value", s)
	}

	if len(hex) == 6 {
		return Opaque{RGB: uint32(v)}, nil
	}

	return WithAlpha{ARGB: uint32(v)}, nil
}
