package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	qrcode "github.com/RashadAnsari/qrgen"
)

var (
	_ pflag.Value = (*formatFlag)(nil)
	_ pflag.Value = (*colourFlag)(nil)
	_ pflag.Value = (*levelFlag)(nil)
)

type format string

const (
	formatPNG format = "png"
	formatSVG format = "svg"
)

func (f format) defaultName() string {
	if f == formatSVG {
		return qrcode.DefaultSVGName
	}

	return qrcode.DefaultPNGName
}

// formatFromPath guesses the format from the output file extension.
func formatFromPath(path string) format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return formatSVG
	}

	return formatPNG
}

type formatFlag struct {
	value format
}

func (f *formatFlag) String() string {
	return string(f.value)
}

func (f *formatFlag) Set(s string) error {
	switch v := format(strings.ToLower(s)); v {
	case formatPNG, formatSVG:
		f.value = v
		return nil
	default:
		return fmt.Errorf("unknown format %q (want png or svg)", s)
	}
}

func (f *formatFlag) Type() string {
	return "FORMAT"
}

type colourFlag struct {
	colour qrcode.Colour
}

func (f *colourFlag) String() string {
	if f == nil || f.colour == nil {
		return ""
	}

	return f.colour.String()
}

func (f *colourFlag) Set(s string) error {
	c, err := qrcode.ParseColour(s)
	if err != nil {
		return err
	}

	f.colour = c

	return nil
}

func (f *colourFlag) Type() string {
	return "COLOUR"
}

type levelFlag struct {
	level qrcode.RecoveryLevel
}

func (f *levelFlag) String() string {
	return f.level.String()
}

func (f *levelFlag) Set(s string) error {
	l, err := qrcode.ParseRecoveryLevel(s)
	if err != nil {
		return err
	}

	f.level = l

	return nil
}

func (f *levelFlag) Type() string {
	return "LEVEL"
}
