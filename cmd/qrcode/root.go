package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	qrcode "github.com/RashadAnsari/qrgen"
)

type options struct {
	output     string
	width      int
	height     int
	foreground colourFlag
	background colourFlag
	format     formatFlag
	level      levelFlag
	verbose    bool
	noColor    bool
}

func newOptions() *options {
	return &options{
		width:      qrcode.DefaultWidth,
		height:     qrcode.DefaultHeight,
		foreground: colourFlag{colour: qrcode.DefaultForeground},
		format:     formatFlag{value: formatPNG},
		level:      levelFlag{level: qrcode.Low},
	}
}

func newRootCmd(o *options, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qrcode [flags] DATUM",
		Short: "Write DATUM as a QR code to a PNG or SVG image",
		Long: "Encodes DATUM as a QR code and writes it to a PNG raster or an SVG vector image.\n" +
			"The format follows --format, or the extension of --output when --format is not given.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("expected exactly one DATUM argument, got %d", len(args))
			}

			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if o.noColor {
				color.NoColor = true
			}

			if o.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			return o.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(o, args[0], logger)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&o.output, "output", "o", "", "`FILENAME` to write to, or a directory (default out.png or out.svg)")
	flags.IntVarP(&o.width, "width", "w", o.width, "image `WIDTH` in pixels, at least the symbol's module count (png only)")
	flags.IntVarP(&o.height, "height", "h", o.height, "image `HEIGHT` in pixels, at least the symbol's module count (png only)")
	flags.VarP(&o.foreground, "colour", "c", "module colour as RRGGBB or AARRGGBB hex, 0x prefix optional")
	flags.VarP(&o.background, "background", "b", "png background colour (default opaque white, transparent white for an AARRGGBB colour)")
	flags.VarP(&o.format, "format", "f", "output format, png or svg")
	flags.VarP(&o.level, "level", "l", "error correction level, L, M, Q or H")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.Bool("help", false, "print this message")

	return cmd
}

// resolve validates the parsed flags and fills in the defaults that depend
// on other flags.
func (o *options) resolve(cmd *cobra.Command) error {
	if o.width <= 0 || o.height <= 0 {
		return usageErrorf("width and height must be positive, got %dx%d", o.width, o.height)
	}

	if !cmd.Flags().Changed("format") && o.output != "" {
		o.format.value = formatFromPath(o.output)
	}

	if o.output == "" {
		o.output = o.format.value.defaultName()
	}

	return nil
}

// outputPath returns the file to write. An existing directory receives the
// default file name for the format.
func outputPath(path string, f format) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, f.defaultName())
	}

	return path
}

func generate(o *options, datum string, logger *logrus.Logger) error {
	q := qrcode.New(datum, o.level.level)
	q.ForegroundColor = o.foreground.colour
	q.BackgroundColor = o.background.colour

	logger.WithFields(logrus.Fields{
		"format": o.format.value,
		"ecl":    q.Level(),
		"colour": q.ForegroundColor,
	}).Debug("encoding datum")

	var (
		data []byte
		err  error
	)

	switch o.format.value {
	case formatSVG:
		data, err = q.SVG()
	default:
		logger.WithFields(logrus.Fields{"width": o.width, "height": o.height}).Debug("rendering png")
		data, err = q.PNG(o.width, o.height)
	}

	if err != nil {
		var encErr *qrcode.EncodeError
		if errors.As(err, &encErr) {
			return &exitError{code: exitEncode, err: encErr.Err}
		}

		if errors.Is(err, qrcode.ErrInvalidDimensions) {
			return usageError(err)
		}

		return &exitError{code: exitIO, err: err}
	}

	path := outputPath(o.output, o.format.value)

	fileMode := os.FileMode(0644)

	if err := os.WriteFile(path, data, fileMode); err != nil {
		return &exitError{code: exitIO, err: err}
	}

	logger.WithFields(logrus.Fields{"path": path, "bytes": len(data)}).Debug("wrote QR code")

	return nil
}
