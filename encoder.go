package qrcode

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/decoder"
)

// RecoveryLevel is the QR error correction level.
type RecoveryLevel int

const (
	// Level L, about 7% of codewords recoverable.
	Low RecoveryLevel = iota
	// Level M, about 15%.
	Medium
	// Level Q, about 25%.
	High
	// Level H, about 30%.
	Highest
)

func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "Q"
	case Highest:
		return "H"
	default:
		return fmt.Sprintf("RecoveryLevel(%d)", int(l))
	}
}

func (l RecoveryLevel) zxing() decoder.ErrorCorrectionLevel {
	switch l {
	case Medium:
		return decoder.ErrorCorrectionLevel_M
	case High:
		return decoder.ErrorCorrectionLevel_Q
	case Highest:
		return decoder.ErrorCorrectionLevel_H
	default:
		return decoder.ErrorCorrectionLevel_L
	}
}

// ParseRecoveryLevel accepts the letters L, M, Q and H as well as the names
// low, medium, high and highest, case insensitively.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch strings.ToLower(s) {
	case "l", "low":
		return Low, nil
	case "m", "medium":
		return Medium, nil
	case "q", "high":
		return High, nil
	case "h", "highest":
		return Highest, nil
	default:
		return Low, fmt.Errorf("unknown recovery level %q (want L, M, Q or H)", s)
	}
}

// ErrInvalidDimensions is returned for negative width or height requests.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// EncodeError reports that the datum could not be represented as a QR code.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "encoding QR code: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Encoder turns content into a module matrix. A width or height of 0 asks
// for the natural, unscaled symbol; larger values ask the encoder to scale
// the symbol into a matrix of exactly that size.
type Encoder interface {
	Encode(content string, level RecoveryLevel, margin, width, height int) (*Matrix, error)
}

// ZXingEncoder encodes with the gozxing QR writer.
type ZXingEncoder struct{}

func (ZXingEncoder) Encode(content string, level RecoveryLevel, margin, width, height int) (*Matrix, error) {
	if content == "" {
		return nil, &EncodeError{Err: errors.New("no data to encode")}
	}

	// The datum travels as UTF-8; invalid bytes would be replaced with U+FFFD.
	if !utf8.ValidString(content) {
		return nil, &EncodeError{Err: errors.New("datum is not valid UTF-8")}
	}

	if width < 0 || height < 0 {
		return nil, fmt.Errorf("requested %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_MARGIN:           margin,
		gozxing.EncodeHintType_ERROR_CORRECTION: level.zxing(),
		gozxing.EncodeHintType_CHARACTER_SET:    "UTF-8",
	}

	bm, err := zxqr.NewQRCodeWriter().Encode(content, gozxing.BarcodeFormat_QR_CODE, width, height, hints)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	return matrixFromBitMatrix(bm)
}
