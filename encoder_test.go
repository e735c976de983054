package qrcode

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    RecoveryLevel
		wantErr bool
	}{
		{"L", Low, false},
		{"m", Medium, false},
		{"Q", High, false},
		{"h", Highest, false},
		{"highest", Highest, false},
		{"Medium", Medium, false},
		{"X", Low, true},
		{"", Low, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRecoveryLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRecoveryLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParseRecoveryLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecoveryLevelString(t *testing.T) {
	for l, want := range map[RecoveryLevel]string{Low: "L", Medium: "M", High: "Q", Highest: "H"} {
		if l.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(l), l.String(), want)
		}
	}
}

func TestZXingEncoderNaturalSize(t *testing.T) {
	// Four alphanumeric characters fit a version 1 symbol (21 modules).
	m, err := ZXingEncoder{}.Encode("TEST", Low, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if m.Width() != 21 || m.Height() != 21 {
		t.Fatalf("natural size %dx%d, want 21x21", m.Width(), m.Height())
	}

	// Top left finder pattern: dark ring, light ring, dark 3x3 core.
	for _, p := range [][2]int{{0, 0}, {6, 0}, {0, 6}, {6, 6}, {3, 3}, {2, 4}} {
		if !m.Get(p[0], p[1]) {
			t.Errorf("module (%d, %d) should be dark", p[0], p[1])
		}
	}

	for _, p := range [][2]int{{1, 1}, {5, 1}, {1, 5}, {7, 0}, {0, 7}} {
		if m.Get(p[0], p[1]) {
			t.Errorf("module (%d, %d) should be light", p[0], p[1])
		}
	}
}

func TestZXingEncoderMargin(t *testing.T) {
	m, err := ZXingEncoder{}.Encode("TEST", Low, 4, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if m.Width() != 29 || m.Height() != 29 {
		t.Fatalf("size with margin %dx%d, want 29x29", m.Width(), m.Height())
	}

	if m.Get(0, 0) || m.Get(3, 3) || !m.Get(4, 4) {
		t.Error("quiet zone not light or symbol not offset by the margin")
	}
}

func TestZXingEncoderScaled(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{300, 300},
		{250, 180},
		{21, 21},
	}

	for _, tt := range tests {
		m, err := ZXingEncoder{}.Encode("HELLO", Low, 0, tt.width, tt.height)
		if err != nil {
			t.Fatal(err)
		}

		if m.Width() != tt.width || m.Height() != tt.height {
			t.Errorf("Encode(%dx%d) produced %dx%d", tt.width, tt.height, m.Width(), m.Height())
		}
	}
}

func TestZXingEncoderSmallerThanSymbol(t *testing.T) {
	m, err := ZXingEncoder{}.Encode("HELLO", Low, 0, 5, 5)
	if err != nil {
		t.Fatal(err)
	}

	if m.Width() != 21 || m.Height() != 21 {
		t.Errorf("got %dx%d, want the natural 21x21", m.Width(), m.Height())
	}
}

func TestZXingEncoderLevelGrowsSymbol(t *testing.T) {
	content := strings.Repeat("QRGEN", 10)

	low, err := ZXingEncoder{}.Encode(content, Low, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	highest, err := ZXingEncoder{}.Encode(content, Highest, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if highest.Width() <= low.Width() {
		t.Errorf("level H symbol %d modules, level L %d; expected H to be larger", highest.Width(), low.Width())
	}
}

func TestZXingEncoderErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", 8000)},
		{"latin-1 byte", "caf\xe9"},
		{"raw bytes", "\xff\xfe bad utf8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ZXingEncoder{}.Encode(tt.content, Low, 0, 0, 0)
			if err == nil {
				t.Fatal("expected error")
			}

			var encErr *EncodeError
			if !errors.As(err, &encErr) {
				t.Errorf("error %v is not an *EncodeError", err)
			}
		})
	}
}

func TestZXingEncoderNegativeSize(t *testing.T) {
	_, err := (ZXingEncoder{}).Encode("HELLO", Low, 0, -1, 10)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}

	var encErr *EncodeError
	if errors.As(err, &encErr) {
		t.Error("negative dimensions reported as an encode failure")
	}
}
