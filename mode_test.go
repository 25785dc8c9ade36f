package camfx

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeFull, false},
		{"full", ModeFull, false},
		{"FULL", ModeFull, false},
		{"random-salt", ModeRandomSalt, false},
		{"Random_Salt", ModeRandomSalt, false},
		{" randomsalt ", ModeRandomSalt, false},
		{"random mosaic", ModeRandomMosaic, false},
		{"mosaic", ModeFull, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMode) {
					t.Fatalf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeText(t *testing.T) {
	for m := ModeFull; m < modeCount; m++ {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() = %v", m, err)
		}
		var back Mode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("round trip of %v gave %v, %v", m, back, err)
		}
	}
	if _, err := Mode(9).MarshalText(); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Mode(9).MarshalText() = %v, want ErrInvalidMode", err)
	}
	if s := Mode(9).String(); s != "Mode(9)" {
		t.Errorf("Mode(9).String() = %q", s)
	}
}

func TestParseFilterKind(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterKind
		wantErr bool
	}{
		{"", FilterNone, false},
		{"none", FilterNone, false},
		{"gaussian3x3", FilterGaussian3x3, false},
		{"Gaussian_3x3", FilterGaussian3x3, false},
		{"GAUSSIAN 5X5", FilterGaussian5x5, false},
		{"Sobel", FilterSobel, false},
		{"prewitt", FilterPrewitt, false},
		{"median", FilterNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilterKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFilter) {
					t.Fatalf("ParseFilterKind(%q) error = %v, want ErrUnknownFilter", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilterKind(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilterKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterKindString(t *testing.T) {
	for k := FilterNone; k < filterKindCount; k++ {
		back, err := ParseFilterKind(k.String())
		if err != nil || back != k {
			t.Errorf("ParseFilterKind(%q) = %v, %v", k.String(), back, err)
		}
	}
	if _, err := FilterKind(42).MarshalText(); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("FilterKind(42).MarshalText() = %v, want ErrUnknownFilter", err)
	}
}
