package colorutil

import "testing"

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"six digits", "#FF5500", true},
		{"lowercase", "#aabbcc", true},
		{"short form", "#fff", true},
		{"no hash", "FF5500", false},
		{"alpha not accepted", "#00000080", false},
		{"invalid char", "#GGGGGG", false},
		{"empty", "", false},
		{"just hash", "#", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidHex(tt.input); got != tt.valid {
				t.Errorf("IsValidHex(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestRGB255(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#000000", 0, 0, 0},
		{"#ff0000", 255, 0, 0},
		{"#0f0", 0, 255, 0},
		{"Blue", 0, 0, 255},
		{" steelblue ", 70, 130, 180},
		{"not-a-color", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := RGB255(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("RGB255(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF5500", "#ff5500"},
		{"#abc", "#aabbcc"},
		{"red", "#ff0000"},
		{"bogus", "#000000"},
	}
	for _, tt := range tests {
		if got := FormatHex(tt.in, "#000000"); got != tt.want {
			t.Errorf("FormatHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
