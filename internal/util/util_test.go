package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "upload limit", bytes: 5 << 20, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Rahim Store", expected: "rahim-store"},
		{name: "punctuation collapses", input: "  Karim's -- Fashion & Co. ", expected: "karim-s-fashion-co"},
		{name: "accents stripped", input: "Café Ghor", expected: "cafe-ghor"},
		{name: "digits kept", input: "Shop 24/7", expected: "shop-24-7"},
		{name: "non latin dropped", input: "আমার দোকান", expected: ""},
		{name: "mixed scripts", input: "Dhaka বাজার Mart", expected: "dhaka-mart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	if got := MaskToken("abcdefghijklmnop", 10); got != "abcdefghij..." {
		t.Fatalf("MaskToken = %q", got)
	}
	if got := MaskToken("short", 10); got != "short" {
		t.Fatalf("MaskToken = %q", got)
	}
}
