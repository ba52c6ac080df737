package extraction

import (
	"testing"
	"time"
)

func TestParseLabDateLayouts(t *testing.T) {
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	inputs := []string{
		"2025-01-15",
		"01/15/2025",
		"1/15/2025",
		"01-15-2025",
		"January 15, 2025",
		"Jan 15, 2025",
		"15 January 2025",
		"15 Jan 2025",
		"2025/01/15",
		"  2025-01-15  ",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := ParseLabDate(in)
			if err != nil {
				t.Fatalf("ParseLabDate(%q) unexpected error: %v", in, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseLabDate(%q) = %v, want %v", in, got, want)
			}
		})
	}
}

func TestParseLabDateRejects(t *testing.T) {
	inputs := []string{"", "   ", "N/A", "pending", "2025-13-40", "15/32/2025", "Janurember 15, 2025"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseLabDate(in); err == nil {
				t.Errorf("ParseLabDate(%q) expected error", in)
			}
		})
	}
}
