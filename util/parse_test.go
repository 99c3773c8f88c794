package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"25MB", 25 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"1024", 1024},
		{" 10mb ", 10 * 1024 * 1024},
		{"", 42},
		{"garbage", 42},
	}
	for _, tc := range tests {
		if got := ParseSize(tc.input, 42); got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"a longer transcript", 8, "a longer..."},
		{"anything", 0, "anything"},
	}
	for _, tc := range tests {
		if got := Truncate(tc.input, tc.maxLen); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.want)
		}
	}
}
