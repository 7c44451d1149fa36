package cmd

import "testing"

func TestIsRelease(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"v1.2.3", true},
		{"v1.2.3-rc.1", true},
		{"(devel)", false},
		{"1.2.3", false},
		{"v0.0.0-20250101120000-abcdef123456", false},
		{"v1.2.4-0.20250101120000-abcdef123456", false},
	}
	for _, tt := range tests {
		if got := isRelease(tt.v); got != tt.want {
			t.Errorf("isRelease(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
