package models

import "testing"

func TestNormalizeSize(t *testing.T) {

	tests := []struct {
		input    string
		expected Size
	}{
		{"small", Small},
		{"medium", Medium},
		{"large", Large},
		{"Large", Small},
		{"thumb1", Small},
		{"", Small},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeSize(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
