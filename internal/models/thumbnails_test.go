package models

import (
	"testing"
)

func TestThumbnailEqual(t *testing.T) {

	a := Thumbnail{Width: 120, Height: 90, Url: "http://i.ytimg.com/vi/abc/default.jpg"}
	b := a
	b.Url = "http://i.ytimg.com/vi/abc/0.jpg"

	tests := []struct {
		name     string
		a        *Thumbnail
		b        *Thumbnail
		expected bool
	}{
		{"nil structs", nil, nil, true},
		{"first nil struct", nil, &a, false},
		{"second nil struct", &a, nil, false},
		{"different structs", &a, &b, false},
		{"identical structs", &a, &a, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThumbnailEqual(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("got %t, want %t", got, tt.expected)
			}
		})
	}
}
