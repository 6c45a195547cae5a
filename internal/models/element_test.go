package models

import "testing"

func TestElementAttr(t *testing.T) {

	el := &Element{
		Name:  "iframe",
		Attrs: []Attr{{"width", "450"}, {"src", "http://www.youtube.com/embed/abc?hd=1"}},
	}

	tests := []struct {
		name       string
		el         *Element
		key        string
		expected   string
		expectedOk bool
	}{
		{"nil element", nil, "width", "", false},
		{"existing", el, "width", "450", true},
		{"missing", el, "height", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.el.Attr(tt.key)
			if got != tt.expected || ok != tt.expectedOk {
				t.Errorf("got (%q, %t), want (%q, %t)", got, ok, tt.expected, tt.expectedOk)
			}
		})
	}
}

func TestProviderString(t *testing.T) {

	tests := []struct {
		provider Provider
		expected string
	}{
		{Unknown, "unknown"},
		{YouTube, "youtube"},
		{Vimeo, "vimeo"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.provider.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
