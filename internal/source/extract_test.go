package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vlatan/video-helper/internal/models"
)

func TestExtractID(t *testing.T) {

	tests := []struct {
		name       string
		url        string
		provider   models.Provider
		expected   string
		expectedOk bool
	}{
		{"youtube", "https://www.youtube.com/watch?v=abc123", models.YouTube, "abc123", true},
		{"youtube extra params", "https://www.youtube.com/watch?feature=share&v=abc123&t=10", models.YouTube, "abc123", true},
		{"youtube fragment", "https://www.youtube.com/watch?v=abc123#t=10", models.YouTube, "abc123", true},
		{"youtube no scheme", "youtube.com/watch?v=abc123", models.YouTube, "abc123", true},
		{"youtube not decoded", "https://www.youtube.com/watch?v=abc%2D123", models.YouTube, "abc%2D123", true},
		{"youtube empty v", "https://www.youtube.com/watch?v=", models.YouTube, "", true},
		{"youtube fallback", "https://www.youtube.com/watch", models.YouTube, "https://www.youtube.com/watch", true},
		{"youtube v without value", "https://www.youtube.com/watch?v", models.YouTube, "https://www.youtube.com/watch?v", true},
		{"vimeo", "https://vimeo.com/76979871", models.Vimeo, "76979871", true},
		{"vimeo query", "https://vimeo.com/76979871?autoplay=1", models.Vimeo, "76979871", true},
		{"vimeo no scheme", "vimeo.com/76979871", models.Vimeo, "76979871", true},
		{"vimeo player path", "http://player.vimeo.com/video/76979871", models.Vimeo, "video/76979871", true},
		{"unknown", "https://example.com/watch?v=abc123", models.Unknown, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractID(tt.url, tt.provider)
			if got != tt.expected || ok != tt.expectedOk {
				t.Errorf("got (%q, %t), want (%q, %t)", got, ok, tt.expected, tt.expectedOk)
			}
		})
	}
}

func TestQueryParams(t *testing.T) {

	tests := []struct {
		name     string
		url      string
		expected map[string]string
	}{
		{"no query", "https://www.youtube.com/watch", map[string]string{}},
		{"empty query", "https://www.youtube.com/watch?", map[string]string{}},
		{"single", "https://www.youtube.com/watch?v=abc", map[string]string{"v": "abc"}},
		{"many", "/watch?v=abc&t=10&list=PL1", map[string]string{"v": "abc", "t": "10", "list": "PL1"}},
		{"later wins", "/watch?v=abc&v=def", map[string]string{"v": "def"}},
		{"no value skipped", "/watch?v&t=1", map[string]string{"t": "1"}},
		{"second equals dropped", "/watch?v=a=b", map[string]string{"v": "a"}},
		{"fragment ignored", "/watch?v=abc#x=1", map[string]string{"v": "abc"}},
		{"not decoded", "/watch?q=a%20b+c", map[string]string{"q": "a%20b+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QueryParams(tt.url)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("QueryParams() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
