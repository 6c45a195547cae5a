// Package source tells which video provider a URL belongs to
// and extracts the provider's video ID from it.
package source

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vlatan/video-helper/internal/models"
)

// Dotted-quad IPv4 literal
var dottedQuad = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)

// Classify returns the provider of a URL.
// The URL does not need a scheme, "youtube.com/watch?v=abc" is a YouTube URL.
func Classify(rawURL string) models.Provider {

	// Parse errors are treated as a missing host
	var host string
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Hostname()
	}

	// An IP host never matches a provider, no need to reduce it
	if !IsIP(host) {
		if host != "" {
			host = Domain(host)
		} else {
			host = Domain(rawURL)
		}
	}

	labels := strings.Split(host, ".")
	switch {
	case slices.Contains(labels, "vimeo"):
		return models.Vimeo
	case slices.Contains(labels, "youtube"):
		return models.YouTube
	default:
		return models.Unknown
	}
}

// IsIP checks if host is a dotted-quad IPv4 literal
// having every part in the range 0-255
func IsIP(host string) bool {

	m := dottedQuad.FindStringSubmatch(host)
	if m == nil {
		return false
	}

	for _, part := range m[1:] {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}

	return true
}

// Resolve classifies the URL and extracts the video ID
func Resolve(rawURL string) models.VideoReference {
	provider := Classify(rawURL)
	id, _ := ExtractID(rawURL, provider)
	return models.VideoReference{Provider: provider, ID: id}
}
