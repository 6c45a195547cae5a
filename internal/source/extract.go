package source

import (
	"net/url"
	"strings"

	"github.com/vlatan/video-helper/internal/models"
)

// ExtractID returns the video ID of a classified URL.
//
// The YouTube ID is the "v" query parameter. When the parameter is missing
// the whole URL is returned, callers should treat such an ID as unreliable.
// The Vimeo ID is the URL path without its leading slash.
// Reports false for an unknown provider.
func ExtractID(rawURL string, provider models.Provider) (string, bool) {
	switch provider {
	case models.YouTube:
		if v, ok := QueryParams(rawURL)["v"]; ok {
			return v, true
		}
		return rawURL, true
	case models.Vimeo:
		return strings.TrimPrefix(urlPath(rawURL), "/"), true
	default:
		return "", false
	}
}

// QueryParams splits the query of a URL into a name to value mapping.
// Values are not URL-decoded. A later parameter overrides an earlier one
// with the same name, parameters with no "=" are skipped.
func QueryParams(rawURL string) map[string]string {

	params := make(map[string]string)

	rawURL, _, _ = strings.Cut(rawURL, "#")
	_, query, ok := strings.Cut(rawURL, "?")
	if !ok || query == "" {
		return params
	}

	for item := range strings.SplitSeq(query, "&") {
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		// Anything after a second "=" is dropped
		value, _, _ = strings.Cut(value, "=")
		params[name] = value
	}

	return params
}

// urlPath returns the escaped path of a URL, also for URLs with no scheme
func urlPath(rawURL string) string {

	// "vimeo.com/123" parses as a path only, retry it as a host
	u, err := url.Parse(rawURL)
	if err != nil || (u.Host == "" && u.Scheme == "" && !strings.HasPrefix(u.Path, "/")) {
		hu, herr := url.Parse("//" + rawURL)
		if herr != nil {
			return ""
		}
		return hu.EscapedPath()
	}

	return u.EscapedPath()
}
