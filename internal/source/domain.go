package source

import (
	"strings"
)

// Domain reduces a URL or a bare host to its registrable domain,
// e.g. "http://www.m.youtube.co.uk/watch" to "youtube.co.uk".
//
// It keeps the last three labels when the last one has two letters,
// the two labels before an empty last label (trailing dot),
// and the last two labels otherwise.
// This is a heuristic, not a public suffix list lookup.
func Domain(s string) string {

	// Take the host part
	bits := strings.Split(s, "/")
	host := bits[0]
	if host == "http:" || host == "https:" {
		host = ""
		if len(bits) > 2 {
			host = bits[2]
		}
	}

	labels := strings.Split(host, ".")
	idz := len(labels) - 3

	// Labels before the start of the host are skipped
	join := func(indexes ...int) string {
		var parts []string
		for _, i := range indexes {
			if i >= 0 && i < len(labels) {
				parts = append(parts, labels[i])
			}
		}
		return strings.Join(parts, ".")
	}

	switch len(labels[idz+2]) {
	case 2:
		return join(idz, idz+1, idz+2)
	case 0:
		return join(idz, idz+1)
	default:
		return join(idz+1, idz+2)
	}
}
