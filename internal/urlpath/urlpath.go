// Package urlpath assembles URL paths from independent segments, taking
// care of the slash bookkeeping: boundary slashes between segments are
// normalized, runs of slashes collapse to one, and the result starts with
// either the base URL's scheme or a single "/".
package urlpath

import "strings"

// Join concatenates base and the given path segments into a URL.
//
// Segments may carry leading or trailing slashes, contain internal slashes,
// or be empty; empty pieces are dropped. When base is an absolute URL
// (contains "://") it is kept intact up to its trailing slash. When base is
// empty or a path fragment the result is rooted at "/".
func Join(base string, segments ...string) string {
	var prefix string
	parts := make([]string, 0, len(segments)+1)
	add := func(s string) {
		for _, p := range strings.Split(s, "/") {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}

	if strings.Contains(base, "://") {
		prefix = strings.TrimRight(base, "/")
	} else {
		add(base)
	}
	for _, seg := range segments {
		add(seg)
	}

	path := strings.Join(parts, "/")
	switch {
	case prefix != "" && path == "":
		return prefix
	case prefix != "":
		return prefix + "/" + path
	default:
		return "/" + path
	}
}
