package helpers

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s parses as an absolute http or https URL.
func IsValidURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// AbsoluteImageURL turns a stored image reference into an absolute URL the
// payment provider will accept. Already-absolute references are validated
// and returned as-is; relative paths are joined onto the public base with
// the filename percent-encoded; bare filenames are assumed to live under
// /uploads. An empty string means the reference is unusable and must be
// omitted rather than sent malformed.
func AbsoluteImageURL(baseURL, imageRef string) string {
	ref := strings.TrimSpace(imageRef)
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "http") {
		if IsValidURL(ref) {
			return ref
		}
		return ""
	}

	if baseURL == "" {
		return ""
	}
	base := strings.TrimRight(baseURL, "/")

	var full string
	if strings.HasPrefix(ref, "/") {
		parts := strings.Split(ref, "/")
		parts[len(parts)-1] = url.PathEscape(parts[len(parts)-1])
		full = base + strings.Join(parts, "/")
	} else {
		full = base + "/uploads/" + url.PathEscape(ref)
	}

	if !IsValidURL(full) {
		return ""
	}
	return full
}
