package botocore

import (
	"strings"
)

// Headers is the header mapping of an HTTP response. Keys are stored as
// received; Get and Prefixed look up case-insensitively, while members bound
// to a single header by location use the exact key.
type Headers map[string]string

// Get returns the first header whose name matches case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	if v, ok := h[name]; ok {
		return v, true
	}
	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// GetDefault returns the header value, or def when absent.
func (h Headers) GetDefault(name string, def string) string {
	if v, ok := h.Get(name); ok {
		return v
	}
	return def
}

// Prefixed returns every header whose name starts with prefix, compared
// case-insensitively, with the prefix stripped from the returned keys.
func (h Headers) Prefixed(prefix string) map[string]string {
	matched := make(map[string]string)
	lower := strings.ToLower(prefix)
	for k, v := range h {
		if strings.HasPrefix(strings.ToLower(k), lower) {
			matched[k[len(prefix):]] = v
		}
	}
	return matched
}

// Response is a fully buffered HTTP response: the decoders never read from
// the network and never retry.
type Response struct {
	StatusCode int
	Headers    Headers
	Body       []byte
}
