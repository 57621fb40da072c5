package assets

import "strings"

// Resolver turns an opaque image reference into something a view can display
type Resolver interface {
	Resolve(ref string) string
}

// BaseURLResolver prefixes root-relative references with BaseURL.
// Absolute URLs and relative paths are returned unchanged.
type BaseURLResolver struct {
	BaseURL string
}

func NewBaseURLResolver(baseURL string) BaseURLResolver {
	return BaseURLResolver{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (r BaseURLResolver) Resolve(ref string) string {
	if ref == "" || r.BaseURL == "" || !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return r.BaseURL + ref
}
