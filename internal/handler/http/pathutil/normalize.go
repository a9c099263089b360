package pathutil

import (
	"regexp"
	"strings"
)

// uuidSegment matches a UUID path segment.
const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Patterns are ordered from most to least specific and pre-compiled so
// normalization stays cheap on the request path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `/summarize$`), template: "/articles/:id/summarize"},
	{pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `$`), template: "/articles/:id"},
}

// NormalizePath collapses ID-bearing paths to a template form so metric
// labels stay bounded. Static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/articles/1b4e28ba-2fa1-11d2-883f-0016d3cca427") // "/articles/:id"
//	NormalizePath("/articles")                                       // "/articles" (unchanged)
//	NormalizePath("/health")                                         // "/health" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
