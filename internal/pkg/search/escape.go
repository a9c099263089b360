// Package search holds helpers shared by the persistence search paths.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds filtered list queries so a slow scan cannot
// hold a connection indefinitely.
const DefaultSearchTimeout = 5 * time.Second

// EscapeILIKE escapes LIKE metacharacters in keyword and wraps it in
// wildcards for a contains-style ILIKE match. The caller passes the result
// as a bind parameter, never interpolated into SQL.
func EscapeILIKE(keyword string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return "%" + replacer.Replace(keyword) + "%"
}
