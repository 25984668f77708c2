package slugify

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// FromShopName derives a URL-safe slug: lower-case, strip anything outside
// [a-z0-9 space hyphen], collapse whitespace to single hyphens, collapse
// hyphen runs, trim.
func FromShopName(name string) string {
	s := strings.ToLower(name)
	s = invalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix appends a base-36 timestamp so a colliding slug stays unique.
func WithSuffix(slug string) string {
	return slug + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
