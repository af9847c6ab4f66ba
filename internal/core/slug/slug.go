// Package slug turns question titles into URL-safe path segments
// Pipeline order
// 1 Unicode NFKD normalization
// 2 Strip combining marks (é -> e)
// 3 Lowercase
// 4 Collapse non-alphanumeric runs to single hyphens and trim
package slug

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLen caps slugs so they stay friendly in URLs
const maxLen = 80

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
		)
	},
}

// Make returns the slug form of s, or "untitled" when nothing survives
func Make(s string) string {
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	var b strings.Builder
	b.Grow(len(ns))
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(ns) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxLen {
		out = strings.Trim(out[:maxLen], "-")
	}
	if out == "" {
		return "untitled"
	}
	return out
}
