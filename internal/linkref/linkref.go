// Package linkref parses "[ref]: url \"title\"" definition lines and
// canonicalizes a Header's collected LinkRefs (dedupe + sort), per §4.B.
package linkref

import (
	"regexp"
	"sort"
	"strings"

	"github.com/gomarkd/markd/ast"
)

// lineRE splits a candidate line into its ref label and the remainder after
// the colon. The remainder is further parsed procedurally (Go's RE2 engine
// has no negative lookahead, so url-vs-title disambiguation happens in code
// rather than in one combined pattern).
var lineRE = regexp.MustCompile(`^\[([^\]]+)\]:(.*)$`)

// trailingQuotedRE captures an optional leading URL plus a trailing quoted
// title from the remainder of a LinkRef line.
var trailingQuotedRE = regexp.MustCompile(`^(.*?)\s*"((?:[^"\\]|\\.)*)"\s*$`)

// Parse parses a single candidate line as a LinkRef. ok is false if line does
// not match the LinkRef grammar.
func Parse(line string) (ref *ast.LinkRef, ok bool) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	label, rest := m[1], m[2]

	var url, title string
	if tm := trailingQuotedRE.FindStringSubmatch(rest); tm != nil {
		url = strings.TrimSpace(tm[1])
		title = unescapeTitle(tm[2])
	} else {
		url = strings.TrimSpace(rest)
	}

	return &ast.LinkRef{Ref: label, URL: url, Title: title}, true
}

// unescapeTitle reverses the escape policy of ast's LinkRef Build: "\\" -> "\",
// `\"` -> `"`.
func unescapeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '"') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Canonicalize applies the LinkRef canonicalization policy: when enabled,
// refs are deduplicated by Ref (last occurrence wins) and sorted
// lexicographically ascending by Ref. When disabled, the original order and
// duplicates are preserved verbatim.
func Canonicalize(refs []*ast.LinkRef, enabled bool) []*ast.LinkRef {
	if !enabled {
		return refs
	}

	byRef := make(map[string]*ast.LinkRef, len(refs))
	var order []string
	for _, r := range refs {
		if _, seen := byRef[r.Ref]; !seen {
			order = append(order, r.Ref)
		}
		byRef[r.Ref] = r // last occurrence wins
	}
	sort.Strings(order)

	out := make([]*ast.LinkRef, len(order))
	for i, ref := range order {
		out[i] = byRef[ref]
	}
	return out
}
