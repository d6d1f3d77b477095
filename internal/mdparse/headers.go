package mdparse

import (
	"regexp"
	"strings"

	"github.com/gomarkd/markd/ast"
)

// atxRE matches an ATX header line: one to nine '#' followed by a space and
// the title text.
var atxRE = regexp.MustCompile(`^(#{1,9}) (.*)$`)

// setextEqualsRE and setextDashesRE match setext underline lines.
var setextEqualsRE = regexp.MustCompile(`^=+\s*$`)
var setextDashesRE = regexp.MustCompile(`^-+\s*$`)

// splitHeaders runs pass 2 on a single Paragraph's raw text: it walks the
// text line by line, pulling out setext (title line + underline) and ATX
// ('#'-prefixed) headers, and emits the surrounding text as Paragraph nodes.
// Comment, Code and LinkRef nodes produced by pass 1 are untouched by this
// pass and pass straight through the caller.
func splitHeaders(text string) []ast.Node {
	lines := strings.Split(text, "\n")
	var out []ast.Node
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		raw := strings.Join(buf, "\n")
		if strings.TrimSpace(raw) != "" {
			out = append(out, &ast.Paragraph{Text: raw})
		}
		buf = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if setextEqualsRE.MatchString(line) && len(buf) > 0 && strings.TrimSpace(buf[len(buf)-1]) != "" {
			title := strings.TrimSpace(buf[len(buf)-1])
			buf = buf[:len(buf)-1]
			flush()
			out = append(out, &ast.Header{Level: 1, Title: title})
			continue
		}
		if setextDashesRE.MatchString(line) && len(buf) > 0 && strings.TrimSpace(buf[len(buf)-1]) != "" {
			title := strings.TrimSpace(buf[len(buf)-1])
			buf = buf[:len(buf)-1]
			flush()
			out = append(out, &ast.Header{Level: 2, Title: title})
			continue
		}
		if m := atxRE.FindStringSubmatch(line); m != nil {
			flush()
			out = append(out, &ast.Header{Level: len(m[1]), Title: strings.TrimSpace(m[2])})
			continue
		}

		buf = append(buf, line)
	}
	flush()

	return out
}
