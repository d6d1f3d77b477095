package query

import (
	"strconv"
	"strings"

	"github.com/gomarkd/markd/ast"
)

// Query evaluates expr against root per §4.G's stepwise walk and returns the
// resulting sequence of Nodes. It raises UnrecognizedQueryError if the
// tokenizer cannot parse the remaining expression, or InvalidRegexError if a
// "/.../" token fails to compile.
func Query(expr string, root ast.Node) ([]ast.Node, error) {
	candidates := []ast.Node{root}
	remainder := expr

	for {
		if len(candidates) == 0 {
			return candidates, nil
		}
		if remainder == "" || remainder == "." {
			return candidates, nil
		}

		st, rest, err := parseStep(remainder)
		if err != nil {
			return nil, err
		}

		candidates = applyStep(candidates, st)
		remainder = rest
	}
}

// applyStep runs the token-match and index-application phases of one step
// over the current candidate set.
func applyStep(candidates []ast.Node, st step) []ast.Node {
	var matched []ast.Node

	if !st.hasToken || st.isIdentityToken() {
		matched = candidates
	} else if len(candidates) == 1 {
		if cont, ok := candidates[0].(ast.Container); ok {
			if m := findMatch(cont, st); m != nil {
				matched = []ast.Node{m}
			}
		}
	}

	if !st.hasIndex {
		return matched
	}

	var out []ast.Node
	for _, m := range matched {
		out = append(out, applyIndex(m, st.index)...)
	}
	return out
}

// findMatch performs the pre-order, depth-first search for the first Header
// (or, when st.table is set, Table) whose title/top-left cell matches the
// step's token. Scope is cont's immediate children when st.recursive is
// false, and the whole subtree rooted at cont otherwise.
func findMatch(cont ast.Container, st step) ast.Node {
	for _, child := range cont.NodeChildren() {
		if st.table {
			if t, ok := child.(*ast.Table); ok && matchesToken(t.Cell(0, 0), st) {
				return t
			}
		} else {
			if h, ok := child.(*ast.Header); ok && matchesToken(h.Title, st) {
				return h
			}
		}
		if st.recursive {
			if childCont, ok := child.(ast.Container); ok {
				if found := findMatch(childCont, st); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

func matchesToken(title string, st step) bool {
	if st.tokenIsRegex {
		return st.tokenRegex.MatchString(title)
	}
	return title == st.token
}

// applyIndex applies one index expression to a single matched node.
func applyIndex(m ast.Node, idx string) []ast.Node {
	if idx == "*" {
		if cont, ok := m.(ast.Container); ok {
			return append([]ast.Node(nil), cont.NodeChildren()...)
		}
		return nil
	}

	if row, ok := m.(*ast.TableRow); ok {
		n, err := strconv.Atoi(idx)
		if err != nil {
			return nil
		}
		if cell, ok := cellAt(row.Cells, n); ok {
			return []ast.Node{&ast.Paragraph{Text: cell}}
		}
		return nil
	}

	if table, ok := m.(*ast.Table); ok {
		if comma := strings.IndexByte(idx, ','); comma >= 0 {
			colName, rowName := idx[:comma], idx[comma+1:]
			return []ast.Node{&ast.Paragraph{Text: table.CellByNames(colName, rowName)}}
		}
	}

	if cont, ok := m.(ast.Container); ok {
		n, err := strconv.Atoi(idx)
		if err != nil {
			return nil
		}
		if c, ok := childAt(cont.NodeChildren(), n); ok {
			return []ast.Node{c}
		}
	}

	return nil
}

// childAt resolves an index (negative wraps from the end) against children.
func childAt(children []ast.Node, n int) (ast.Node, bool) {
	pos := n
	if pos < 0 {
		pos = len(children) + pos
	}
	if pos < 0 || pos >= len(children) {
		return nil, false
	}
	return children[pos], true
}

func cellAt(cells []string, n int) (string, bool) {
	pos := n
	if pos < 0 {
		pos = len(cells) + pos
	}
	if pos < 0 || pos >= len(cells) {
		return "", false
	}
	return cells[pos], true
}
