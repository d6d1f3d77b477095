package mdparse

import "github.com/gomarkd/markd/ast"

// treeify runs pass 4: it consumes the flat node sequence left to right,
// nesting each Header under the nearest preceding Header of a strictly
// lesser level. currentLevel is the level of the Header whose children are
// being collected (0 for the synthetic document root); pos is a shared
// cursor into nodes.
func treeify(nodes []ast.Node, currentLevel int, pos *int) []ast.Node {
	var children []ast.Node
	for *pos < len(nodes) {
		n := nodes[*pos]
		h, isHeader := n.(*ast.Header)
		if !isHeader {
			children = append(children, n)
			*pos++
			continue
		}
		if h.Level <= currentLevel {
			return children
		}
		*pos++
		grandchildren := treeify(nodes, h.Level, pos)
		children = append(children, &ast.Header{Level: h.Level, Title: h.Title, Children: grandchildren})
	}
	return children
}
