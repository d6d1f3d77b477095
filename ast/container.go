package ast

// ReplaceIn maps each (child, present, index) position of c's children to a
// replacement sequence via f, including one synthetic (nil, false, len)
// position at the end so f can append. When f returns ok=false for a
// present child, that child is dropped if filter is true, or preserved
// unchanged otherwise.
func ReplaceIn(c Container, filter bool, f func(child Node, ok bool, index int) ([]Node, bool)) Container {
	children := c.NodeChildren()
	out := make([]Node, 0, len(children))
	for i := 0; i <= len(children); i++ {
		var child Node
		present := i < len(children)
		if present {
			child = children[i]
		}
		repl, defined := f(child, present, i)
		switch {
		case defined:
			out = append(out, repl...)
		case present && !filter:
			out = append(out, child)
		}
	}
	return c.WithChildren(out)
}

// FlatMapFirstIn finds the first child for which f is defined and splices
// its replacement sequence in place. If no child matches, ifNotFound is
// appended (or replaces the entire child list, if replace is true) and the
// search is retried once against the new list -- matching on the appended
// fallback is allowed. If still nothing matches, the list with the fallback
// applied is returned unchanged.
func FlatMapFirstIn(c Container, ifNotFound []Node, replace bool, f func(child Node) ([]Node, bool)) Container {
	children := c.NodeChildren()
	if out, ok := spliceFirstMatch(children, f); ok {
		return c.WithChildren(out)
	}

	var fallback []Node
	if replace {
		fallback = append([]Node{}, ifNotFound...)
	} else {
		fallback = append(append([]Node{}, children...), ifNotFound...)
	}

	if out, ok := spliceFirstMatch(fallback, f); ok {
		return c.WithChildren(out)
	}
	return c.WithChildren(fallback)
}

// MapFirstIn is FlatMapFirstIn for a transform that returns a single
// replacement node rather than a sequence.
func MapFirstIn(c Container, ifNotFound []Node, replace bool, f func(child Node) (Node, bool)) Container {
	return FlatMapFirstIn(c, ifNotFound, replace, func(child Node) ([]Node, bool) {
		n, ok := f(child)
		if !ok {
			return nil, false
		}
		return []Node{n}, true
	})
}

func spliceFirstMatch(children []Node, f func(Node) ([]Node, bool)) ([]Node, bool) {
	for i, child := range children {
		repl, ok := f(child)
		if !ok {
			continue
		}
		out := make([]Node, 0, len(children)-1+len(repl))
		out = append(out, children[:i]...)
		out = append(out, repl...)
		out = append(out, children[i+1:]...)
		return out, true
	}
	return nil, false
}

// CollectFirstRecursive performs a pre-order depth-first search of the
// subtree rooted at n, testing n itself before its children, and returns the
// first node for which f is defined.
func CollectFirstRecursive(n Node, f func(Node) (Node, bool)) (Node, bool) {
	if res, ok := f(n); ok {
		return res, true
	}
	c, ok := n.(Container)
	if !ok {
		return nil, false
	}
	for _, child := range c.NodeChildren() {
		if res, ok := CollectFirstRecursive(child, f); ok {
			return res, true
		}
	}
	return nil, false
}

// ReplaceRecursively rewrites c top-down: each child for which f is defined
// is substituted directly; every other child is descended into (if it is
// itself a Container) and rewritten the same way.
func ReplaceRecursively(c Container, f func(Node) (Node, bool)) Container {
	children := c.NodeChildren()
	out := make([]Node, len(children))
	for i, child := range children {
		if repl, ok := f(child); ok {
			out[i] = repl
			continue
		}
		if cc, ok := child.(Container); ok {
			out[i] = ReplaceRecursively(cc, f)
		} else {
			out[i] = child
		}
	}
	return c.WithChildren(out)
}
