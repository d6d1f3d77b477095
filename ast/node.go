// Package ast defines the Markdown document tree: the tagged node variants,
// the Container contract for nodes that hold children, and the build/pre_space
// serialization contract that turns a tree back into Markdown text.
package ast

// Kind identifies which Markdown construct a Node represents.
type Kind int

const (
	KindDocument Kind = iota
	KindHeader
	KindParagraph
	KindComment
	KindCode
	KindLinkRef
	KindTable
	KindTableRow
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindHeader:
		return "Header"
	case KindParagraph:
		return "Paragraph"
	case KindComment:
		return "Comment"
	case KindCode:
		return "Code"
	case KindLinkRef:
		return "LinkRef"
	case KindTable:
		return "Table"
	case KindTableRow:
		return "TableRow"
	default:
		return "Unknown"
	}
}

// Node is the single interface every tree element satisfies. Implementations
// are value-like: mutation always produces a new Node rather than editing one
// in place.
type Node interface {
	// Kind reports the tagged variant, for type-switch-free predicate checks.
	Kind() Kind

	// Build appends this node's serialized Markdown form to out and returns it.
	Build(out []byte) []byte

	// PreSpace appends the inter-node whitespace that precedes this node, given
	// the immediately preceding sibling (prev == nil if this is the first child).
	PreSpace(out []byte, prev Node) []byte
}

// Container is a Node that owns an ordered sequence of children: Document,
// Header, and Table. Paragraph, Comment, Code, LinkRef, and TableRow are
// leaves for the purposes of generic traversal.
type Container interface {
	Node

	// NodeChildren returns this container's children. Callers must not mutate
	// the returned slice.
	NodeChildren() []Node

	// WithChildren returns a new Container of the same concrete type holding
	// the given children in place of the current ones.
	WithChildren(children []Node) Container
}

// IsContainer reports whether n holds children (Document, Header, Table).
func IsContainer(n Node) bool {
	_, ok := n.(Container)
	return ok
}

// defaultPreSpace is the fallback inter-sibling separator: one blank line
// between any two siblings, nothing before the first.
func defaultPreSpace(out []byte, prev Node) []byte {
	if prev == nil {
		return out
	}
	return append(out, '\n')
}
