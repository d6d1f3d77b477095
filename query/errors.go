// Package query implements MarkdQL (§4.G): a compact path-expression
// language for selecting Headers, Tables, and their descendants out of a
// parsed document tree.
package query

import "fmt"

// UnrecognizedQueryError is raised when the tokenizer cannot match the head
// of the remaining query string against any step grammar.
type UnrecognizedQueryError struct {
	Expr string
}

func (e *UnrecognizedQueryError) Error() string {
	return fmt.Sprintf("markdql: unrecognized query: %q", e.Expr)
}

// InvalidRegexError is raised when a "/.../" token fails to compile.
type InvalidRegexError struct {
	Token string
	Err   error
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("markdql: invalid regex token %q: %v", e.Token, e.Err)
}

func (e *InvalidRegexError) Unwrap() error { return e.Err }
