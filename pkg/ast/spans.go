package ast

// Span locates a node in its source file. Line and column are 1-based; a
// zero span means the node was synthesized.
type Span struct {
	Line   int
	Column int
}

// Before reports whether s strictly precedes other in source order. Same-line
// positions compare by column. Used for declaration-before-use checks, which
// are textual rather than control-flow based.
func (s Span) Before(other Span) bool {
	if s.Line != other.Line {
		return s.Line < other.Line
	}
	return s.Column < other.Column
}

// Zero reports whether the span carries no position information.
func (s Span) Zero() bool {
	return s.Line == 0 && s.Column == 0
}
