package parser

import (
	"fmt"

	"github.com/yahaha-lang/yahaha/token"
)

// ParseError is a structured parse diagnostic: the source position it was
// found at and a description of what the parser expected instead
// (spec.md §7 ParseError).
type ParseError struct {
	Pos    token.Pos
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] parse error: %s", e.Pos, e.Detail)
}
