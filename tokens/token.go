package tokens

import "fmt"

// Span is a half-open character-offset interval [Start, End) into a source
// string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters the span covers.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}

// Token is one lexed token: its kind, the exact source substring that
// produced it, and the offset of that substring in the source. Tokens are
// immutable once built.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
}

// Span returns the interval of the source the token occupies.
func (t Token) Span() Span {
	return Span{Start: t.Offset, End: t.Offset + len(t.Lexeme)}
}

func (t Token) String() string {
	if t.Kind.Lexeme() != "" || t.Lexeme == "" {
		return fmt.Sprintf("%s@%d", t.Kind.Name(), t.Offset)
	}
	return fmt.Sprintf("%s[%s]@%d", t.Kind.Name(), t.Lexeme, t.Offset)
}
