// Package diag defines the lexical error values produced by the scanning
// engine. Rendering lives elsewhere; errors here only carry the data a
// renderer needs, at minimum the offending span.
package diag

import (
	"fmt"

	"github.com/qexat/venusc/tokens"
)

// Visitor dispatches over the concrete syntax error values, one method per
// kind. The error renderer implements it.
type Visitor interface {
	VisitInvalidStringEscapeSequence(*InvalidStringEscapeSequenceError)
	VisitUnclosedString(*UnclosedStringError)
	VisitUnexpectedSpecialCharacterInString(*UnexpectedSpecialCharacterInStringError)
	VisitUnrecognizedCharacter(*UnrecognizedCharacterError)
}

// SyntaxError is the interface satisfied by every lexical error value.
type SyntaxError interface {
	error
	Span() tokens.Span
	Accept(Visitor)
}

// InvalidStringEscapeSequenceError is raised for a malformed escape sequence
// inside a string literal. Reserved: the string scan does not produce it yet.
type InvalidStringEscapeSequenceError struct {
	At             tokens.Span
	EscapeSequence string
}

func (e *InvalidStringEscapeSequenceError) Error() string {
	return fmt.Sprintf("invalid string escape sequence %q at %s", e.EscapeSequence, e.At)
}

func (e *InvalidStringEscapeSequenceError) Span() tokens.Span { return e.At }

func (e *InvalidStringEscapeSequenceError) Accept(v Visitor) {
	v.VisitInvalidStringEscapeSequence(e)
}

// UnclosedStringError is raised when the closing quote of a string literal
// is not found before a newline or the end of the source.
type UnclosedStringError struct {
	At tokens.Span
}

func (e *UnclosedStringError) Error() string {
	return fmt.Sprintf("unclosed string at %s", e.At)
}

func (e *UnclosedStringError) Span() tokens.Span { return e.At }

func (e *UnclosedStringError) Accept(v Visitor) { v.VisitUnclosedString(e) }

// UnexpectedSpecialCharacterInStringError is raised when a raw special
// character appears in a non-raw string. Reserved: the string scan does not
// produce it yet.
type UnexpectedSpecialCharacterInStringError struct {
	At               tokens.Span
	SpecialCharacter string
}

func (e *UnexpectedSpecialCharacterInStringError) Error() string {
	return fmt.Sprintf("unexpected special character %q in string at %s", e.SpecialCharacter, e.At)
}

func (e *UnexpectedSpecialCharacterInStringError) Span() tokens.Span { return e.At }

func (e *UnexpectedSpecialCharacterInStringError) Accept(v Visitor) {
	v.VisitUnexpectedSpecialCharacterInString(e)
}

// UnrecognizedCharacterError is raised when a character outside the lexical
// grammar is found in the program.
type UnrecognizedCharacterError struct {
	At        tokens.Span
	Character string
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unrecognized character %q at %s", e.Character, e.At)
}

func (e *UnrecognizedCharacterError) Span() tokens.Span { return e.At }

func (e *UnrecognizedCharacterError) Accept(v Visitor) { v.VisitUnrecognizedCharacter(e) }
