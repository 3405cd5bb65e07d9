package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qexat/venusc/diag"
	"github.com/qexat/venusc/tokens"
)

func requireTok(t *testing.T, actual tokens.Token, kind tokens.Kind, lexeme string, offset int) {
	t.Helper()
	require.Equal(t, kind, actual.Kind, "token kind")
	require.Equal(t, lexeme, actual.Lexeme, "token lexeme")
	require.Equal(t, offset, actual.Offset, "token offset")
}

func requireKinds(t *testing.T, actual []tokens.Token, kinds ...tokens.Kind) {
	t.Helper()
	require.Len(t, actual, len(kinds))
	for i, kind := range kinds {
		require.Equal(t, kind, actual[i].Kind, "kind of token %d", i)
	}
}

func TestLexEmpty(t *testing.T) {
	list, err := Lex("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	requireTok(t, list[0], tokens.EOF, "", 0)
}

func TestLexWhitespaceOnly(t *testing.T) {
	list, err := Lex(" \t\r\n ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	requireTok(t, list[0], tokens.EOF, "", 5)
}

func TestLexLetStatement(t *testing.T) {
	list, err := Lex("let x := 3;")
	require.NoError(t, err)
	requireKinds(t, list,
		tokens.Let, tokens.Identifier, tokens.ColonEqual,
		tokens.Natural, tokens.Semicolon, tokens.EOF)
	requireTok(t, list[0], tokens.Let, "let", 0)
	requireTok(t, list[1], tokens.Identifier, "x", 4)
	requireTok(t, list[2], tokens.ColonEqual, ":=", 6)
	requireTok(t, list[3], tokens.Natural, "3", 9)
	requireTok(t, list[4], tokens.Semicolon, ";", 10)
	requireTok(t, list[5], tokens.EOF, "", 11)
}

func TestLexUnit(t *testing.T) {
	list, err := Lex("()")
	require.NoError(t, err)
	requireKinds(t, list, tokens.Unit, tokens.EOF)
	requireTok(t, list[0], tokens.Unit, "()", 0)
}

func TestLexParensWithGap(t *testing.T) {
	list, err := Lex("( )")
	require.NoError(t, err)
	requireKinds(t, list, tokens.LeftParen, tokens.RightParen, tokens.EOF)
}

func TestLexBrackets(t *testing.T) {
	list, err := Lex("[1, 2]")
	require.NoError(t, err)
	requireKinds(t, list,
		tokens.LeftBracket, tokens.Natural, tokens.Comma,
		tokens.Natural, tokens.RightBracket, tokens.EOF)
}

func TestLexArrow(t *testing.T) {
	list, err := Lex("->")
	require.NoError(t, err)
	requireKinds(t, list, tokens.RightArrow, tokens.EOF)
	requireTok(t, list[0], tokens.RightArrow, "->", 0)
}

func TestLexMinus(t *testing.T) {
	list, err := Lex("-")
	require.NoError(t, err)
	requireKinds(t, list, tokens.Minus, tokens.EOF)
}

func TestLexMinusThenIdentifier(t *testing.T) {
	list, err := Lex("-x")
	require.NoError(t, err)
	requireKinds(t, list, tokens.Minus, tokens.Identifier, tokens.EOF)
	requireTok(t, list[0], tokens.Minus, "-", 0)
	requireTok(t, list[1], tokens.Identifier, "x", 1)
}

func TestLexOperators(t *testing.T) {
	list, err := Lex("a + b * c / d - e ^ f mod g")
	require.NoError(t, err)
	requireKinds(t, list,
		tokens.Identifier, tokens.Plus, tokens.Identifier, tokens.Star,
		tokens.Identifier, tokens.Slash, tokens.Identifier, tokens.Minus,
		tokens.Identifier, tokens.Caret, tokens.Identifier, tokens.Modulo,
		tokens.Identifier, tokens.EOF)
}

func TestLexRelations(t *testing.T) {
	list, err := Lex("= > >= < <= is")
	require.NoError(t, err)
	requireKinds(t, list,
		tokens.Equal, tokens.Greater, tokens.GreaterEqual,
		tokens.Less, tokens.LessEqual, tokens.Is, tokens.EOF)
	requireTok(t, list[2], tokens.GreaterEqual, ">=", 4)
	requireTok(t, list[4], tokens.LessEqual, "<=", 9)
}

func TestLexColonVersusColonEqual(t *testing.T) {
	list, err := Lex(": :=")
	require.NoError(t, err)
	requireKinds(t, list, tokens.Colon, tokens.ColonEqual, tokens.EOF)
}

func TestLexPunctuation(t *testing.T) {
	list, err := Lex(", % . ;")
	require.NoError(t, err)
	requireKinds(t, list,
		tokens.Comma, tokens.Percent, tokens.Period,
		tokens.Semicolon, tokens.EOF)
}

func TestLexNaturalMaximalMunch(t *testing.T) {
	list, err := Lex("1234 5")
	require.NoError(t, err)
	requireKinds(t, list, tokens.Natural, tokens.Natural, tokens.EOF)
	requireTok(t, list[0], tokens.Natural, "1234", 0)
	requireTok(t, list[1], tokens.Natural, "5", 5)
}

func TestLexString(t *testing.T) {
	list, err := Lex(`"abc"`)
	require.NoError(t, err)
	requireKinds(t, list, tokens.String, tokens.EOF)
	requireTok(t, list[0], tokens.String, `"abc"`, 0)
}

func TestLexEmptyString(t *testing.T) {
	list, err := Lex(`""`)
	require.NoError(t, err)
	requireKinds(t, list, tokens.String, tokens.EOF)
	requireTok(t, list[0], tokens.String, `""`, 0)
}

func TestLexUnclosedStringAtEndOfInput(t *testing.T) {
	_, err := Lex(`"abc`)
	require.Error(t, err)

	var unclosed *diag.UnclosedStringError
	require.ErrorAs(t, err, &unclosed)
	require.Equal(t, tokens.Span{Start: 0, End: 4}, unclosed.Span())
}

func TestLexUnclosedStringAtNewline(t *testing.T) {
	// a string literal never spans a line, so the error is at the newline,
	// not at the second quote
	_, err := Lex("\"abc\ndef\"")
	require.Error(t, err)

	var unclosed *diag.UnclosedStringError
	require.ErrorAs(t, err, &unclosed)
	require.Equal(t, tokens.Span{Start: 0, End: 4}, unclosed.Span())
}

func TestLexUnrecognizedCharacter(t *testing.T) {
	_, err := Lex("@")
	require.Error(t, err)

	var unrecognized *diag.UnrecognizedCharacterError
	require.ErrorAs(t, err, &unrecognized)
	require.Equal(t, "@", unrecognized.Character)
	require.Equal(t, tokens.Span{Start: 0, End: 1}, unrecognized.Span())
}

func TestLexErrorAbortsWithoutTokens(t *testing.T) {
	list, err := Lex("let x @")
	require.Error(t, err)
	require.Nil(t, list)
}

func TestLexIdentifierAlikeLexemes(t *testing.T) {
	cases := map[string]tokens.Kind{
		"and":     tokens.And,
		"case":    tokens.Case,
		"discard": tokens.Discard,
		"else":    tokens.Else,
		"end":     tokens.End,
		"fix":     tokens.Fix,
		"if":      tokens.If,
		"is":      tokens.Is,
		"let":     tokens.Let,
		"match":   tokens.Match,
		"mod":     tokens.Modulo,
		"or":      tokens.Or,
		"proof":   tokens.Proof,
		"then":    tokens.Then,
		"use":     tokens.Use,
		"where":   tokens.Where,
	}

	for lexeme, kind := range cases {
		list, err := Lex(lexeme)
		require.NoError(t, err, lexeme)
		requireKinds(t, list, kind, tokens.EOF)
		requireTok(t, list[0], kind, lexeme, 0)
	}
}

func TestLexIdentifierNotKeywordPrefix(t *testing.T) {
	// maximal munch: keyword-prefixed identifiers stay identifiers
	for _, src := range []string{"lets", "iffy", "modulo", "_let", "let3x", "Match"} {
		list, err := Lex(src)
		require.NoError(t, err, src)
		requireKinds(t, list, tokens.Identifier, tokens.EOF)
		requireTok(t, list[0], tokens.Identifier, src, 0)
	}
}

func TestLexIdentifierWithDigits(t *testing.T) {
	list, err := Lex("x1 _y2z")
	require.NoError(t, err)
	requireKinds(t, list, tokens.Identifier, tokens.Identifier, tokens.EOF)
	requireTok(t, list[0], tokens.Identifier, "x1", 0)
	requireTok(t, list[1], tokens.Identifier, "_y2z", 3)
}

func TestLexSpanInvariants(t *testing.T) {
	sources := []string{
		"",
		"let x := 3;",
		"fix f : nat -> nat := f;",
		"if a >= 1 and b <= 2 then () else [1, \"two\"] end",
		"match p . q % r where u is v end",
	}

	for _, src := range sources {
		list, err := Lex(src)
		require.NoError(t, err, src)
		require.NotEmpty(t, list)

		prevEnd := 0
		for _, tok := range list {
			span := tok.Span()
			require.Equal(t, src[span.Start:span.End], tok.Lexeme, "lexeme of %s in %q", tok, src)
			require.GreaterOrEqual(t, span.Start, prevEnd, "span overlap at %s in %q", tok, src)
			prevEnd = span.End
		}

		last := list[len(list)-1]
		requireTok(t, last, tokens.EOF, "", len(src))
	}
}

func TestLexMultilineSource(t *testing.T) {
	list, err := Lex("let x := 1;\nlet y := 2;\n")
	require.NoError(t, err)
	requireKinds(t, list,
		tokens.Let, tokens.Identifier, tokens.ColonEqual, tokens.Natural, tokens.Semicolon,
		tokens.Let, tokens.Identifier, tokens.ColonEqual, tokens.Natural, tokens.Semicolon,
		tokens.EOF)
	requireTok(t, list[5], tokens.Let, "let", 12)
}
