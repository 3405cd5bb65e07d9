// Package tokens defines the token kinds of the Venus language, the
// per-kind category metadata, and the lookup tables derived from them.
package tokens

import "github.com/qexat/venusc/ice"

// Kind identifies a token kind. The set is closed: every kind the lexer can
// emit is enumerated below, grouped by category.
type Kind int

const (
	// Atoms
	Identifier Kind = iota

	// Groupers
	LeftBracket
	LeftParen
	RightBracket
	RightParen

	// Keywords
	And
	Case
	Discard
	Else
	End
	Fix
	If
	Let
	Match
	Or
	Proof
	Then
	Use
	Where

	// Literals
	Natural
	String
	Unit

	// Miscellaneous
	EOF

	// Operators
	Caret
	ColonEqual
	Minus
	Modulo
	Plus
	Slash
	Star

	// Punctuation
	Colon
	Comma
	Percent
	Period
	RightArrow
	Semicolon

	// Relations
	Equal
	Greater
	GreaterEqual
	Is
	Less
	LessEqual

	kindCount
)

// Category is the coarse classification a kind belongs to. Every kind
// belongs to exactly one category.
type Category int

const (
	CategoryAtom Category = iota
	CategoryGrouper
	CategoryKeyword
	CategoryLiteral
	CategoryMisc
	CategoryOperator
	CategoryPunctuation
	CategoryRelation
)

// Role is the grammatical role of a keyword. The parser uses it to pick a
// production without re-inspecting lexemes.
type Role int

const (
	RoleNone Role = iota
	RoleStatementStarter
	RoleStatementConjunctive
	RoleExpressionStarter
	RoleExpressionConjunctive
)

// Associativity of an infix operator.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// Operator precedence is bounded. 0 is reserved exclusively for the
// assignment operator; ordinary operators start at 1.
const (
	MinPrecedence    = 0
	MaxPrecedence    = 7
	AssignPrecedence = 0
)

// Primitive is the primitive type a literal kind is interpreted as.
type Primitive int

const (
	PrimNone Primitive = iota
	PrimNatural
	PrimString
	PrimUnit
)

// attributes holds the category metadata attached to a kind. Fields that do
// not apply to a kind's category stay at their zero value.
type attributes struct {
	category Category
	lexeme   string // fixed lexeme; empty for kinds scanned from source
	role     Role
	assoc    Associativity
	prec     int
	prim     Primitive
	alike    bool // lexeme would scan as a plain identifier
	name     string
}

var kindTable = [kindCount]attributes{
	Identifier: {category: CategoryAtom, name: "IDENTIFIER"},

	LeftBracket:  {category: CategoryGrouper, lexeme: "[", name: "LEFT_BRACKET"},
	LeftParen:    {category: CategoryGrouper, lexeme: "(", name: "LEFT_PAREN"},
	RightBracket: {category: CategoryGrouper, lexeme: "]", name: "RIGHT_BRACKET"},
	RightParen:   {category: CategoryGrouper, lexeme: ")", name: "RIGHT_PAREN"},

	And:     {category: CategoryKeyword, lexeme: "and", role: RoleExpressionConjunctive, alike: true, name: "AND"},
	Case:    {category: CategoryKeyword, lexeme: "case", role: RoleExpressionConjunctive, alike: true, name: "CASE"},
	Discard: {category: CategoryKeyword, lexeme: "discard", role: RoleStatementStarter, alike: true, name: "DISCARD"},
	Else:    {category: CategoryKeyword, lexeme: "else", role: RoleExpressionConjunctive, alike: true, name: "ELSE"},
	End:     {category: CategoryKeyword, lexeme: "end", role: RoleExpressionConjunctive, alike: true, name: "END"},
	Fix:     {category: CategoryKeyword, lexeme: "fix", role: RoleStatementStarter, alike: true, name: "FIX"},
	If:      {category: CategoryKeyword, lexeme: "if", role: RoleExpressionStarter, alike: true, name: "IF"},
	Let:     {category: CategoryKeyword, lexeme: "let", role: RoleStatementStarter, alike: true, name: "LET"},
	Match:   {category: CategoryKeyword, lexeme: "match", role: RoleExpressionStarter, alike: true, name: "MATCH"},
	Or:      {category: CategoryKeyword, lexeme: "or", role: RoleExpressionConjunctive, alike: true, name: "OR"},
	Proof:   {category: CategoryKeyword, lexeme: "proof", role: RoleStatementStarter, alike: true, name: "PROOF"},
	Then:    {category: CategoryKeyword, lexeme: "then", role: RoleExpressionConjunctive, alike: true, name: "THEN"},
	Use:     {category: CategoryKeyword, lexeme: "use", role: RoleStatementStarter, alike: true, name: "USE"},
	Where:   {category: CategoryKeyword, lexeme: "where", role: RoleStatementConjunctive, alike: true, name: "WHERE"},

	Natural: {category: CategoryLiteral, prim: PrimNatural, name: "NATURAL"},
	String:  {category: CategoryLiteral, prim: PrimString, name: "STRING"},
	Unit:    {category: CategoryLiteral, prim: PrimUnit, name: "UNIT"},

	EOF: {category: CategoryMisc, name: "EOF"},

	Caret: {category: CategoryOperator, lexeme: "^", assoc: AssocRight, prec: 5, name: "CARET"},
	// Special-cased operator that the parser does not treat as one; the
	// associativity and precedence are documentary.
	ColonEqual: {category: CategoryOperator, lexeme: ":=", assoc: AssocRight, prec: AssignPrecedence, name: "COLON_EQUAL"},
	// Ordinary operators start at 3 to leave room for lower ones.
	Minus:  {category: CategoryOperator, lexeme: "-", prec: 3, name: "MINUS"},
	Modulo: {category: CategoryOperator, lexeme: "mod", prec: 4, alike: true, name: "MODULO"},
	Plus:   {category: CategoryOperator, lexeme: "+", prec: 3, name: "PLUS"},
	Slash:  {category: CategoryOperator, lexeme: "/", prec: 4, name: "SLASH"},
	Star:   {category: CategoryOperator, lexeme: "*", prec: 4, name: "STAR"},

	Colon:      {category: CategoryPunctuation, lexeme: ":", name: "COLON"},
	Comma:      {category: CategoryPunctuation, lexeme: ",", name: "COMMA"},
	Percent:    {category: CategoryPunctuation, lexeme: "%", name: "PERCENT"},
	Period:     {category: CategoryPunctuation, lexeme: ".", name: "PERIOD"},
	RightArrow: {category: CategoryPunctuation, lexeme: "->", name: "RIGHT_ARROW"},
	Semicolon:  {category: CategoryPunctuation, lexeme: ";", name: "SEMICOLON"},

	Equal:        {category: CategoryRelation, lexeme: "=", name: "EQUAL"},
	Greater:      {category: CategoryRelation, lexeme: ">", name: "GREATER"},
	GreaterEqual: {category: CategoryRelation, lexeme: ">=", name: "GREATER_EQUAL"},
	Is:           {category: CategoryRelation, lexeme: "is", alike: true, name: "IS"},
	Less:         {category: CategoryRelation, lexeme: "<", name: "LESS"},
	LessEqual:    {category: CategoryRelation, lexeme: "<=", name: "LESS_EQUAL"},
}

// Category returns the category the kind belongs to.
func (k Kind) Category() Category { return kindTable[k].category }

// Lexeme returns the fixed lexeme of the kind, or "" for kinds whose lexeme
// is determined by scanning (identifiers, literals, EOF).
func (k Kind) Lexeme() string { return kindTable[k].lexeme }

// Role returns the grammatical role of a keyword kind, RoleNone otherwise.
func (k Kind) Role() Role { return kindTable[k].role }

// Associativity returns the associativity of an operator kind.
func (k Kind) Associativity() Associativity { return kindTable[k].assoc }

// Precedence returns the precedence of an operator kind.
func (k Kind) Precedence() int { return kindTable[k].prec }

// Primitive returns the primitive type of a literal kind, PrimNone otherwise.
func (k Kind) Primitive() Primitive { return kindTable[k].prim }

// IsIdentifierAlike reports whether the kind's lexeme would be mis-scanned
// as a plain identifier without the lookup table: every keyword plus the
// word-shaped operators and relations.
func (k Kind) IsIdentifierAlike() bool { return kindTable[k].alike }

// String returns the fixed lexeme when the kind has one, and the kind's
// name otherwise.
func (k Kind) String() string {
	if lexeme := kindTable[k].lexeme; lexeme != "" {
		return lexeme
	}
	return kindTable[k].name
}

// Name returns the kind's name, e.g. "COLON_EQUAL".
func (k Kind) Name() string { return kindTable[k].name }

// StartsStatement reports whether the kind is a keyword that begins a
// statement.
func (k Kind) StartsStatement() bool { return kindTable[k].role == RoleStatementStarter }

// IsStatementConjunctive reports whether the kind is a keyword that
// continues an enclosing statement.
func (k Kind) IsStatementConjunctive() bool { return kindTable[k].role == RoleStatementConjunctive }

// StartsExpression reports whether the kind is a keyword that begins an
// expression.
func (k Kind) StartsExpression() bool { return kindTable[k].role == RoleExpressionStarter }

// IsExpressionConjunctive reports whether the kind is a keyword that
// continues an enclosing expression.
func (k Kind) IsExpressionConjunctive() bool { return kindTable[k].role == RoleExpressionConjunctive }

// keywordMapping maps each identifier-alike lexeme to its kind. Built once
// at init and read-only afterwards; safe for unsynchronized concurrent
// reads.
var keywordMapping = buildKeywordMapping()

func buildKeywordMapping() map[string]Kind {
	mapping := make(map[string]Kind)
	for k := Kind(0); k < kindCount; k++ {
		if !k.IsIdentifierAlike() {
			continue
		}
		lexeme := k.Lexeme()
		if prev, clash := mapping[lexeme]; clash {
			panic(ice.Errorf("identifier-alike lexeme %q claimed by both %s and %s", lexeme, prev.Name(), k.Name()))
		}
		mapping[lexeme] = k
	}
	return mapping
}

// Lookup resolves a scanned identifier lexeme to its identifier-alike kind.
// The second result is false when the lexeme is a plain identifier.
func Lookup(lexeme string) (Kind, bool) {
	kind, ok := keywordMapping[lexeme]
	return kind, ok
}
