package lexer

import "dart2figma/internal/source"

// TOKEN enumerates the lexical categories of the widget-expression subset.
type TOKEN int

const (
	EOF_TOKEN TOKEN = iota
	ILLEGAL_TOKEN

	IDENTIFIER_TOKEN
	STRING_TOKEN
	NUMBER_TOKEN

	// Keywords
	CONST_TOKEN
	NEW_TOKEN
	TRUE_TOKEN
	FALSE_TOKEN
	NULL_TOKEN
	KEYWORD_TOKEN // reserved words recognized but not part of the subset

	// Punctuation
	OPEN_PAREN    // (
	CLOSE_PAREN   // )
	OPEN_BRACKET  // [
	CLOSE_BRACKET // ]
	COMMA_TOKEN   // ,
	COLON_TOKEN   // :
	DOT_TOKEN     // .
	SEMICOLON_TOKEN
	MINUS_TOKEN // only valid immediately before a number literal
)

func (t TOKEN) String() string {
	switch t {
	case EOF_TOKEN:
		return "end of input"
	case ILLEGAL_TOKEN:
		return "illegal"
	case IDENTIFIER_TOKEN:
		return "identifier"
	case STRING_TOKEN:
		return "string"
	case NUMBER_TOKEN:
		return "number"
	case CONST_TOKEN:
		return "'const'"
	case NEW_TOKEN:
		return "'new'"
	case TRUE_TOKEN:
		return "'true'"
	case FALSE_TOKEN:
		return "'false'"
	case NULL_TOKEN:
		return "'null'"
	case KEYWORD_TOKEN:
		return "keyword"
	case OPEN_PAREN:
		return "'('"
	case CLOSE_PAREN:
		return "')'"
	case OPEN_BRACKET:
		return "'['"
	case CLOSE_BRACKET:
		return "']'"
	case COMMA_TOKEN:
		return "','"
	case COLON_TOKEN:
		return "':'"
	case DOT_TOKEN:
		return "'.'"
	case SEMICOLON_TOKEN:
		return "';'"
	case MINUS_TOKEN:
		return "'-'"
	default:
		return "unknown"
	}
}

// Token is an immutable lexeme produced by the tokenizer. Value holds the
// raw lexeme text; for strings it holds the unescaped contents.
type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

// Location returns the token's span as a source location.
func (t Token) Location() *source.Location {
	return source.NewLocation(&t.Start, &t.End)
}

// keywords maps reserved identifiers to their token kinds. Words outside
// the expression subset still lex as keywords so the parser can report
// them precisely instead of treating them as widget names.
var keywords = map[string]TOKEN{
	"const":  CONST_TOKEN,
	"new":    NEW_TOKEN,
	"true":   TRUE_TOKEN,
	"false":  FALSE_TOKEN,
	"null":   NULL_TOKEN,
	"var":    KEYWORD_TOKEN,
	"final":  KEYWORD_TOKEN,
	"if":     KEYWORD_TOKEN,
	"else":   KEYWORD_TOKEN,
	"for":    KEYWORD_TOKEN,
	"while":  KEYWORD_TOKEN,
	"return": KEYWORD_TOKEN,
	"class":  KEYWORD_TOKEN,
	"import": KEYWORD_TOKEN,
}

// LookupIdent returns the keyword kind for an identifier, or IDENTIFIER_TOKEN.
func LookupIdent(ident string) TOKEN {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER_TOKEN
}
