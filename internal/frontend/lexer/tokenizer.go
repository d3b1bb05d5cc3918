package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"dart2figma/internal/diagnostics"
	"dart2figma/internal/source"
)

// Tokenizer scans widget-expression source into tokens. Scanning is total:
// it never fails and never stops early. Characters that fit no token become
// ILLEGAL tokens with a diagnostic and scanning resumes at the next rune.
type Tokenizer struct {
	filepath string
	src      string
	pos      int
	line     int
	column   int
	bag      *diagnostics.Bag
	tokens   []Token
}

// New creates a tokenizer for a single source text. Diagnostics go into bag.
func New(filepath, src string, bag *diagnostics.Bag) *Tokenizer {
	return &Tokenizer{
		filepath: filepath,
		src:      src,
		line:     1,
		column:   1,
		bag:      bag,
		tokens:   make([]Token, 0, len(src)/4),
	}
}

// Tokenize scans the whole source and returns the token sequence,
// terminated by an EOF token.
func Tokenize(filepath, src string) ([]Token, *diagnostics.Bag) {
	bag := diagnostics.NewBag(filepath)
	tokens := New(filepath, src, bag).Tokenize()
	return tokens, bag
}

// Tokenize consumes the full source once and returns all tokens.
func (t *Tokenizer) Tokenize() []Token {
	for {
		t.skipTrivia()
		if t.atEnd() {
			break
		}
		t.scanToken()
	}

	end := t.position()
	t.tokens = append(t.tokens, Token{Kind: EOF_TOKEN, Start: end, End: end})
	return t.tokens
}

func (t *Tokenizer) position() source.Position {
	return source.Position{Line: t.line, Column: t.column, Offset: t.pos}
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.src)
}

func (t *Tokenizer) peek() rune {
	if t.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
	return r
}

func (t *Tokenizer) peekAt(offset int) rune {
	pos := t.pos
	for i := 0; i <= offset; i++ {
		if pos >= len(t.src) {
			return 0
		}
		r, w := utf8.DecodeRuneInString(t.src[pos:])
		if i == offset {
			return r
		}
		pos += w
	}
	return 0
}

func (t *Tokenizer) advance() rune {
	r, w := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += w
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	return r
}

// skipTrivia discards whitespace and comments while keeping line/column
// counters accurate across them.
func (t *Tokenizer) skipTrivia() {
	for !t.atEnd() {
		r := t.peek()
		switch {
		case unicode.IsSpace(r):
			t.advance()
		case r == '/' && t.peekAt(1) == '/':
			for !t.atEnd() && t.peek() != '\n' {
				t.advance()
			}
		case r == '/' && t.peekAt(1) == '*':
			t.skipBlockComment()
		default:
			return
		}
	}
}

func (t *Tokenizer) skipBlockComment() {
	start := t.position()
	t.advance() // /
	t.advance() // *

	depth := 1
	for !t.atEnd() {
		if t.peek() == '*' && t.peekAt(1) == '/' {
			t.advance()
			t.advance()
			depth--
			if depth == 0 {
				return
			}
		} else if t.peek() == '/' && t.peekAt(1) == '*' {
			t.advance()
			t.advance()
			depth++
		} else {
			t.advance()
		}
	}

	// comment ran to end of input
	t.bag.Add(diagnostics.UnterminatedComment(t.filepath, source.NewLocation(&start, &start)))
}

func (t *Tokenizer) scanToken() {
	start := t.position()
	r := t.advance()

	switch {
	case isIdentifierStart(r):
		t.scanIdentifier(start)
	case unicode.IsDigit(r):
		t.scanNumber(start)
	case r == '"' || r == '\'':
		t.scanString(start, r)
	default:
		t.scanPunctuation(start, r)
	}
}

func (t *Tokenizer) scanPunctuation(start source.Position, r rune) {
	var kind TOKEN
	switch r {
	case '(':
		kind = OPEN_PAREN
	case ')':
		kind = CLOSE_PAREN
	case '[':
		kind = OPEN_BRACKET
	case ']':
		kind = CLOSE_BRACKET
	case ',':
		kind = COMMA_TOKEN
	case ':':
		kind = COLON_TOKEN
	case '.':
		kind = DOT_TOKEN
	case ';':
		kind = SEMICOLON_TOKEN
	case '-':
		kind = MINUS_TOKEN
	default:
		end := t.position()
		t.bag.Add(diagnostics.UnexpectedCharacter(t.filepath, source.NewLocation(&start, &end), r))
		t.emit(ILLEGAL_TOKEN, string(r), start)
		return
	}

	t.emit(kind, string(r), start)
}

func (t *Tokenizer) scanIdentifier(start source.Position) {
	for !t.atEnd() && isIdentifierPart(t.peek()) {
		t.advance()
	}

	lexeme := t.src[start.Offset:t.pos]
	t.emit(LookupIdent(lexeme), lexeme, start)
}

func (t *Tokenizer) scanNumber(start source.Position) {
	for !t.atEnd() && unicode.IsDigit(t.peek()) {
		t.advance()
	}

	// fraction: only when a digit follows the dot, so `Icon(1).size`
	// style chains still lex the dot as punctuation
	if t.peek() == '.' && unicode.IsDigit(t.peekAt(1)) {
		t.advance()
		for !t.atEnd() && unicode.IsDigit(t.peek()) {
			t.advance()
		}
	}

	if t.peek() == 'e' || t.peek() == 'E' {
		t.advance()
		if t.peek() == '+' || t.peek() == '-' {
			t.advance()
		}
		if !unicode.IsDigit(t.peek()) {
			end := t.position()
			t.bag.Add(diagnostics.InvalidNumberLiteral(t.filepath, source.NewLocation(&start, &end), "exponent has no digits"))
			t.emit(ILLEGAL_TOKEN, t.src[start.Offset:t.pos], start)
			return
		}
		for !t.atEnd() && unicode.IsDigit(t.peek()) {
			t.advance()
		}
	}

	// trailing identifier characters make the whole run malformed (12abc)
	if !t.atEnd() && isIdentifierStart(t.peek()) {
		for !t.atEnd() && isIdentifierPart(t.peek()) {
			t.advance()
		}
		end := t.position()
		lexeme := t.src[start.Offset:t.pos]
		t.bag.Add(diagnostics.InvalidNumberLiteral(t.filepath, source.NewLocation(&start, &end), "number runs into identifier characters"))
		t.emit(ILLEGAL_TOKEN, lexeme, start)
		return
	}

	t.emit(NUMBER_TOKEN, t.src[start.Offset:t.pos], start)
}

func (t *Tokenizer) scanString(start source.Position, quote rune) {
	var value strings.Builder

	for {
		if t.atEnd() || t.peek() == '\n' {
			end := t.position()
			t.bag.Add(diagnostics.UnterminatedString(t.filepath, source.NewLocation(&start, &end)))
			// best-effort recovery token spanning to end of line / input
			t.emit(STRING_TOKEN, value.String(), start)
			return
		}

		r := t.advance()
		if r == quote {
			break
		}

		if r == '\\' {
			if t.atEnd() {
				continue
			}
			escStart := t.position()
			esc := t.advance()
			switch esc {
			case 'n':
				value.WriteRune('\n')
			case 't':
				value.WriteRune('\t')
			case 'r':
				value.WriteRune('\r')
			case '\\', '"', '\'', '$':
				value.WriteRune(esc)
			default:
				escEnd := t.position()
				t.bag.Add(diagnostics.InvalidEscapeSequence(t.filepath, source.NewLocation(&escStart, &escEnd), "\\"+string(esc)))
				value.WriteRune(esc)
			}
			continue
		}

		value.WriteRune(r)
	}

	t.emit(STRING_TOKEN, value.String(), start)
}

func (t *Tokenizer) emit(kind TOKEN, value string, start source.Position) {
	t.tokens = append(t.tokens, Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   t.position(),
	})
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}
