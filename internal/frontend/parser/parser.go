package parser

import (
	"dart2figma/internal/diagnostics"
	"dart2figma/internal/frontend/ast"
	"dart2figma/internal/frontend/lexer"
	"dart2figma/internal/source"
)

// maxNestingDepth bounds expression recursion so pathological nesting
// degrades into a VALIDATION diagnostic instead of unbounded stack growth.
const maxNestingDepth = 64

// Parser holds temporary state during parsing of a single input.
// It is created per call, never stored persistently.
type Parser struct {
	tokens      []lexer.Token
	current     int
	diagnostics *diagnostics.Bag
	filepath    string
	depth       int
	broken      bool // unrecoverable structural break
}

// Parse consumes a token sequence and produces one Program node, possibly
// partial. Errors are recorded in the bag; Parse itself never fails. A
// structural break the parser cannot resynchronize from yields an empty
// Program alongside the accumulated diagnostics.
func Parse(tokens []lexer.Token, filepath string, bag *diagnostics.Bag) *ast.Program {
	state := &Parser{
		tokens:      tokens,
		current:     0,
		diagnostics: bag,
		filepath:    filepath,
	}

	return state.parseProgram()
}

// ParseSource is the convenience form: tokenize then parse.
func ParseSource(filepath, src string) (*ast.Program, *diagnostics.Bag) {
	tokens, bag := lexer.Tokenize(filepath, src)
	program := Parse(tokens, filepath, bag)
	return program, bag
}

func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{
		FullPath: p.filepath,
		Nodes:    []ast.Expression{},
	}
	if len(p.tokens) > 0 {
		program.Location = *source.NewLocation(&p.tokens[0].Start, &p.tokens[len(p.tokens)-1].End)
	}

	for !p.isAtEnd() {
		// separators between top-level expressions are tolerated
		if p.match(lexer.SEMICOLON_TOKEN) {
			continue
		}

		node := p.parseExpr()
		if node != nil {
			program.Nodes = append(program.Nodes, node)
		} else {
			p.synchronizeTopLevel()
		}

		if p.broken {
			program.Nodes = program.Nodes[:0]
			break
		}
	}

	return program
}

// parseExpr parses a single expression at the current nesting depth.
// Returns nil after recording a diagnostic when no expression can be built.
func (p *Parser) parseExpr() ast.Expression {
	if p.depth >= maxNestingDepth {
		tok := p.peek()
		p.diagnostics.Add(diagnostics.NestingTooDeep(p.filepath, tok.Location(), maxNestingDepth))
		p.skipBalanced()
		return nil
	}

	p.depth++
	defer func() { p.depth-- }()

	// 'const' and 'new' prefix constructor calls
	if p.match(lexer.CONST_TOKEN, lexer.NEW_TOKEN) {
		expr := p.parsePostfix()
		if call, ok := expr.(*ast.ConstructorCall); ok {
			call.Const = true
		}
		return expr
	}

	return p.parsePostfix()
}

// parsePostfix parses a primary followed by any chain of '.' accesses and
// call argument lists. A call on a bare or dotted identifier chain is a
// constructor call; a call on anything else is a method call.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.check(lexer.DOT_TOKEN):
			p.advance()
			property := p.parseIdentifier()
			if property == nil {
				return expr
			}
			expr = &ast.PropertyAccess{
				Target:   expr,
				Property: property,
				Location: *source.NewLocation(&expr.Loc().Start, &property.Location.End),
			}

		case p.check(lexer.OPEN_PAREN):
			start := expr.Loc().Start
			openTok := p.advance()
			args := p.parseArguments(openTok)
			end := p.previous().End
			loc := *source.NewLocation(&start, &end)

			if callee, ok := dottedName(expr); ok {
				expr = &ast.ConstructorCall{
					Callee:   callee,
					Args:     args,
					Location: loc,
				}
			} else if access, ok := expr.(*ast.PropertyAccess); ok {
				expr = &ast.MethodCall{
					Target:   access.Target,
					Method:   access.Property,
					Args:     args,
					Location: loc,
				}
			} else {
				tok := p.previous()
				p.diagnostics.Add(diagnostics.UnexpectedToken(p.filepath, tok.Location(), "'('", "a callable expression"))
				return expr
			}

		default:
			return expr
		}
	}
}

// parseArguments parses a comma-separated argument list up to the closing
// parenthesis. Named and positional arguments are classified, never
// reordered. A malformed argument is dropped with a diagnostic; the rest
// of the list survives.
func (p *Parser) parseArguments(openTok lexer.Token) []ast.Argument {
	args := []ast.Argument{}

	for !p.check(lexer.CLOSE_PAREN) {
		if p.isAtEnd() {
			p.diagnostics.Add(diagnostics.MismatchedDelimiter(p.filepath, openTok.Location(), "("))
			p.broken = true
			return args
		}

		arg := p.parseArgument()
		if arg != nil {
			args = append(args, arg)
		} else {
			p.synchronizeArgument()
		}
		if p.broken {
			return args
		}

		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
		// trailing comma: loop condition sees the ')'
	}

	if !p.check(lexer.CLOSE_PAREN) {
		if p.isAtEnd() {
			p.diagnostics.Add(diagnostics.MismatchedDelimiter(p.filepath, openTok.Location(), "("))
			p.broken = true
			return args
		}
		tok := p.peek()
		p.diagnostics.Add(diagnostics.ExpectedToken(p.filepath, tok.Location(), "')'"))
		p.synchronizeArgument()
	}
	p.match(lexer.CLOSE_PAREN)

	return args
}

func (p *Parser) parseArgument() ast.Argument {
	// name ':' value; one token of lookahead decides named vs positional
	if p.check(lexer.IDENTIFIER_TOKEN) && p.checkNext(lexer.COLON_TOKEN) {
		nameTok := p.advance()
		name := &ast.Identifier{
			Name:     nameTok.Value,
			Location: *source.NewLocation(&nameTok.Start, &nameTok.End),
		}
		colonTok := p.advance()

		if p.check(lexer.CLOSE_PAREN) || p.check(lexer.COMMA_TOKEN) {
			p.diagnostics.Add(diagnostics.MissingArgumentValue(p.filepath, colonTok.Location(), name.Name))
			return nil
		}

		value := p.parseExpr()
		if value == nil {
			return nil
		}

		return &ast.NamedArg{
			Name:     name,
			Value:    value,
			Location: *source.NewLocation(&name.Location.Start, &value.Loc().End),
		}
	}

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return &ast.PositionalArg{
		Value:    value,
		Location: *value.Loc(),
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()

	switch tok.Kind {
	case lexer.NUMBER_TOKEN:
		p.advance()
		return numberLit(tok, "")

	case lexer.MINUS_TOKEN:
		p.advance()
		if !p.check(lexer.NUMBER_TOKEN) {
			p.diagnostics.Add(diagnostics.UnexpectedToken(p.filepath, tok.Location(), "'-'", "a number literal"))
			return nil
		}
		numTok := p.advance()
		lit := numberLit(numTok, "-")
		lit.Location.Start = tok.Start
		return lit

	case lexer.STRING_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.STRING,
			Value:    tok.Value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.TRUE_TOKEN, lexer.FALSE_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.BOOL,
			Value:    tok.Value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.NULL_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.NULL,
			Value:    tok.Value,
			Location: *source.NewLocation(&tok.Start, &tok.End),
		}

	case lexer.IDENTIFIER_TOKEN:
		return p.parseIdentifier()

	case lexer.OPEN_BRACKET:
		return p.parseArrayLiteral()

	case lexer.OPEN_PAREN:
		openTok := p.advance()
		expr := p.parseExpr()
		if !p.match(lexer.CLOSE_PAREN) {
			if p.isAtEnd() {
				p.diagnostics.Add(diagnostics.MismatchedDelimiter(p.filepath, openTok.Location(), "("))
				p.broken = true
			} else {
				p.diagnostics.Add(diagnostics.ExpectedToken(p.filepath, p.peek().Location(), "')'"))
			}
		}
		return expr

	default:
		p.diagnostics.Add(diagnostics.UnexpectedToken(p.filepath, tok.Location(), tok.Kind.String(), ""))
		p.advance()
		return nil
	}
}

func (p *Parser) parseArrayLiteral() *ast.ArrayLiteral {
	openTok := p.advance() // '['

	elems := []ast.Expression{}
	for !p.check(lexer.CLOSE_BRACKET) {
		if p.isAtEnd() {
			p.diagnostics.Add(diagnostics.MismatchedDelimiter(p.filepath, openTok.Location(), "["))
			p.broken = true
			break
		}

		elem := p.parseExpr()
		if elem != nil {
			elems = append(elems, elem)
		} else {
			p.synchronizeArgument()
		}
		if p.broken {
			break
		}

		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}
	p.match(lexer.CLOSE_BRACKET)

	end := p.previous().End
	return &ast.ArrayLiteral{
		Elements: elems,
		Location: *source.NewLocation(&openTok.Start, &end),
	}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	if !p.check(lexer.IDENTIFIER_TOKEN) {
		tok := p.peek()
		p.diagnostics.Add(diagnostics.ExpectedToken(p.filepath, tok.Location(), "identifier"))
		return nil
	}

	tok := p.advance()
	return &ast.Identifier{
		Name:     tok.Value,
		Location: *source.NewLocation(&tok.Start, &tok.End),
	}
}

// dottedName flattens an identifier or identifier-only property chain into
// its dotted spelling. Chains rooted in calls or literals report false.
func dottedName(expr ast.Expression) (string, bool) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name, true
	case *ast.PropertyAccess:
		prefix, ok := dottedName(e.Target)
		if !ok {
			return "", false
		}
		return prefix + "." + e.Property.Name, true
	default:
		return "", false
	}
}

func numberLit(tok lexer.Token, sign string) *ast.BasicLit {
	kind := ast.INT
	for _, ch := range tok.Value {
		if ch == '.' || ch == 'e' || ch == 'E' {
			kind = ast.FLOAT
			break
		}
	}
	return &ast.BasicLit{
		Kind:     kind,
		Value:    sign + tok.Value,
		Location: *source.NewLocation(&tok.Start, &tok.End),
	}
}

// synchronizeArgument skips tokens until the next comma at the current
// nesting depth, the innermost closing delimiter, or end of input. The
// comma and closing delimiter are left for the caller.
func (p *Parser) synchronizeArgument() {
	nesting := 0
	for !p.isAtEnd() {
		switch p.peek().Kind {
		case lexer.OPEN_PAREN, lexer.OPEN_BRACKET:
			nesting++
		case lexer.CLOSE_PAREN, lexer.CLOSE_BRACKET:
			if nesting == 0 {
				return
			}
			nesting--
		case lexer.COMMA_TOKEN:
			if nesting == 0 {
				return
			}
		}
		p.advance()
	}
}

// synchronizeTopLevel skips to the next plausible top-level expression start.
func (p *Parser) synchronizeTopLevel() {
	for !p.isAtEnd() {
		switch p.peek().Kind {
		case lexer.SEMICOLON_TOKEN:
			p.advance()
			return
		case lexer.IDENTIFIER_TOKEN, lexer.CONST_TOKEN, lexer.NEW_TOKEN:
			return
		}
		p.advance()
	}
}

// skipBalanced consumes the over-deep subtree in one piece when the
// nesting bound is hit: everything up to the next separator or closing
// delimiter at the current level.
func (p *Parser) skipBalanced() {
	nesting := 0
	for !p.isAtEnd() {
		switch p.peek().Kind {
		case lexer.OPEN_PAREN, lexer.OPEN_BRACKET:
			nesting++
		case lexer.CLOSE_PAREN, lexer.CLOSE_BRACKET:
			if nesting == 0 {
				return
			}
			nesting--
		case lexer.COMMA_TOKEN, lexer.SEMICOLON_TOKEN:
			if nesting == 0 {
				return
			}
		}
		p.advance()
	}
}

// Helper methods

func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Kind == lexer.EOF_TOKEN
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkNext(kind lexer.TOKEN) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Kind == kind
}

func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}
