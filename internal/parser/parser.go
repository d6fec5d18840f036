package parser

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/lexer"
	"github.com/funvibe/declgen/internal/token"
)

// Operator precedences
const (
	LOWEST = iota + 1
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + - ++
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(...)
)

var precedences = map[token.TokenType]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.CONCAT:   SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
}

// MaxRecursionDepth bounds expression nesting; scripts are written by
// hand, anything deeper is a runaway input.
const MaxRecursionDepth = 200

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.DiagnosticError
	depth  int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT_LOWER, p.parseIdentifier)
	p.registerPrefix(token.IDENT_UPPER, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.CHAR, p.parseCharLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.ANY, p.parseAnyLiteral)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.PERCENT_BRACE, p.parseMapLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrTuple)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, t := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.CONCAT, token.EQ, token.NOT_EQ, token.LT, token.GT,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is a convenience constructor for one-shot parsing.
func Parse(input, file string) (*ast.Program, []*diagnostics.DiagnosticError) {
	p := New(lexer.New(input))
	program := p.ParseProgram()
	program.File = file
	errs := p.Errors()
	for _, e := range errs {
		e.WithFile(file)
	}
	return program, errs
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, diagnostics.NewError(
		diagnostics.ErrP002,
		p.peekToken,
		"expected %s, got %s", t, p.peekToken.Type,
	))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// skipNewlines advances past NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipPeekNewlines advances while the next token is a NEWLINE.
func (p *Parser) skipPeekNewlines() {
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipToStatementBoundary recovers from a malformed statement by skipping
// to the next newline at brace depth zero.
func (p *Parser) skipToStatementBoundary() {
	depth := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth > 0 {
				depth--
			}
		case token.NEWLINE:
			if depth == 0 {
				return
			}
		}
		p.nextToken()
	}
}

// ParseProgram parses either a generator script or a declaration file;
// the statement keywords are disjoint, so one grammar covers both.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PRODUCT:
		return p.parseProductStatement()
	case token.SUM:
		return p.parseSumStatement()
	case token.SIGNATURE, token.SIG:
		return p.parseFuncStatement(ast.FuncGenSignature)
	case token.INTERFACE:
		return p.parseFuncStatement(ast.FuncGenInterface)
	case token.EXTERNAL:
		return p.parseFuncStatement(ast.FuncGenExternal)
	case token.TYPE:
		return p.parseTypeDeclStatement()
	case token.OPAQUE:
		return p.parseOpaqueStatement()
	default:
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.curToken,
			"unexpected %s at top level", p.curToken.Type,
		))
		return nil
	}
}

func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	p.errors = append(p.errors, diagnostics.NewError(
		diagnostics.ErrP006,
		p.curToken,
		"unexpected %s in expression", t,
	))
}
