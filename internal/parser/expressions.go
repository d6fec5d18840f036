package parser

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	return &ast.IntegerLiteral{Token: p.curToken, Value: p.curToken.Literal.(int64)}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	return &ast.FloatLiteral{Token: p.curToken, Value: p.curToken.Literal.(float64)}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	runes := []rune(p.curToken.Literal.(string))
	var value rune
	if len(runes) > 0 {
		value = runes[0]
	}
	return &ast.CharLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseAnyLiteral() ast.Expression {
	return &ast.AnyLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Lexeme,
	}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	return expression
}

// parseListLiteral parses [expr, expr, ...] and the empty list [].
func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListLiteral{Token: p.curToken}
	list.Elements = p.parseExpressionList(token.RBRACKET)
	return list
}

// parseMapLiteral parses a map literal: %{ key => value, key2 => value2 }
// and the empty map %{}.
func (p *Parser) parseMapLiteral() ast.Expression {
	mapLit := &ast.MapLiteral{Token: p.curToken}

	p.skipPeekNewlines()
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return mapLit
	}

	for {
		p.nextToken()
		p.skipNewlines()

		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil
		}

		p.skipPeekNewlines()
		if !p.expectPeek(token.FAT_ARROW) {
			return nil
		}
		p.nextToken()
		p.skipNewlines()

		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		mapLit.Pairs = append(mapLit.Pairs, ast.MapPair{Key: key, Value: value})

		p.skipPeekNewlines()
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.skipPeekNewlines()
			// Trailing comma
			if p.peekTokenIs(token.RBRACE) {
				break
			}
			continue
		}
		break
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return mapLit
}

// parseGroupedOrTuple parses (expr) as grouping and (a, b, ...) as a
// tuple literal.
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	tok := p.curToken
	p.nextToken()

	if p.curTokenIs(token.RPAREN) {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP006, tok, "empty parentheses are not an expression",
		))
		return nil
	}

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return first
	}

	tuple := &ast.TupleLiteral{Token: tok, Elements: []ast.Expression{first}}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume comma
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		tuple.Elements = append(tuple.Elements, el)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return tuple
}

// parseCallExpression parses builtin calls. Only plain identifiers are
// callable in example expressions.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	ident, ok := function.(*ast.Identifier)
	if !ok {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP006, p.curToken, "only named functions can be called",
		))
		return nil
	}
	exp := &ast.CallExpression{Token: p.curToken, Function: ident}
	exp.Arguments = p.parseExpressionList(token.RPAREN)
	return exp
}

// parseExpressionList parses a comma-separated expression list, stopping
// at the given end token. The opening delimiter is the current token.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	p.skipPeekNewlines()
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	p.skipNewlines()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	list = append(list, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume comma
		p.skipPeekNewlines()
		// Trailing comma
		if p.peekTokenIs(end) {
			break
		}
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		list = append(list, el)
	}

	p.skipPeekNewlines()
	if !p.expectPeek(end) {
		return nil
	}
	return list
}
