package parser

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/token"
)

// parseProductStatement parses:
//
//	product Name {
//	  field: example
//	  ...
//	}
func (p *Parser) parseProductStatement() ast.Statement {
	stmt := &ast.ProductStatement{Token: p.curToken}

	if !p.expectDeclName(&stmt.Name) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for {
		p.skipPeekNewlines()
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			return stmt
		}
		if p.peekTokenIs(token.EOF) {
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP004, p.curToken, "unterminated product body",
			))
			return nil
		}

		if !p.expectPeek(token.IDENT_LOWER) {
			return nil
		}
		field := &ast.FieldExample{
			Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
		}

		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Example = p.parseExpression(LOWEST)
		if field.Example == nil {
			return nil
		}
		stmt.Fields = append(stmt.Fields, field)
	}
}

// parseSumStatement parses:
//
//	sum Name {
//	  Ctor(example, ...)
//	  Bare
//	}
func (p *Parser) parseSumStatement() ast.Statement {
	stmt := &ast.SumStatement{Token: p.curToken}

	if !p.expectDeclName(&stmt.Name) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for {
		p.skipPeekNewlines()
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			return stmt
		}
		if p.peekTokenIs(token.EOF) {
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP004, p.curToken, "unterminated sum body",
			))
			return nil
		}

		if !p.expectPeek(token.IDENT_UPPER) {
			return nil
		}
		variant := &ast.VariantExample{
			Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
		}

		// Component examples are optional: a bare name is a nullary variant.
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			variant.Examples = p.parseExpressionList(token.RPAREN)
			if variant.Examples == nil {
				return nil
			}
		}
		stmt.Variants = append(stmt.Variants, variant)
	}
}

// parseFuncStatement parses both the script form and the declaration form
// of the three function kinds, disambiguated by the token after the name:
//
//	signature repeat(1, "blah") -> "blahblah"   (script: examples)
//	sig repeat: (Int, &String) -> &String        (declaration: types)
func (p *Parser) parseFuncStatement(kind ast.FuncGenKind) ast.Statement {
	tok := p.curToken

	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	if p.peekTokenIs(token.COLON) {
		return p.parseFuncDeclTail(tok, kind, name)
	}

	stmt := &ast.FuncGenStatement{Token: tok, Kind: kind, Name: name}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Args = p.parseExpressionList(token.RPAREN)
	if stmt.Args == nil {
		return nil
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	stmt.Return = p.parseExpression(LOWEST)
	if stmt.Return == nil {
		return nil
	}

	return stmt
}

// expectDeclName consumes an uppercase identifier as a declaration name.
func (p *Parser) expectDeclName(dst **ast.Identifier) bool {
	if p.peekTokenIs(token.IDENT_LOWER) {
		p.nextToken()
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP005,
			p.curToken,
			"declaration name must start with an uppercase letter",
		))
		return false
	}
	if !p.expectPeek(token.IDENT_UPPER) {
		return false
	}
	*dst = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
	return true
}
