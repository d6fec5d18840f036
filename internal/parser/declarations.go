package parser

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/token"
)

// parseTypeDeclStatement parses declaration-file type statements:
//
//	type Player = { name: String, ... }          (product form)
//	type Shape<a> = Circle(Float) | Tagged(a)    (sum form)
func (p *Parser) parseTypeDeclStatement() ast.Statement {
	stmt := &ast.TypeDeclStatement{Token: p.curToken}

	if !p.expectDeclName(&stmt.Name) {
		return nil
	}

	// Type parameters: <a, b>
	if p.peekTokenIs(token.LT) {
		p.nextToken() // consume <
		for {
			if !p.expectPeek(token.IDENT_LOWER) {
				return nil
			}
			stmt.TypeParams = append(stmt.TypeParams, &ast.Identifier{
				Token: p.curToken, Value: p.curToken.Literal.(string),
			})
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
		if !p.expectPeek(token.GT) {
			return nil
		}
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.skipPeekNewlines()

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		stmt.IsProduct = true
		return p.parseProductDeclBody(stmt)
	}
	return p.parseSumDeclBody(stmt)
}

// parseProductDeclBody parses { field: Type ... } with newline- or
// comma-separated fields.
func (p *Parser) parseProductDeclBody(stmt *ast.TypeDeclStatement) ast.Statement {
	for {
		p.skipPeekNewlines()
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			return stmt
		}
		if p.peekTokenIs(token.EOF) {
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP004, p.curToken, "unterminated type body",
			))
			return nil
		}

		if !p.expectPeek(token.IDENT_LOWER) {
			return nil
		}
		field := &ast.FieldDecl{
			Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Type = p.parseType()
		if field.Type == nil {
			return nil
		}
		stmt.Fields = append(stmt.Fields, field)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

// parseSumDeclBody parses Ctor(Type, ...) | Ctor | ... allowing newlines
// around the pipes.
func (p *Parser) parseSumDeclBody(stmt *ast.TypeDeclStatement) ast.Statement {
	for {
		p.skipPeekNewlines()
		if !p.expectPeek(token.IDENT_UPPER) {
			return nil
		}
		ctor := &ast.CtorDecl{
			Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
		}

		if p.peekTokenIs(token.LPAREN) {
			p.nextToken() // consume (
			if p.peekTokenIs(token.RPAREN) {
				p.nextToken()
			} else {
				for {
					p.nextToken()
					t := p.parseType()
					if t == nil {
						return nil
					}
					ctor.Params = append(ctor.Params, t)
					if p.peekTokenIs(token.COMMA) {
						p.nextToken()
						continue
					}
					break
				}
				if !p.expectPeek(token.RPAREN) {
					return nil
				}
			}
		}
		stmt.Constructors = append(stmt.Constructors, ctor)

		p.skipPeekNewlines()
		if p.peekTokenIs(token.PIPE) {
			p.nextToken() // consume |
			continue
		}
		return stmt
	}
}

// parseFuncDeclTail parses the declaration form after `kind name`:
//
//	sig repeat: (Int, &String) -> &String
func (p *Parser) parseFuncDeclTail(tok token.Token, kind ast.FuncGenKind, name *ast.Identifier) ast.Statement {
	stmt := &ast.FuncDeclStatement{Token: tok, Kind: kind, Name: name}

	p.nextToken() // consume :
	p.nextToken() // move to the type

	t := p.parseType()
	if t == nil {
		return nil
	}
	ft, ok := t.(*ast.FuncType)
	if !ok {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP004, tok,
			"%s declaration requires a function type", kind,
		))
		return nil
	}
	stmt.Params = ft.Params
	stmt.Return = ft.Return
	return stmt
}

// parseOpaqueStatement parses: opaque File
func (p *Parser) parseOpaqueStatement() ast.Statement {
	stmt := &ast.OpaqueStatement{Token: p.curToken}
	if !p.expectDeclName(&stmt.Name) {
		return nil
	}
	return stmt
}

// parseType parses a type annotation. The current token is the first
// token of the type.
func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.AMP:
		tok := p.curToken
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		return &ast.RefType{Token: tok, Inner: inner}

	case token.LPAREN:
		return p.parseFuncType()

	case token.IDENT_UPPER, token.IDENT_LOWER:
		nt := &ast.NamedType{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
		}
		if p.peekTokenIs(token.LT) {
			p.nextToken() // consume <
			for {
				p.nextToken()
				arg := p.parseType()
				if arg == nil {
					return nil
				}
				nt.Args = append(nt.Args, arg)
				if p.peekTokenIs(token.COMMA) {
					p.nextToken()
					continue
				}
				break
			}
			if !p.expectPeek(token.GT) {
				return nil
			}
		}
		return nt

	default:
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP006, p.curToken,
			"unexpected %s in type", p.curToken.Type,
		))
		return nil
	}
}

// parseFuncType parses (T, U) -> R. The current token is '('.
func (p *Parser) parseFuncType() ast.Type {
	ft := &ast.FuncType{Token: p.curToken}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
	} else {
		for {
			p.nextToken()
			t := p.parseType()
			if t == nil {
				return nil
			}
			ft.Params = append(ft.Params, t)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	ft.Return = p.parseType()
	if ft.Return == nil {
		return nil
	}
	return ft
}
