package ast

import (
	"github.com/funvibe/declgen/internal/token"
)

// Type is an AST-level type annotation, as written in declaration files.
// The symbols loader converts these to typesystem values.
type Type interface {
	Node
	typeNode()
	GetToken() token.Token
}

// NamedType is a type name with optional arguments: Int, List<Int>,
// Map<String, Int>. A lowercase name is a type variable.
type NamedType struct {
	Token token.Token
	Name  *Identifier
	Args  []Type
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// IsVariable reports whether the name denotes a type variable.
func (nt *NamedType) IsVariable() bool {
	return !nt.Name.IsUpper() && len(nt.Args) == 0
}

// RefType is a reference-wrapped type: &T.
type RefType struct {
	Token token.Token // The '&' token
	Inner Type
}

func (rt *RefType) typeNode()             {}
func (rt *RefType) TokenLiteral() string  { return rt.Token.Lexeme }
func (rt *RefType) GetToken() token.Token { return rt.Token }

// FuncType is a function type: (T, U) -> R.
type FuncType struct {
	Token  token.Token // The '(' token
	Params []Type
	Return Type
}

func (ft *FuncType) typeNode()             {}
func (ft *FuncType) TokenLiteral() string  { return ft.Token.Lexeme }
func (ft *FuncType) GetToken() token.Token { return ft.Token }
