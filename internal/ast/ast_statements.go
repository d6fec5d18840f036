package ast

import (
	"github.com/funvibe/declgen/internal/token"
)

// ---- Generator script statements ----

// FieldExample pairs a field name with its example expression.
// product Foo { bar: 1 }
type FieldExample struct {
	Name    *Identifier
	Example Expression
}

// ProductStatement generates a product declaration from field examples.
type ProductStatement struct {
	Token  token.Token // The 'product' token
	Name   *Identifier
	Fields []*FieldExample
}

func (ps *ProductStatement) statementNode()        {}
func (ps *ProductStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *ProductStatement) GetToken() token.Token { return ps.Token }

// VariantExample pairs a constructor name with zero or more component
// examples. sum T { Ctor(1, 2) }
type VariantExample struct {
	Name     *Identifier
	Examples []Expression
}

// SumStatement generates a sum declaration from variant examples.
type SumStatement struct {
	Token    token.Token // The 'sum' token
	Name     *Identifier
	Variants []*VariantExample
}

func (ss *SumStatement) statementNode()        {}
func (ss *SumStatement) TokenLiteral() string  { return ss.Token.Lexeme }
func (ss *SumStatement) GetToken() token.Token { return ss.Token }

// FuncGenKind distinguishes the three function-declaration generators.
// The derivation pipeline is identical; only the emitted surface differs.
type FuncGenKind int

const (
	FuncGenSignature FuncGenKind = iota // attach a signature to a binding
	FuncGenInterface                    // abstract interface declaration
	FuncGenExternal                     // foreign-function registration
)

func (k FuncGenKind) String() string {
	switch k {
	case FuncGenSignature:
		return "signature"
	case FuncGenInterface:
		return "interface"
	case FuncGenExternal:
		return "external"
	}
	return "unknown"
}

// FuncGenStatement generates a function declaration from argument
// examples and one return example.
// signature repeat(1, "blah") -> "blahblah"
type FuncGenStatement struct {
	Token  token.Token // The 'signature'/'interface'/'external' token
	Kind   FuncGenKind
	Name   *Identifier
	Args   []Expression
	Return Expression
}

func (fs *FuncGenStatement) statementNode()        {}
func (fs *FuncGenStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FuncGenStatement) GetToken() token.Token { return fs.Token }

// ---- Declaration file statements ----

// FieldDecl is a declared product field: name: Type.
type FieldDecl struct {
	Name *Identifier
	Type Type
}

// CtorDecl is a declared sum constructor: Name(Type, ...).
type CtorDecl struct {
	Name   *Identifier
	Params []Type
}

// TypeDeclStatement is a parsed `type` declaration. Exactly one of
// Fields (product form) or Constructors (sum form) is populated.
type TypeDeclStatement struct {
	Token        token.Token // The 'type' token
	Name         *Identifier
	TypeParams   []*Identifier
	Fields       []*FieldDecl
	Constructors []*CtorDecl
	IsProduct    bool
}

func (ts *TypeDeclStatement) statementNode()        {}
func (ts *TypeDeclStatement) TokenLiteral() string  { return ts.Token.Lexeme }
func (ts *TypeDeclStatement) GetToken() token.Token { return ts.Token }

// FuncDeclStatement is a parsed sig/interface/external declaration:
// sig repeat: (Int, &String) -> &String
type FuncDeclStatement struct {
	Token  token.Token
	Kind   FuncGenKind
	Name   *Identifier
	Params []Type
	Return Type
}

func (fs *FuncDeclStatement) statementNode()        {}
func (fs *FuncDeclStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FuncDeclStatement) GetToken() token.Token { return fs.Token }

// OpaqueStatement registers a foreign atomic type: opaque File
type OpaqueStatement struct {
	Token token.Token
	Name  *Identifier
}

func (os *OpaqueStatement) statementNode()        {}
func (os *OpaqueStatement) TokenLiteral() string  { return os.Token.Lexeme }
func (os *OpaqueStatement) GetToken() token.Token { return os.Token }
