package symbols

import (
	"github.com/funvibe/declgen/internal/typesystem"
)

type SymbolKind int

const (
	TypeSymbol    SymbolKind = iota // builtin atomic or opaque type
	ProductSymbol                   // named fields
	SumSymbol                       // named constructors
	FunctionSymbol
)

// Field is a product member in declaration order.
type Field struct {
	Name string
	Type typesystem.Type
}

// Ctor is a sum constructor with its component types.
type Ctor struct {
	Name   string
	Params []typesystem.Type
}

// Symbol is one entry of the declaration table. Which parts are
// populated depends on Kind.
type Symbol struct {
	Name       string
	Kind       SymbolKind
	TypeParams []string

	Fields []Field // ProductSymbol
	Ctors  []Ctor  // SumSymbol

	FuncKind FuncKind        // FunctionSymbol
	Type     typesystem.TFunc // FunctionSymbol

	IsOpaque  bool
	IsBuiltin bool

	DefinitionFile string
	DefinitionLine int
}

// FuncKind mirrors the three function-declaration flavors. Declared here
// so the table does not depend on the ast package.
type FuncKind int

const (
	FuncSignature FuncKind = iota
	FuncInterface
	FuncExternal
)

func (k FuncKind) String() string {
	switch k {
	case FuncSignature:
		return "sig"
	case FuncInterface:
		return "interface"
	case FuncExternal:
		return "external"
	}
	return "unknown"
}

// HeadType returns the type this symbol declares: a bare constructor for
// monomorphic types, an application over its variables otherwise.
func (s Symbol) HeadType() typesystem.Type {
	head := typesystem.TCon{Name: s.Name}
	if len(s.TypeParams) == 0 {
		return head
	}
	args := make([]typesystem.Type, len(s.TypeParams))
	for i, p := range s.TypeParams {
		args[i] = typesystem.TVar{Name: p}
	}
	return typesystem.TApp{Constructor: head, Args: args}
}

// SymbolTable maps declaration names to their entries. Tables nest: the
// global table encloses the shared prelude of builtin types. names keeps
// definition order so emission is deterministic.
type SymbolTable struct {
	store map[string]Symbol
	names []string
	outer *SymbolTable
}

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{store: make(map[string]Symbol)}
}

// NewSymbolTable creates a global table enclosing the prelude.
func NewSymbolTable() *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = GetPrelude()
	return st
}

// Names returns declaration names in definition order, excluding the
// prelude.
func (s *SymbolTable) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
