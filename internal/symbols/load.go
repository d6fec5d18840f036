package symbols

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/typesystem"
)

// LoadProgram registers every declaration of a parsed declaration file.
// Loading continues past duplicates so one bad file reports all of its
// collisions at once.
func (s *SymbolTable) LoadProgram(program *ast.Program) []*diagnostics.DiagnosticError {
	var errs []*diagnostics.DiagnosticError

	for _, stmt := range program.Statements {
		var sym Symbol
		switch st := stmt.(type) {
		case *ast.TypeDeclStatement:
			sym = typeDeclSymbol(st)
		case *ast.FuncDeclStatement:
			sym = funcDeclSymbol(st)
		case *ast.OpaqueStatement:
			sym = Symbol{
				Name:     st.Name.Value,
				Kind:     TypeSymbol,
				IsOpaque: true,
			}
		default:
			errs = append(errs, diagnostics.NewError(
				diagnostics.ErrP004, stmt.GetToken(),
				"%s statement is not allowed in a declaration file", stmt.TokenLiteral(),
			).WithFile(program.File))
			continue
		}

		sym.DefinitionFile = program.File
		sym.DefinitionLine = stmt.GetToken().Line
		if err := s.Define(sym); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func typeDeclSymbol(st *ast.TypeDeclStatement) Symbol {
	sym := Symbol{
		Name:       st.Name.Value,
		TypeParams: identNames(st.TypeParams),
	}
	if st.IsProduct {
		sym.Kind = ProductSymbol
		for _, f := range st.Fields {
			sym.Fields = append(sym.Fields, Field{
				Name: f.Name.Value,
				Type: ConvertType(f.Type),
			})
		}
		return sym
	}
	sym.Kind = SumSymbol
	for _, c := range st.Constructors {
		sym.Ctors = append(sym.Ctors, Ctor{
			Name:   c.Name.Value,
			Params: convertTypes(c.Params),
		})
	}
	return sym
}

func funcDeclSymbol(st *ast.FuncDeclStatement) Symbol {
	return Symbol{
		Name:     st.Name.Value,
		Kind:     FunctionSymbol,
		FuncKind: funcKindOf(st.Kind),
		Type: typesystem.TFunc{
			Params: convertTypes(st.Params),
			Return: ConvertType(st.Return),
		},
	}
}

func funcKindOf(k ast.FuncGenKind) FuncKind {
	switch k {
	case ast.FuncGenInterface:
		return FuncInterface
	case ast.FuncGenExternal:
		return FuncExternal
	}
	return FuncSignature
}

// ConvertType lowers an AST type annotation to a typesystem value.
func ConvertType(t ast.Type) typesystem.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		if tt.IsVariable() {
			return typesystem.TVar{Name: tt.Name.Value}
		}
		if len(tt.Args) == 0 {
			return typesystem.TCon{Name: tt.Name.Value}
		}
		return typesystem.TApp{
			Constructor: typesystem.TCon{Name: tt.Name.Value},
			Args:        convertTypes(tt.Args),
		}
	case *ast.RefType:
		return typesystem.TRef{Inner: ConvertType(tt.Inner)}
	case *ast.FuncType:
		return typesystem.TFunc{
			Params: convertTypes(tt.Params),
			Return: ConvertType(tt.Return),
		}
	}
	return typesystem.Pending
}

func convertTypes(ts []ast.Type) []typesystem.Type {
	if len(ts) == 0 {
		return nil
	}
	out := make([]typesystem.Type, len(ts))
	for i, t := range ts {
		out[i] = ConvertType(t)
	}
	return out
}

func identNames(ids []*ast.Identifier) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Value
	}
	return out
}
