// Package generator derives type and function declarations from example
// values: reflect each example, normalize, resolve pending variables,
// assemble, register.
package generator

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/evaluator"
	"github.com/funvibe/declgen/internal/symbols"
	"github.com/funvibe/declgen/internal/typesystem"
)

type Generator struct {
	eval  *evaluator.Evaluator
	table *symbols.SymbolTable
}

func New(table *symbols.SymbolTable) *Generator {
	return &Generator{
		eval:  evaluator.New(table),
		table: table,
	}
}

// Generate runs every generator statement of a parsed script in order.
// Declarations produced by earlier statements are visible to later ones.
// A failed statement contributes nothing to the table; generation
// continues so one run reports every broken statement.
func (g *Generator) Generate(program *ast.Program) ([]symbols.Symbol, []*diagnostics.DiagnosticError) {
	var generated []symbols.Symbol
	var errs []*diagnostics.DiagnosticError

	for _, stmt := range program.Statements {
		var sym symbols.Symbol
		var err *diagnostics.DiagnosticError

		switch st := stmt.(type) {
		case *ast.ProductStatement:
			sym, err = g.Product(st)
		case *ast.SumStatement:
			sym, err = g.Sum(st)
		case *ast.FuncGenStatement:
			sym, err = g.Function(st)
		default:
			err = diagnostics.NewError(
				diagnostics.ErrP004, stmt.GetToken(),
				"%s statement is not allowed in a generator script", stmt.TokenLiteral(),
			)
		}

		if err != nil {
			errs = append(errs, err.WithFile(program.File))
			continue
		}

		sym.DefinitionFile = program.File
		sym.DefinitionLine = stmt.GetToken().Line
		if derr := g.table.Define(sym); derr != nil {
			errs = append(errs, derr)
			continue
		}
		generated = append(generated, sym)
	}

	return generated, errs
}

// Product derives a product declaration from field examples. Field order
// is preserved from the input; stored field types never keep reference
// wrappers.
func (g *Generator) Product(stmt *ast.ProductStatement) (symbols.Symbol, *diagnostics.DiagnosticError) {
	types := make([]typesystem.Type, len(stmt.Fields))
	for i, f := range stmt.Fields {
		t, err := g.eval.Reflect(f.Example, true)
		if err != nil {
			return symbols.Symbol{}, err
		}
		types[i] = t
	}

	resolved, vars := Resolve(types)

	fields := make([]symbols.Field, len(stmt.Fields))
	for i, f := range stmt.Fields {
		fields[i] = symbols.Field{Name: f.Name.Value, Type: resolved[i]}
	}

	return symbols.Symbol{
		Name:       stmt.Name.Value,
		Kind:       symbols.ProductSymbol,
		TypeParams: vars,
		Fields:     fields,
	}, nil
}

// Sum derives a sum declaration from constructor examples. Variables are
// resolved across the whole declaration, not per variant.
func (g *Generator) Sum(stmt *ast.SumStatement) (symbols.Symbol, *diagnostics.DiagnosticError) {
	var types []typesystem.Type
	arity := make([]int, len(stmt.Variants))
	for i, v := range stmt.Variants {
		arity[i] = len(v.Examples)
		for _, ex := range v.Examples {
			t, err := g.eval.Reflect(ex, true)
			if err != nil {
				return symbols.Symbol{}, err
			}
			types = append(types, t)
		}
	}

	resolved, vars := Resolve(types)

	ctors := make([]symbols.Ctor, len(stmt.Variants))
	next := 0
	for i, v := range stmt.Variants {
		ctors[i] = symbols.Ctor{
			Name:   v.Name.Value,
			Params: resolved[next : next+arity[i]],
		}
		next += arity[i]
	}

	return symbols.Symbol{
		Name:       stmt.Name.Value,
		Kind:       symbols.SumSymbol,
		TypeParams: vars,
		Ctors:      ctors,
	}, nil
}

// Function derives a function declaration from argument examples and a
// return example. Reference wrappers are kept on both sides: argument
// reference-ness reflects the real calling convention.
func (g *Generator) Function(stmt *ast.FuncGenStatement) (symbols.Symbol, *diagnostics.DiagnosticError) {
	types := make([]typesystem.Type, 0, len(stmt.Args)+1)
	for _, a := range stmt.Args {
		t, err := g.eval.Reflect(a, false)
		if err != nil {
			return symbols.Symbol{}, err
		}
		types = append(types, t)
	}
	ret, err := g.eval.Reflect(stmt.Return, false)
	if err != nil {
		return symbols.Symbol{}, err
	}
	types = append(types, ret)

	resolved, _ := Resolve(types)

	return symbols.Symbol{
		Name:     stmt.Name.Value,
		Kind:     symbols.FunctionSymbol,
		FuncKind: funcKindOf(stmt.Kind),
		Type: typesystem.TFunc{
			Params: resolved[:len(resolved)-1],
			Return: resolved[len(resolved)-1],
		},
	}, nil
}

func funcKindOf(k ast.FuncGenKind) symbols.FuncKind {
	switch k {
	case ast.FuncGenInterface:
		return symbols.FuncInterface
	case ast.FuncGenExternal:
		return symbols.FuncExternal
	}
	return symbols.FuncSignature
}
