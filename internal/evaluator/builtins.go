package evaluator

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/config"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/symbols"
	"github.com/funvibe/declgen/internal/typesystem"
)

func (e *Evaluator) evalCallExpression(n *ast.CallExpression) Object {
	switch n.Function.Value {
	case config.SelectFromFuncName:
		return e.evalSelectFrom(n)
	case config.DefaultFuncName:
		return e.evalDefault(n)
	case config.GetTypeFuncName:
		return e.evalGetType(n)
	}
	return e.newError(n, "unknown function %s", n.Function.Value)
}

// evalSelectFrom looks up a declared product field. Its arguments are
// names, not values: the field identifier would not evaluate on its own,
// so both are taken from the call unevaluated.
func (e *Evaluator) evalSelectFrom(n *ast.CallExpression) Object {
	if len(n.Arguments) != 2 {
		return e.newError(n, "%s takes a type name and a field name", config.SelectFromFuncName)
	}
	typeIdent, ok := n.Arguments[0].(*ast.Identifier)
	if !ok || !typeIdent.IsUpper() {
		return e.newError(n, "first argument of %s must be a type name", config.SelectFromFuncName)
	}
	fieldIdent, ok := n.Arguments[1].(*ast.Identifier)
	if !ok || fieldIdent.IsUpper() {
		return e.newError(n, "second argument of %s must be a field name", config.SelectFromFuncName)
	}

	fieldType, err := e.table.SelectFrom(typeIdent.Value, fieldIdent.Value)
	if err != nil {
		// Reposition at the call site; the table has no token.
		return e.newErrorCode(err.Code, n, "%s", err.Message)
	}
	return &TypeObject{
		Name: fieldType.String(),
		T:    fieldType,
	}
}

// evalDefault produces the zero value of a type. Builtin types have real
// zeros; declared and opaque types get a typed placeholder instance.
func (e *Evaluator) evalDefault(n *ast.CallExpression) Object {
	if len(n.Arguments) != 1 {
		return e.newError(n, "%s takes exactly one type", config.DefaultFuncName)
	}
	arg := e.Eval(n.Arguments[0])
	if isError(arg) {
		return arg
	}
	to, ok := arg.(*TypeObject)
	if !ok {
		return e.newError(n, "%s expects a type, got %s", config.DefaultFuncName, arg.Type())
	}

	switch to.Name {
	case config.IntTypeName:
		return &Integer{Value: 0}
	case config.FloatTypeName:
		return &Float{Value: 0}
	case config.BoolTypeName:
		return FALSE
	case config.CharTypeName:
		return &Char{Value: 0}
	case config.StringTypeName:
		return &Str{Value: ""}
	case config.ListTypeName:
		return NewList(nil)
	case config.MapTypeName:
		return NewMap()
	case config.TupleTypeName:
		return e.newErrorCode(diagnostics.ErrG004, n, "Tuple has no zero value")
	}

	sym, found := e.table.Lookup(to.Name)
	if !found {
		return e.newErrorCode(diagnostics.ErrG004, n, "%s has no zero value", to.Name)
	}
	switch sym.Kind {
	case symbols.ProductSymbol, symbols.SumSymbol, symbols.TypeSymbol:
		return &Instance{Sym: sym}
	}
	return e.newErrorCode(diagnostics.ErrG004, n, "%s has no zero value", to.Name)
}

// evalGetType reflects an example into its type. A bare type passes
// through unchanged.
func (e *Evaluator) evalGetType(n *ast.CallExpression) Object {
	if len(n.Arguments) != 1 {
		return e.newError(n, "%s takes exactly one argument", config.GetTypeFuncName)
	}
	arg := e.Eval(n.Arguments[0])
	if isError(arg) {
		return arg
	}
	if to, ok := arg.(*TypeObject); ok {
		return to
	}
	t := arg.RuntimeType()
	return &TypeObject{Name: t.String(), T: t}
}

func toFloat(o Object) (float64, bool) {
	switch v := o.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	}
	return 0, false
}

// Reflect evaluates an example and returns its type, the entry point the
// generators share. dropRefs selects storage normalization.
func (e *Evaluator) Reflect(node ast.Expression, dropRefs bool) (typesystem.Type, *diagnostics.DiagnosticError) {
	obj := e.Eval(node)
	if err, ok := obj.(*Error); ok {
		return nil, err.Diag
	}
	return typesystem.Normalize(obj.RuntimeType(), dropRefs), nil
}
