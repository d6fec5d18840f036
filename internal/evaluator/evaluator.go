// Package evaluator executes example expressions from generator scripts.
//
// Evaluation is deliberately small: examples are closed expressions over
// literals, declared type names, and three builtins. The interesting
// output is not the value but its RuntimeType, which generation reflects
// into a declaration.
package evaluator

import (
	"github.com/funvibe/declgen/internal/ast"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/symbols"
)

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NIL   = &Nil{}
)

type Evaluator struct {
	table *symbols.SymbolTable
}

func New(table *symbols.SymbolTable) *Evaluator {
	return &Evaluator{table: table}
}

// Table exposes the declaration table the evaluator resolves names in.
func (e *Evaluator) Table() *symbols.SymbolTable {
	return e.table
}

func (e *Evaluator) Eval(node ast.Expression) Object {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: n.Value}
	case *ast.FloatLiteral:
		return &Float{Value: n.Value}
	case *ast.BooleanLiteral:
		return nativeBool(n.Value)
	case *ast.CharLiteral:
		return &Char{Value: n.Value}
	case *ast.StringLiteral:
		return &Str{Value: n.Value}
	case *ast.AnyLiteral:
		return &AnyMarker{}
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.ListLiteral:
		return e.evalListLiteral(n)
	case *ast.MapLiteral:
		return e.evalMapLiteral(n)
	case *ast.TupleLiteral:
		return e.evalTupleLiteral(n)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n)
	case *ast.CallExpression:
		return e.evalCallExpression(n)
	}
	return e.newError(node, "cannot evaluate %T", node)
}

// evalIdentifier resolves a bare name: uppercase names are declared
// types, lowercase names are declared functions reflecting to their
// function type.
func (e *Evaluator) evalIdentifier(n *ast.Identifier) Object {
	if !n.IsUpper() {
		sym, ok := e.table.Lookup(n.Value)
		if !ok || sym.Kind != symbols.FunctionSymbol {
			return e.newError(n, "unknown name %s", n.Value)
		}
		return &TypeObject{Name: sym.Name, T: sym.Type}
	}
	sym, ok := e.table.Lookup(n.Value)
	if !ok {
		return e.newError(n, "unknown type %s", n.Value)
	}
	if sym.Kind == symbols.FunctionSymbol {
		return e.newError(n, "%s is a function declaration, not a type", n.Value)
	}
	return &TypeObject{Name: sym.Name, T: sym.HeadType()}
}

func (e *Evaluator) evalListLiteral(n *ast.ListLiteral) Object {
	elements := make([]Object, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := e.Eval(el)
		if isError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return NewList(elements)
}

func (e *Evaluator) evalMapLiteral(n *ast.MapLiteral) Object {
	m := NewMap()
	for _, pair := range n.Pairs {
		k := e.Eval(pair.Key)
		if isError(k) {
			return k
		}
		v := e.Eval(pair.Value)
		if isError(v) {
			return v
		}
		m = m.Put(k, v)
	}
	return m
}

func (e *Evaluator) evalTupleLiteral(n *ast.TupleLiteral) Object {
	elements := make([]Object, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := e.Eval(el)
		if isError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &Tuple{Elements: elements}
}

func (e *Evaluator) evalPrefixExpression(n *ast.PrefixExpression) Object {
	right := e.Eval(n.Right)
	if isError(right) {
		return right
	}

	switch n.Operator {
	case "-":
		switch v := right.(type) {
		case *Integer:
			return &Integer{Value: -v.Value}
		case *Float:
			return &Float{Value: -v.Value}
		}
		return e.newError(n, "operator - not defined on %s", right.Type())
	case "!":
		if v, ok := right.(*Boolean); ok {
			return nativeBool(!v.Value)
		}
		return e.newError(n, "operator ! not defined on %s", right.Type())
	}
	return e.newError(n, "unknown prefix operator %s", n.Operator)
}

func (e *Evaluator) evalInfixExpression(n *ast.InfixExpression) Object {
	left := e.Eval(n.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if isError(right) {
		return right
	}

	switch n.Operator {
	case "==":
		return nativeBool(objectsEqual(left, right))
	case "!=":
		return nativeBool(!objectsEqual(left, right))
	case "++":
		return e.evalConcat(n, left, right)
	}

	if li, ok := left.(*Integer); ok {
		if ri, ok := right.(*Integer); ok {
			return e.evalIntegerInfix(n, li, ri)
		}
	}
	if lf, ok := toFloat(left); ok {
		if rf, ok := toFloat(right); ok {
			return e.evalFloatInfix(n, lf, rf)
		}
	}
	return e.newError(n, "operator %s not defined on %s and %s", n.Operator, left.Type(), right.Type())
}

func (e *Evaluator) evalIntegerInfix(n *ast.InfixExpression, l, r *Integer) Object {
	switch n.Operator {
	case "+":
		return &Integer{Value: l.Value + r.Value}
	case "-":
		return &Integer{Value: l.Value - r.Value}
	case "*":
		return &Integer{Value: l.Value * r.Value}
	case "/":
		if r.Value == 0 {
			return e.newError(n, "division by zero")
		}
		return &Integer{Value: l.Value / r.Value}
	case "<":
		return nativeBool(l.Value < r.Value)
	case ">":
		return nativeBool(l.Value > r.Value)
	}
	return e.newError(n, "operator %s not defined on INTEGER", n.Operator)
}

func (e *Evaluator) evalFloatInfix(n *ast.InfixExpression, l, r float64) Object {
	switch n.Operator {
	case "+":
		return &Float{Value: l + r}
	case "-":
		return &Float{Value: l - r}
	case "*":
		return &Float{Value: l * r}
	case "/":
		if r == 0 {
			return e.newError(n, "division by zero")
		}
		return &Float{Value: l / r}
	case "<":
		return nativeBool(l < r)
	case ">":
		return nativeBool(l > r)
	}
	return e.newError(n, "operator %s not defined on FLOAT", n.Operator)
}

func (e *Evaluator) evalConcat(n *ast.InfixExpression, left, right Object) Object {
	if ls, ok := left.(*Str); ok {
		if rs, ok := right.(*Str); ok {
			return &Str{Value: ls.Value + rs.Value}
		}
	}
	if ll, ok := left.(*List); ok {
		if rl, ok := right.(*List); ok {
			elements := make([]Object, 0, ll.Len()+rl.Len())
			for i := 0; i < ll.Len(); i++ {
				elements = append(elements, ll.Get(i))
			}
			for i := 0; i < rl.Len(); i++ {
				elements = append(elements, rl.Get(i))
			}
			return NewList(elements)
		}
	}
	return e.newError(n, "operator ++ not defined on %s and %s", left.Type(), right.Type())
}

func nativeBool(v bool) *Boolean {
	if v {
		return TRUE
	}
	return FALSE
}

func isError(obj Object) bool {
	if obj == nil {
		return true
	}
	_, ok := obj.(*Error)
	return ok
}

// newError builds a G001 evaluation error positioned at a node.
func (e *Evaluator) newError(node ast.Expression, format string, args ...interface{}) *Error {
	return &Error{Diag: diagnostics.NewError(diagnostics.ErrG001, node.GetToken(), format, args...)}
}

// newErrorCode builds an error with an explicit diagnostic code, for the
// builtins whose failures have their own codes.
func (e *Evaluator) newErrorCode(code diagnostics.Code, node ast.Expression, format string, args ...interface{}) *Error {
	return &Error{Diag: diagnostics.NewError(code, node.GetToken(), format, args...)}
}
