package typesystem

import (
	"fmt"
	"strings"

	"github.com/funvibe/declgen/internal/config"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []TVar
}

// TVar represents a type variable (e.g. 'a', 'b').
//
// Before the resolver runs, variables produced by reflection carry the
// reserved pending name; Pending reports that state.
type TVar struct {
	Name string
}

func (t TVar) String() string { return t.Name }

// Pending reports whether this variable is an unresolved element
// position of an empty container.
func (t TVar) Pending() bool { return t.Name == config.PendingVarName }

func (t TVar) Apply(s Subst) Type {
	if replacement, ok := s[t.Name]; ok {
		// Direct self-reference keeps the variable as-is
		if tv, ok := replacement.(TVar); ok && tv.Name == t.Name {
			return t
		}
		return replacement
	}
	return t
}

func (t TVar) FreeTypeVariables() []TVar {
	return []TVar{t}
}

// TCon represents an atomic type name (e.g. Int, Bool, File).
type TCon struct {
	Name string
}

func (t TCon) String() string { return t.Name }

func (t TCon) Apply(s Subst) Type { return t }

func (t TCon) FreeTypeVariables() []TVar { return nil }

// TApp represents a parametrized type constructor applied to argument
// types (e.g. List<Int>, Map<String, Int>). The argument count is the
// constructor's arity.
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	if len(t.Args) == 0 {
		return t.Constructor.String()
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s<%s>", t.Constructor.String(), strings.Join(args, ", "))
}

func (t TApp) Apply(s Subst) Type {
	newArgs := make([]Type, len(t.Args))
	for i, arg := range t.Args {
		newArgs[i] = arg.Apply(s)
	}
	return TApp{Constructor: t.Constructor.Apply(s), Args: newArgs}
}

func (t TApp) FreeTypeVariables() []TVar {
	vars := t.Constructor.FreeTypeVariables()
	for _, arg := range t.Args {
		vars = append(vars, arg.FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// TRef is the reference/borrow wrapper around another type. Stored field
// types never keep the wrapper; function parameter and return types do.
type TRef struct {
	Inner Type
}

func (t TRef) String() string { return "&" + t.Inner.String() }

func (t TRef) Apply(s Subst) Type {
	return TRef{Inner: t.Inner.Apply(s)}
}

func (t TRef) FreeTypeVariables() []TVar {
	return t.Inner.FreeTypeVariables()
}

// TFunc represents a function type (e.g. (Int, &String) -> &String).
type TFunc struct {
	Params []Type
	Return Type
}

func (t TFunc) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), t.Return.String())
}

func (t TFunc) Apply(s Subst) Type {
	newParams := make([]Type, len(t.Params))
	for i, p := range t.Params {
		newParams[i] = p.Apply(s)
	}
	return TFunc{Params: newParams, Return: t.Return.Apply(s)}
}

func (t TFunc) FreeTypeVariables() []TVar {
	var vars []TVar
	for _, p := range t.Params {
		vars = append(vars, p.FreeTypeVariables()...)
	}
	vars = append(vars, t.Return.FreeTypeVariables()...)
	return uniqueTVars(vars)
}

// Subst is a mapping from type-variable names to types.
type Subst map[string]Type

// Builtin atomic types.
var (
	Int    = TCon{Name: config.IntTypeName}
	Float  = TCon{Name: config.FloatTypeName}
	Bool   = TCon{Name: config.BoolTypeName}
	Char   = TCon{Name: config.CharTypeName}
	String = TCon{Name: config.StringTypeName}
)

// Pending is the unresolved variable filling the element positions of
// empty containers until the resolver names it by position.
var Pending = TVar{Name: config.PendingVarName}

// Any is the variable produced by the explicit `any` marker. However
// many times it occurs in one declaration, every occurrence resolves to
// the same symbol.
var Any = TVar{Name: config.AnyVarName}

// ListOf builds List<elem>.
func ListOf(elem Type) TApp {
	return TApp{Constructor: TCon{Name: config.ListTypeName}, Args: []Type{elem}}
}

// MapOf builds Map<key, value>.
func MapOf(key, value Type) TApp {
	return TApp{Constructor: TCon{Name: config.MapTypeName}, Args: []Type{key, value}}
}

// TupleOf builds Tuple<...elems>.
func TupleOf(elems ...Type) TApp {
	return TApp{Constructor: TCon{Name: config.TupleTypeName}, Args: elems}
}

// Equal compares two types structurally.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case TVar:
		bt, ok := b.(TVar)
		return ok && at.Name == bt.Name
	case TCon:
		bt, ok := b.(TCon)
		return ok && at.Name == bt.Name
	case TRef:
		bt, ok := b.(TRef)
		return ok && Equal(at.Inner, bt.Inner)
	case TApp:
		bt, ok := b.(TApp)
		if !ok || len(at.Args) != len(bt.Args) || !Equal(at.Constructor, bt.Constructor) {
			return false
		}
		for i := range at.Args {
			if !Equal(at.Args[i], bt.Args[i]) {
				return false
			}
		}
		return true
	case TFunc:
		bt, ok := b.(TFunc)
		if !ok || len(at.Params) != len(bt.Params) || !Equal(at.Return, bt.Return) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func uniqueTVars(vars []TVar) []TVar {
	var unique []TVar
	seen := map[string]bool{}
	for _, v := range vars {
		if !seen[v.Name] {
			seen[v.Name] = true
			unique = append(unique, v)
		}
	}
	return unique
}
