package evaluator

import (
	"github.com/funvibe/declgen/internal/symbols"
	"github.com/funvibe/declgen/internal/typesystem"
)

// TypeObject is a type used as a value: the result of evaluating an
// uppercase identifier or a getType call. Reflection returns the carried
// type itself, so getType(Int) produces Int, not some type-of-types.
type TypeObject struct {
	Name string
	T    typesystem.Type
}

func (t *TypeObject) Type() ObjectType             { return TYPE_OBJ }
func (t *TypeObject) Inspect() string              { return t.Name }
func (t *TypeObject) RuntimeType() typesystem.Type { return t.T }
func (t *TypeObject) Hash() uint32                 { return hashString(t.T.String()) }

// AnyMarker is the `any` keyword: a placeholder value whose type is the
// shared marker variable the resolver collapses to one symbol.
type AnyMarker struct{}

func (a *AnyMarker) Type() ObjectType             { return ANY_OBJ }
func (a *AnyMarker) Inspect() string              { return "any" }
func (a *AnyMarker) RuntimeType() typesystem.Type { return typesystem.Any }
func (a *AnyMarker) Hash() uint32                 { return hashString("any") }

// Instance is a placeholder value of a declared or opaque type, produced
// by default(T). It carries no field data; only its type matters.
type Instance struct {
	Sym symbols.Symbol
}

func (i *Instance) Type() ObjectType             { return INSTANCE_OBJ }
func (i *Instance) Inspect() string              { return "<" + i.Sym.Name + ">" }
func (i *Instance) RuntimeType() typesystem.Type { return i.Sym.HeadType() }
func (i *Instance) Hash() uint32                 { return hashString(i.Sym.Name) }

func objectsEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.Value == bv.Value
	case *Float:
		bv, ok := b.(*Float)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Char:
		bv, ok := b.(*Char)
		return ok && av.Value == bv.Value
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Value == bv.Value
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !objectsEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *List:
		bv, ok := b.(*List)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !objectsEqual(av.Get(i), bv.Get(i)) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		itr := av.m.Iterator()
		for !itr.Done() {
			k, v := itr.Next()
			other, found := bv.Get(k.(Object))
			if !found || !objectsEqual(v.(Object), other) {
				return false
			}
		}
		return true
	case *TypeObject:
		bv, ok := b.(*TypeObject)
		return ok && typesystem.Equal(av.T, bv.T)
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av.Sym.Name == bv.Sym.Name
	case *AnyMarker:
		_, ok := b.(*AnyMarker)
		return ok
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	}
	return false
}
