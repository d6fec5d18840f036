package typesystem

// Normalize canonicalizes a reflected type for use inside a generated
// declaration.
//
// When dropRefs is set, one top-level reference wrapper is stripped:
// stored field types never keep the borrow annotation. Function types
// keep their parameter types as-is (argument reference-passing is a
// calling convention, not a storage concern) but have their return type
// normalized recursively, so a function returning a function is handled.
// Every other type is returned unchanged.
func Normalize(t Type, dropRefs bool) Type {
	switch tt := t.(type) {
	case TRef:
		if dropRefs {
			return tt.Inner
		}
		return tt
	case TFunc:
		return TFunc{Params: tt.Params, Return: Normalize(tt.Return, dropRefs)}
	default:
		return t
	}
}
