package evaluator

import (
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/funvibe/declgen/internal/typesystem"
)

// objectHasher adapts the Object hash contract to immutable.Hasher.
type objectHasher struct{}

func (objectHasher) Hash(key interface{}) uint32 {
	return key.(Object).Hash()
}

func (objectHasher) Equal(a, b interface{}) bool {
	return objectsEqual(a.(Object), b.(Object))
}

// List is a homogeneous immutable collection. The element type is taken
// from the first element; an empty list carries a pending element type
// for the resolver to name.
type List struct {
	list *immutable.List
}

func NewList(elements []Object) *List {
	b := immutable.NewListBuilder(immutable.NewList())
	for _, el := range elements {
		b.Append(el)
	}
	return &List{list: b.List()}
}

func (l *List) Type() ObjectType { return LIST_OBJ }

func (l *List) Len() int { return l.list.Len() }

func (l *List) Get(i int) Object {
	return l.list.Get(i).(Object)
}

func (l *List) Inspect() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < l.list.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l.Get(i).Inspect())
	}
	sb.WriteString("]")
	return sb.String()
}

func (l *List) RuntimeType() typesystem.Type {
	if l.list.Len() == 0 {
		return typesystem.ListOf(typesystem.Pending)
	}
	return typesystem.ListOf(elementType(l.Get(0)))
}

func (l *List) Hash() uint32 {
	h := uint32(1)
	for i := 0; i < l.list.Len(); i++ {
		h = 31*h + l.Get(i).Hash()
	}
	return h
}

// Map is an immutable hash map keyed by object hash and equality. Key
// and value types are taken from the first inserted pair.
type Map struct {
	m        *immutable.Map
	firstKey Object
	firstVal Object
}

func NewMap() *Map {
	return &Map{m: immutable.NewMap(objectHasher{})}
}

func (m *Map) Type() ObjectType { return MAP_OBJ }

func (m *Map) Len() int { return m.m.Len() }

func (m *Map) Get(key Object) (Object, bool) {
	v, ok := m.m.Get(key)
	if !ok {
		return nil, false
	}
	return v.(Object), true
}

func (m *Map) Put(key, value Object) *Map {
	next := &Map{m: m.m.Set(key, value), firstKey: m.firstKey, firstVal: m.firstVal}
	if next.firstKey == nil {
		next.firstKey = key
		next.firstVal = value
	}
	return next
}

func (m *Map) Inspect() string {
	var sb strings.Builder
	sb.WriteString("%{")
	itr := m.m.Iterator()
	first := true
	for !itr.Done() {
		k, v := itr.Next()
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(k.(Object).Inspect())
		sb.WriteString(" => ")
		sb.WriteString(v.(Object).Inspect())
	}
	sb.WriteString("}")
	return sb.String()
}

func (m *Map) RuntimeType() typesystem.Type {
	if m.firstKey == nil {
		return typesystem.MapOf(typesystem.Pending, typesystem.Pending)
	}
	return typesystem.MapOf(elementType(m.firstKey), elementType(m.firstVal))
}

func (m *Map) Hash() uint32 {
	// Order-independent: XOR over entries.
	var h uint32
	itr := m.m.Iterator()
	for !itr.Done() {
		k, v := itr.Next()
		h ^= 31*k.(Object).Hash() + v.(Object).Hash()
	}
	return h
}

// Tuple is a heterogeneous immutable collection.
type Tuple struct {
	Elements []Object
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }

func (t *Tuple) Inspect() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, el := range t.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.Inspect())
	}
	sb.WriteString(")")
	return sb.String()
}

func (t *Tuple) RuntimeType() typesystem.Type {
	elems := make([]typesystem.Type, len(t.Elements))
	for i, el := range t.Elements {
		elems[i] = elementType(el)
	}
	return typesystem.TupleOf(elems...)
}

func (t *Tuple) Hash() uint32 {
	h := uint32(1)
	for _, el := range t.Elements {
		h = 31*h + el.Hash()
	}
	return h
}

// elementType reflects a container element. Stored element positions
// never keep reference wrappers, so ["a"] is List<String>.
func elementType(o Object) typesystem.Type {
	return typesystem.Normalize(o.RuntimeType(), true)
}
