package evaluator

import (
	"hash/fnv"

	"github.com/funvibe/declgen/internal/typesystem"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	FLOAT_OBJ    = "FLOAT"
	BOOLEAN_OBJ  = "BOOLEAN"
	CHAR_OBJ     = "CHAR"
	STRING_OBJ   = "STRING"
	LIST_OBJ     = "LIST"
	MAP_OBJ      = "MAP"
	TUPLE_OBJ    = "TUPLE"
	TYPE_OBJ     = "TYPE"
	ANY_OBJ      = "ANY"
	INSTANCE_OBJ = "INSTANCE"
	ERROR_OBJ    = "ERROR"
	NIL_OBJ      = "NIL"
)

// Object is a runtime value produced by evaluating an example
// expression. RuntimeType is the reflection hook: it returns the type
// the value stands for, which is what generation actually consumes.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.Type
	Hash() uint32
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
