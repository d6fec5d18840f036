package evaluator

import (
	"fmt"
	"math"

	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/typesystem"
)

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType             { return INTEGER_OBJ }
func (i *Integer) Inspect() string              { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) RuntimeType() typesystem.Type { return typesystem.Int }
func (i *Integer) Hash() uint32                 { return uint32(i.Value ^ (i.Value >> 32)) }

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType             { return FLOAT_OBJ }
func (f *Float) Inspect() string              { return fmt.Sprintf("%g", f.Value) }
func (f *Float) RuntimeType() typesystem.Type { return typesystem.Float }
func (f *Float) Hash() uint32 {
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType             { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string              { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) RuntimeType() typesystem.Type { return typesystem.Bool }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// Char
type Char struct {
	Value rune
}

func (c *Char) Type() ObjectType             { return CHAR_OBJ }
func (c *Char) Inspect() string              { return fmt.Sprintf("'%c'", c.Value) }
func (c *Char) RuntimeType() typesystem.Type { return typesystem.Char }
func (c *Char) Hash() uint32                 { return uint32(c.Value) }

// Str is a string value. String literals denote borrowed string data, so
// reflection yields &String; normalization decides whether the wrapper
// survives into the declaration.
type Str struct {
	Value string
}

func (s *Str) Type() ObjectType             { return STRING_OBJ }
func (s *Str) Inspect() string              { return fmt.Sprintf("%q", s.Value) }
func (s *Str) RuntimeType() typesystem.Type { return typesystem.TRef{Inner: typesystem.String} }
func (s *Str) Hash() uint32                 { return hashString(s.Value) }

// Nil is the result of expressions with no value.
type Nil struct{}

func (n *Nil) Type() ObjectType             { return NIL_OBJ }
func (n *Nil) Inspect() string              { return "nil" }
func (n *Nil) RuntimeType() typesystem.Type { return typesystem.TCon{Name: "Nil"} }
func (n *Nil) Hash() uint32                 { return 0 }

// Error carries a generation diagnostic out of an evaluation. It flows
// through Eval like any object so one check at the top catches it.
type Error struct {
	Diag *diagnostics.DiagnosticError
}

func (e *Error) Type() ObjectType             { return ERROR_OBJ }
func (e *Error) Inspect() string              { return "error: " + e.Diag.Error() }
func (e *Error) RuntimeType() typesystem.Type { return typesystem.TCon{Name: "Error"} }
func (e *Error) Hash() uint32                 { return hashString(e.Diag.Message) }
