package emitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/declgen/internal/symbols"
	"github.com/funvibe/declgen/internal/typesystem"
)

func TestEmitProduct(t *testing.T) {
	sym := symbols.Symbol{
		Name: "Player",
		Kind: symbols.ProductSymbol,
		Fields: []symbols.Field{
			{Name: "name", Type: typesystem.String},
			{Name: "equipment", Type: typesystem.MapOf(typesystem.String, typesystem.Int)},
		},
	}
	want := `type Player = {
  name: String
  equipment: Map<String, Int>
}
`
	if got := EmitSymbol(sym); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitPolymorphicProduct(t *testing.T) {
	sym := symbols.Symbol{
		Name:       "Foo",
		Kind:       symbols.ProductSymbol,
		TypeParams: []string{"a"},
		Fields: []symbols.Field{
			{Name: "things", Type: typesystem.ListOf(typesystem.TVar{Name: "a"})},
		},
	}
	want := `type Foo<a> = {
  things: List<a>
}
`
	if got := EmitSymbol(sym); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitSum(t *testing.T) {
	sym := symbols.Symbol{
		Name: "TwoIntsOrString",
		Kind: symbols.SumSymbol,
		Ctors: []symbols.Ctor{
			{Name: "TwoInts", Params: []typesystem.Type{typesystem.Int, typesystem.Int}},
			{Name: "StringThing", Params: []typesystem.Type{typesystem.String}},
			{Name: "Nothing"},
		},
	}
	want := "type TwoIntsOrString = TwoInts(Int, Int) | StringThing(String) | Nothing\n"
	if got := EmitSymbol(sym); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitFunctions(t *testing.T) {
	base := symbols.Symbol{
		Name: "repeat",
		Kind: symbols.FunctionSymbol,
		Type: typesystem.TFunc{
			Params: []typesystem.Type{typesystem.Int, typesystem.TRef{Inner: typesystem.String}},
			Return: typesystem.TRef{Inner: typesystem.String},
		},
	}

	tests := []struct {
		kind symbols.FuncKind
		want string
	}{
		{symbols.FuncSignature, "sig repeat: (Int, &String) -> &String\n"},
		{symbols.FuncInterface, "interface repeat: (Int, &String) -> &String\n"},
		{symbols.FuncExternal, "external repeat: (Int, &String) -> &String\n"},
	}
	for _, tt := range tests {
		sym := base
		sym.FuncKind = tt.kind
		if got := EmitSymbol(sym); got != tt.want {
			t.Errorf("kind %v: got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEmitOpaque(t *testing.T) {
	sym := symbols.Symbol{Name: "File", Kind: symbols.TypeSymbol, IsOpaque: true}
	if got := EmitSymbol(sym); got != "opaque File\n" {
		t.Errorf("got %q", got)
	}
}

func TestEmitDeclarationsDeterministic(t *testing.T) {
	syms := []symbols.Symbol{
		{Name: "A", Kind: symbols.ProductSymbol, Fields: []symbols.Field{{Name: "x", Type: typesystem.Int}}},
		{Name: "B", Kind: symbols.SumSymbol, Ctors: []symbols.Ctor{{Name: "B1"}}},
	}
	first := EmitDeclarations(syms)
	second := EmitDeclarations(syms)
	if first != second {
		t.Error("emission is not deterministic")
	}
	if !strings.HasPrefix(first, header) {
		t.Error("missing generated-code header")
	}
	if strings.Index(first, "type A") > strings.Index(first, "type B") {
		t.Error("declaration order not preserved")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "decls.decl")

	if err := WriteFile(path, "type A = { x: Int }\n"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "type A = { x: Int }\n" {
		t.Errorf("content = %q", data)
	}

	// Overwrite must not leave temp files behind.
	if err := WriteFile(path, "type B = { y: Int }\n"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover files: %v", entries)
	}
}
