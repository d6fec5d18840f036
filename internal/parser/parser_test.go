package parser

import (
	"testing"

	"github.com/funvibe/declgen/internal/ast"
)

func parseNoErrors(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, errs := Parse(input, "test.gen")
	if len(errs) > 0 {
		t.Fatalf("parser errors: %v", errs)
	}
	return program
}

func TestParseProductStatement(t *testing.T) {
	input := `product Foo {
  bar: 1
  baz: 'a'
}`
	program := parseNoErrors(t, input)
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ProductStatement)
	if !ok {
		t.Fatalf("statement is %T", program.Statements[0])
	}
	if stmt.Name.Value != "Foo" {
		t.Errorf("name = %q", stmt.Name.Value)
	}
	if len(stmt.Fields) != 2 {
		t.Fatalf("got %d fields", len(stmt.Fields))
	}
	if stmt.Fields[0].Name.Value != "bar" || stmt.Fields[1].Name.Value != "baz" {
		t.Errorf("field order broken: %s, %s", stmt.Fields[0].Name.Value, stmt.Fields[1].Name.Value)
	}
	if _, ok := stmt.Fields[0].Example.(*ast.IntegerLiteral); !ok {
		t.Errorf("bar example is %T", stmt.Fields[0].Example)
	}
	if _, ok := stmt.Fields[1].Example.(*ast.CharLiteral); !ok {
		t.Errorf("baz example is %T", stmt.Fields[1].Example)
	}
}

func TestParseEmptyProduct(t *testing.T) {
	program := parseNoErrors(t, "product Empty {}")
	stmt := program.Statements[0].(*ast.ProductStatement)
	if len(stmt.Fields) != 0 {
		t.Errorf("got %d fields, want 0", len(stmt.Fields))
	}
}

func TestParseSumStatement(t *testing.T) {
	input := `sum TwoIntsOrString {
  TwoInts(1, 2)
  StringThing("foo")
  Nothing
}`
	program := parseNoErrors(t, input)
	stmt := program.Statements[0].(*ast.SumStatement)
	if stmt.Name.Value != "TwoIntsOrString" {
		t.Errorf("name = %q", stmt.Name.Value)
	}
	if len(stmt.Variants) != 3 {
		t.Fatalf("got %d variants", len(stmt.Variants))
	}
	if len(stmt.Variants[0].Examples) != 2 {
		t.Errorf("TwoInts has %d examples", len(stmt.Variants[0].Examples))
	}
	if len(stmt.Variants[2].Examples) != 0 {
		t.Errorf("Nothing has %d examples", len(stmt.Variants[2].Examples))
	}
}

func TestParseFuncGenStatements(t *testing.T) {
	input := `signature repeat(1, "blah") -> "blahblah"
interface comparator(any, any) -> true
external fopen("name", "r") -> default(File)`

	program := parseNoErrors(t, input)
	if len(program.Statements) != 3 {
		t.Fatalf("got %d statements", len(program.Statements))
	}

	kinds := []ast.FuncGenKind{ast.FuncGenSignature, ast.FuncGenInterface, ast.FuncGenExternal}
	names := []string{"repeat", "comparator", "fopen"}
	for i, s := range program.Statements {
		stmt, ok := s.(*ast.FuncGenStatement)
		if !ok {
			t.Fatalf("statement %d is %T", i, s)
		}
		if stmt.Kind != kinds[i] {
			t.Errorf("statement %d kind = %v, want %v", i, stmt.Kind, kinds[i])
		}
		if stmt.Name.Value != names[i] {
			t.Errorf("statement %d name = %q", i, stmt.Name.Value)
		}
		if len(stmt.Args) != 2 {
			t.Errorf("statement %d has %d args", i, len(stmt.Args))
		}
		if stmt.Return == nil {
			t.Errorf("statement %d missing return example", i)
		}
	}

	ret := program.Statements[2].(*ast.FuncGenStatement).Return
	call, ok := ret.(*ast.CallExpression)
	if !ok {
		t.Fatalf("external return is %T", ret)
	}
	if call.Function.Value != "default" {
		t.Errorf("call function = %q", call.Function.Value)
	}
}

func TestParseExpressions(t *testing.T) {
	input := `product P {
  a: [1, 2]
  b: %{ "sword" => 1 }
  c: (1, 'x')
  d: 1 + 2 * 3
  e: -5
  f: "a" ++ "b"
  g: []
  h: %{}
  i: selectFrom(Player, equipment)
}`
	program := parseNoErrors(t, input)
	stmt := program.Statements[0].(*ast.ProductStatement)
	if len(stmt.Fields) != 9 {
		t.Fatalf("got %d fields", len(stmt.Fields))
	}

	if l := stmt.Fields[0].Example.(*ast.ListLiteral); len(l.Elements) != 2 {
		t.Errorf("list has %d elements", len(l.Elements))
	}
	if m := stmt.Fields[1].Example.(*ast.MapLiteral); len(m.Pairs) != 1 {
		t.Errorf("map has %d pairs", len(m.Pairs))
	}
	if tup := stmt.Fields[2].Example.(*ast.TupleLiteral); len(tup.Elements) != 2 {
		t.Errorf("tuple has %d elements", len(tup.Elements))
	}

	// 1 + 2 * 3 parses as 1 + (2 * 3)
	add := stmt.Fields[3].Example.(*ast.InfixExpression)
	if add.Operator != "+" {
		t.Errorf("top operator = %q", add.Operator)
	}
	mul := add.Right.(*ast.InfixExpression)
	if mul.Operator != "*" {
		t.Errorf("right operator = %q", mul.Operator)
	}

	if pre := stmt.Fields[4].Example.(*ast.PrefixExpression); pre.Operator != "-" {
		t.Errorf("prefix operator = %q", pre.Operator)
	}
	if cat := stmt.Fields[5].Example.(*ast.InfixExpression); cat.Operator != "++" {
		t.Errorf("concat operator = %q", cat.Operator)
	}
	if l := stmt.Fields[6].Example.(*ast.ListLiteral); len(l.Elements) != 0 {
		t.Errorf("empty list has %d elements", len(l.Elements))
	}
	if m := stmt.Fields[7].Example.(*ast.MapLiteral); len(m.Pairs) != 0 {
		t.Errorf("empty map has %d pairs", len(m.Pairs))
	}

	call := stmt.Fields[8].Example.(*ast.CallExpression)
	if call.Function.Value != "selectFrom" || len(call.Arguments) != 2 {
		t.Errorf("selectFrom call malformed: %v", call)
	}
}

func TestParseTypeDeclProduct(t *testing.T) {
	input := `type Player = {
  name: String
  equipment: Map<String, Int>
}`
	program := parseNoErrors(t, input)
	stmt := program.Statements[0].(*ast.TypeDeclStatement)
	if !stmt.IsProduct {
		t.Fatalf("expected product form")
	}
	if len(stmt.Fields) != 2 {
		t.Fatalf("got %d fields", len(stmt.Fields))
	}
	mt := stmt.Fields[1].Type.(*ast.NamedType)
	if mt.Name.Value != "Map" || len(mt.Args) != 2 {
		t.Errorf("equipment type = %v", mt)
	}
}

func TestParseTypeDeclSum(t *testing.T) {
	input := `type Shape<a> = Circle(Float) | Rect(Float, Float) | Tagged(a)`
	program := parseNoErrors(t, input)
	stmt := program.Statements[0].(*ast.TypeDeclStatement)
	if stmt.IsProduct {
		t.Fatalf("expected sum form")
	}
	if len(stmt.TypeParams) != 1 || stmt.TypeParams[0].Value != "a" {
		t.Errorf("type params = %v", stmt.TypeParams)
	}
	if len(stmt.Constructors) != 3 {
		t.Fatalf("got %d constructors", len(stmt.Constructors))
	}
	if len(stmt.Constructors[1].Params) != 2 {
		t.Errorf("Rect has %d params", len(stmt.Constructors[1].Params))
	}
	arg := stmt.Constructors[2].Params[0].(*ast.NamedType)
	if !arg.IsVariable() {
		t.Errorf("Tagged arg should be a variable")
	}
}

func TestParseFuncDecl(t *testing.T) {
	input := `sig repeat: (Int, &String) -> &String
external fopen: (String, String) -> File
opaque File`
	program := parseNoErrors(t, input)
	if len(program.Statements) != 3 {
		t.Fatalf("got %d statements", len(program.Statements))
	}

	sig := program.Statements[0].(*ast.FuncDeclStatement)
	if sig.Kind != ast.FuncGenSignature || len(sig.Params) != 2 {
		t.Errorf("sig malformed: %v", sig)
	}
	if _, ok := sig.Params[1].(*ast.RefType); !ok {
		t.Errorf("second param should be a ref type, got %T", sig.Params[1])
	}
	if _, ok := sig.Return.(*ast.RefType); !ok {
		t.Errorf("return should be a ref type, got %T", sig.Return)
	}

	ext := program.Statements[1].(*ast.FuncDeclStatement)
	if ext.Kind != ast.FuncGenExternal {
		t.Errorf("external kind = %v", ext.Kind)
	}

	op := program.Statements[2].(*ast.OpaqueStatement)
	if op.Name.Value != "File" {
		t.Errorf("opaque name = %q", op.Name.Value)
	}
}

func TestParseNestedGenericType(t *testing.T) {
	input := `type Deep = {
  field: Map<String, List<Int>>
}`
	program := parseNoErrors(t, input)
	stmt := program.Statements[0].(*ast.TypeDeclStatement)
	mt := stmt.Fields[0].Type.(*ast.NamedType)
	inner := mt.Args[1].(*ast.NamedType)
	if inner.Name.Value != "List" || len(inner.Args) != 1 {
		t.Errorf("nested type = %v", inner)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lowercase product name", "product foo {}"},
		{"missing brace", "product Foo\n bar: 1"},
		{"unterminated body", "product Foo {\n bar: 1"},
		{"bad top level", "1 + 2"},
		{"missing arrow", `signature f(1) "x"`},
		{"sig without function type", "sig f: Int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Parse(tt.input, "test.gen")
			if len(errs) == 0 {
				t.Errorf("expected parse errors for %q", tt.input)
			}
		})
	}
}

func TestParseErrorRecovery(t *testing.T) {
	// A malformed statement must not swallow the following ones.
	input := "product foo {}\nproduct Bar { x: 1 }"
	program, errs := Parse(input, "test.gen")
	if len(errs) == 0 {
		t.Fatalf("expected an error for the first statement")
	}
	found := false
	for _, s := range program.Statements {
		if ps, ok := s.(*ast.ProductStatement); ok && ps.Name.Value == "Bar" {
			found = true
		}
	}
	if !found {
		t.Errorf("second statement was not recovered")
	}
}
