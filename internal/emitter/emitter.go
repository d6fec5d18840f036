// Package emitter serializes generated declarations back into
// declaration-file syntax.
package emitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/funvibe/declgen/internal/symbols"
	"github.com/funvibe/declgen/internal/typesystem"
)

// header is written at the top of every emitted file. The text is part
// of the emitted-output contract; tooling greps for it.
const header = "// Code generated by declgen. DO NOT EDIT.\n"

// EmitDeclarations serializes symbols in the given order. Output is
// deterministic: same symbols, same text.
func EmitDeclarations(syms []symbols.Symbol) string {
	var buf strings.Builder
	buf.WriteString(header)
	for _, sym := range syms {
		buf.WriteString("\n")
		buf.WriteString(EmitSymbol(sym))
	}
	return buf.String()
}

// EmitSymbol serializes one declaration, trailing newline included.
func EmitSymbol(sym symbols.Symbol) string {
	switch sym.Kind {
	case symbols.ProductSymbol:
		return emitProduct(sym)
	case symbols.SumSymbol:
		return emitSum(sym)
	case symbols.FunctionSymbol:
		return emitFunction(sym)
	case symbols.TypeSymbol:
		if sym.IsOpaque {
			return fmt.Sprintf("opaque %s\n", sym.Name)
		}
	}
	return ""
}

func emitProduct(sym symbols.Symbol) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "type %s = {\n", head(sym))
	for _, f := range sym.Fields {
		fmt.Fprintf(&buf, "  %s: %s\n", f.Name, f.Type.String())
	}
	buf.WriteString("}\n")
	return buf.String()
}

func emitSum(sym symbols.Symbol) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "type %s =", head(sym))
	for i, c := range sym.Ctors {
		if i > 0 {
			buf.WriteString(" |")
		}
		buf.WriteString(" ")
		buf.WriteString(c.Name)
		if len(c.Params) > 0 {
			buf.WriteString("(")
			buf.WriteString(joinTypes(c.Params))
			buf.WriteString(")")
		}
	}
	buf.WriteString("\n")
	return buf.String()
}

func emitFunction(sym symbols.Symbol) string {
	kind := "sig"
	switch sym.FuncKind {
	case symbols.FuncInterface:
		kind = "interface"
	case symbols.FuncExternal:
		kind = "external"
	}
	return fmt.Sprintf("%s %s: (%s) -> %s\n",
		kind, sym.Name, joinTypes(sym.Type.Params), sym.Type.Return.String())
}

func head(sym symbols.Symbol) string {
	if len(sym.TypeParams) == 0 {
		return sym.Name
	}
	return fmt.Sprintf("%s<%s>", sym.Name, strings.Join(sym.TypeParams, ", "))
}

func joinTypes(ts []typesystem.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// WriteFile writes declaration text atomically: the content lands in a
// uniquely named sibling temp file first, then renames over the target,
// so a crashed run never leaves a truncated output half-read by the
// next build step.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
