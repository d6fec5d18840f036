package symbols

import (
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/typesystem"
)

// Lookup finds a symbol by name, searching enclosing tables.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.Lookup(name)
	}
	return sym, ok
}

// Define inserts a symbol. Every declared name must be unique across the
// whole table, builtin types included.
func (s *SymbolTable) Define(sym Symbol) *diagnostics.DiagnosticError {
	if prev, ok := s.Lookup(sym.Name); ok {
		if prev.IsBuiltin {
			return diagnostics.NewErrorAt(
				diagnostics.ErrG005, sym.DefinitionFile, sym.DefinitionLine, 1,
				"%s is a builtin type and cannot be redeclared", sym.Name,
			)
		}
		return diagnostics.NewErrorAt(
			diagnostics.ErrG005, sym.DefinitionFile, sym.DefinitionLine, 1,
			"%s is already declared at %s:%d", sym.Name, prev.DefinitionFile, prev.DefinitionLine,
		)
	}
	s.store[sym.Name] = sym
	s.names = append(s.names, sym.Name)
	return nil
}

// SelectFrom returns the declared type of a product field. The target
// must name a product declaration; anything else is a G002, a missing
// field a G003.
func (s *SymbolTable) SelectFrom(typeName, fieldName string) (typesystem.Type, *diagnostics.DiagnosticError) {
	sym, ok := s.Lookup(typeName)
	if !ok {
		return nil, diagnostics.NewErrorAt(
			diagnostics.ErrG002, "", 0, 0,
			"%s is not a declared product type", typeName,
		)
	}
	if sym.Kind != ProductSymbol {
		return nil, diagnostics.NewErrorAt(
			diagnostics.ErrG002, sym.DefinitionFile, sym.DefinitionLine, 0,
			"%s is not a product type, cannot select field %s", typeName, fieldName,
		)
	}
	for _, f := range sym.Fields {
		if f.Name == fieldName {
			return f.Type, nil
		}
	}
	return nil, diagnostics.NewErrorAt(
		diagnostics.ErrG003, sym.DefinitionFile, sym.DefinitionLine, 0,
		"%s has no field %s", typeName, fieldName,
	)
}
