package symbols

import (
	"sync"

	"github.com/funvibe/declgen/internal/config"
)

// Singleton prelude table containing the builtin types.
var (
	preludeTable *SymbolTable
	preludeOnce  sync.Once
)

// GetPrelude returns the shared table of builtin types. It is read-only
// after initialization and shared across all generation runs.
func GetPrelude() *SymbolTable {
	preludeOnce.Do(func() {
		preludeTable = NewEmptySymbolTable()
		preludeTable.InitBuiltins()
	})
	return preludeTable
}

// ResetPrelude resets the prelude singleton (for testing only).
func ResetPrelude() {
	preludeOnce = sync.Once{}
	preludeTable = nil
}

func (st *SymbolTable) InitBuiltins() {
	atomic := []string{
		config.IntTypeName,
		config.FloatTypeName,
		config.BoolTypeName,
		config.CharTypeName,
		config.StringTypeName,
	}
	for _, name := range atomic {
		st.store[name] = Symbol{Name: name, Kind: TypeSymbol, IsBuiltin: true}
	}

	// Parametrized builtins. Tuple has no fixed arity; its entry exists
	// only so the name is reserved.
	st.store[config.ListTypeName] = Symbol{
		Name: config.ListTypeName, Kind: TypeSymbol, IsBuiltin: true,
		TypeParams: []string{"a"},
	}
	st.store[config.MapTypeName] = Symbol{
		Name: config.MapTypeName, Kind: TypeSymbol, IsBuiltin: true,
		TypeParams: []string{"a", "b"},
	}
	st.store[config.TupleTypeName] = Symbol{
		Name: config.TupleTypeName, Kind: TypeSymbol, IsBuiltin: true,
	}
}
