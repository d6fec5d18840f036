package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funvibe/declgen/internal/config"
	"github.com/funvibe/declgen/internal/typesystem"
)

// Resolve rewrites marker type variables across a declaration's
// collected types and derives the head type-parameter list.
//
// Empty-container variables are named positionally: a pending variable
// sitting in argument position i of a parametrized constructor becomes
// the i-th alphabet symbol, so an empty list is List<a> and an empty
// map is Map<a, b>. The explicit `any` marker is different: every
// occurrence in the declaration, wherever it sits, collapses to the
// first symbol. Declaring two independent free variables through
// markers is intentionally not possible.
//
// The returned names are the distinct variables of the resolved types in
// alphabet order, matching the positional assignment.
func Resolve(types []typesystem.Type) ([]typesystem.Type, []string) {
	marker := typesystem.Subst{config.AnyVarName: typesystem.TVar{Name: varName(0)}}
	resolved := make([]typesystem.Type, len(types))
	for i, t := range types {
		resolved[i] = resolveType(t, 0).Apply(marker)
	}
	return resolved, headVars(resolved)
}

func resolveType(t typesystem.Type, pos int) typesystem.Type {
	switch tt := t.(type) {
	case typesystem.TVar:
		if tt.Pending() {
			return typesystem.TVar{Name: varName(pos)}
		}
		return tt
	case typesystem.TApp:
		args := make([]typesystem.Type, len(tt.Args))
		for i, arg := range tt.Args {
			args[i] = resolveType(arg, i)
		}
		return typesystem.TApp{Constructor: tt.Constructor, Args: args}
	case typesystem.TRef:
		return typesystem.TRef{Inner: resolveType(tt.Inner, pos)}
	case typesystem.TFunc:
		params := make([]typesystem.Type, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = resolveType(p, i)
		}
		return typesystem.TFunc{Params: params, Return: resolveType(tt.Return, 0)}
	}
	return t
}

// varName maps an argument position to its variable symbol.
func varName(pos int) string {
	alphabet := config.VarAlphabet
	if pos < len(alphabet) {
		return string(alphabet[pos])
	}
	// Arity beyond the alphabet; no real constructor gets here.
	return fmt.Sprintf("%c%d", alphabet[pos%len(alphabet)], pos/len(alphabet))
}

// headVars collects distinct variable names in alphabet order.
func headVars(types []typesystem.Type) []string {
	var names []string
	seen := map[string]bool{}
	for _, t := range types {
		for _, v := range t.FreeTypeVariables() {
			if !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return alphabetRank(names[i]) < alphabetRank(names[j])
	})
	return names
}

func alphabetRank(name string) int {
	if i := strings.IndexByte(config.VarAlphabet, name[0]); i >= 0 {
		return i
	}
	return len(config.VarAlphabet)
}
