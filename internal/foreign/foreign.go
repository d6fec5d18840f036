// Package foreign cross-checks `external` registrations against real
// foreign symbols: exported functions of Go packages and methods of
// protoset-described services. Verification is advisory, the declared
// registration stays authoritative; mismatches are logged as warnings
// and never fail a generation run.
package foreign

import (
	"strings"

	"github.com/tliron/commonlog"

	"github.com/funvibe/declgen/internal/symbols"
)

// Signature is what we know about one foreign symbol.
type Signature struct {
	Name   string
	Source string // import path or proto service name
	Params int
}

type Verifier struct {
	log commonlog.Logger

	// Keyed by lowercased symbol name; registration names are
	// lower-case by grammar while Go exports are capitalized.
	funcs map[string]Signature
}

func NewVerifier() *Verifier {
	return &Verifier{
		log:   commonlog.GetLogger("declgen.foreign"),
		funcs: make(map[string]Signature),
	}
}

// Known reports how many foreign symbols have been loaded.
func (v *Verifier) Known() int {
	return len(v.funcs)
}

func (v *Verifier) add(sig Signature) {
	key := strings.ToLower(sig.Name)
	if _, exists := v.funcs[key]; exists {
		return // first loaded source wins
	}
	v.funcs[key] = sig
}

// Verify checks every external registration among the given symbols. It
// returns the number of mismatches found, for reporting.
func (v *Verifier) Verify(syms []symbols.Symbol) int {
	if len(v.funcs) == 0 {
		return 0
	}

	mismatches := 0
	for _, sym := range syms {
		if sym.Kind != symbols.FunctionSymbol || sym.FuncKind != symbols.FuncExternal {
			continue
		}
		sig, ok := v.funcs[strings.ToLower(sym.Name)]
		if !ok {
			v.log.Warningf("external %s: no matching foreign symbol found", sym.Name)
			mismatches++
			continue
		}
		if sig.Params != len(sym.Type.Params) {
			v.log.Warningf("external %s: declared %d parameters, %s has %d",
				sym.Name, len(sym.Type.Params), sig.Source, sig.Params)
			mismatches++
		}
	}
	return mismatches
}
