package foreign

import (
	"fmt"
	"go/types"
	"os"

	"golang.org/x/tools/go/packages"
)

// LoadGoPackages inspects the exported functions of the given Go import
// paths, resolved relative to dir.
func (v *Verifier) LoadGoPackages(dir string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
		Env:  append(os.Environ(), "GOWORK=off"),
	}
	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			v.log.Warningf("package %s: %s", pkg.PkgPath, e.Msg)
		}
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			fn, ok := scope.Lookup(name).(*types.Func)
			if !ok || !fn.Exported() {
				continue
			}
			sig := fn.Type().(*types.Signature)
			v.add(Signature{
				Name:   name,
				Source: pkg.PkgPath,
				Params: sig.Params().Len(),
			})
		}
	}
	return nil
}
