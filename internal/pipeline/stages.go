package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/declgen/internal/cache"
	"github.com/funvibe/declgen/internal/emitter"
	"github.com/funvibe/declgen/internal/foreign"
	"github.com/funvibe/declgen/internal/generator"
	"github.com/funvibe/declgen/internal/parser"
)

// LoadDecls parses every configured declaration file into the table.
type LoadDecls struct{}

func (s *LoadDecls) Process(ctx *Context) *Context {
	for _, path := range ctx.Config.Decls {
		full := ctx.resolve(path)
		data, err := os.ReadFile(full)
		if err != nil {
			ctx.Err = fmt.Errorf("reading declarations: %w", err)
			return ctx
		}
		program, perrs := parser.Parse(string(data), path)
		if len(perrs) > 0 {
			ctx.Diagnostics = append(ctx.Diagnostics, perrs...)
			continue
		}
		ctx.Diagnostics = append(ctx.Diagnostics, ctx.Table.LoadProgram(program)...)
	}
	return ctx
}

// CacheCheck looks for a cached result covering the whole run. On a hit
// the generation and verification stages are skipped and the cached text
// is re-emitted, which is safe because emission is deterministic.
type CacheCheck struct{}

func (s *CacheCheck) Process(ctx *Context) *Context {
	if ctx.Err != nil || ctx.NoCache || !ctx.Config.CacheEnabled() {
		return ctx
	}

	var scripts []byte
	for _, path := range ctx.Config.Scripts {
		data, err := os.ReadFile(ctx.resolve(path))
		if err != nil {
			ctx.Err = fmt.Errorf("reading script: %w", err)
			return ctx
		}
		scripts = append(scripts, data...)
		scripts = append(scripts, 0)
	}
	var decls [][]byte
	for _, path := range ctx.Config.Decls {
		data, err := os.ReadFile(ctx.resolve(path))
		if err != nil {
			ctx.Err = fmt.Errorf("reading declarations: %w", err)
			return ctx
		}
		decls = append(decls, data)
	}
	cfg, err := yaml.Marshal(ctx.Config)
	if err != nil {
		ctx.Log.Warningf("cache disabled, config not hashable: %s", err)
		return ctx
	}
	ctx.CacheKey = cache.Key(cfg, scripts, decls)

	c, err := cache.Open(ctx.ConfigDir)
	if err != nil {
		// A broken cache must not block generation.
		ctx.Log.Warningf("cache unavailable: %s", err)
		ctx.CacheKey = ""
		return ctx
	}
	defer c.Close()

	output, hit, err := c.Lookup(ctx.CacheKey)
	if err != nil {
		ctx.Log.Warningf("cache lookup failed: %s", err)
		return ctx
	}
	if hit {
		ctx.Log.Infof("cache hit for %d scripts", len(ctx.Config.Scripts))
		ctx.Output = output
		ctx.FromCache = true
	}
	return ctx
}

// Generate parses and runs every generator script in configured order.
// Declarations registered by earlier scripts are visible to later ones.
type Generate struct{}

func (s *Generate) Process(ctx *Context) *Context {
	if ctx.Err != nil || ctx.FromCache {
		return ctx
	}

	gen := generator.New(ctx.Table)
	for _, path := range ctx.Config.Scripts {
		data, err := os.ReadFile(ctx.resolve(path))
		if err != nil {
			ctx.Err = fmt.Errorf("reading script: %w", err)
			return ctx
		}
		program, perrs := parser.Parse(string(data), path)
		if len(perrs) > 0 {
			ctx.Diagnostics = append(ctx.Diagnostics, perrs...)
			continue
		}
		syms, gerrs := gen.Generate(program)
		ctx.Diagnostics = append(ctx.Diagnostics, gerrs...)
		ctx.Generated = append(ctx.Generated, syms...)
	}
	return ctx
}

// VerifyForeign cross-checks external registrations when foreign sources
// are configured. Advisory: only warnings, never diagnostics.
type VerifyForeign struct{}

func (s *VerifyForeign) Process(ctx *Context) *Context {
	if ctx.Err != nil || ctx.FromCache || ctx.Failed() {
		return ctx
	}
	fc := ctx.Config.Foreign
	if len(fc.GoPackages) == 0 && len(fc.Protosets) == 0 {
		return ctx
	}

	v := foreign.NewVerifier()
	if err := v.LoadGoPackages(ctx.ConfigDir, fc.GoPackages); err != nil {
		ctx.Log.Warningf("foreign verification skipped: %s", err)
		return ctx
	}
	protosets := make([]string, len(fc.Protosets))
	for i, p := range fc.Protosets {
		protosets[i] = ctx.resolve(p)
	}
	if err := v.LoadProtosets(protosets); err != nil {
		ctx.Log.Warningf("foreign verification skipped: %s", err)
		return ctx
	}
	if n := v.Verify(ctx.Generated); n > 0 {
		ctx.Log.Warningf("%d external registration(s) did not match a foreign symbol", n)
	}
	return ctx
}

// Emit serializes the generated declarations, writes the output file
// atomically and stores the text in the cache. A failed run emits
// nothing.
type Emit struct{}

func (s *Emit) Process(ctx *Context) *Context {
	if ctx.Failed() {
		return ctx
	}

	if !ctx.FromCache {
		ctx.Output = emitter.EmitDeclarations(ctx.Generated)
	}
	ctx.OutputPath = ctx.resolve(ctx.Config.Out)
	if err := emitter.WriteFile(ctx.OutputPath, ctx.Output); err != nil {
		ctx.Err = err
		return ctx
	}

	if ctx.CacheKey != "" && !ctx.FromCache {
		c, err := cache.Open(ctx.ConfigDir)
		if err == nil {
			defer c.Close()
			if err := c.Store(ctx.CacheKey, ctx.Config.Out, ctx.Output); err != nil {
				ctx.Log.Warningf("cache store failed: %s", err)
			}
		}
	}
	return ctx
}
