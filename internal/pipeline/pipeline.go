// Package pipeline sequences a declgen run: load declarations, check
// the cache, generate, verify foreign registrations, emit.
package pipeline

import (
	"github.com/tliron/commonlog"

	"github.com/funvibe/declgen/internal/config"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/symbols"
)

// Context carries the state of one run through the stages.
type Context struct {
	Config     *config.Config
	ConfigDir  string
	NoCache    bool
	Log        commonlog.Logger

	Table     *symbols.SymbolTable
	Generated []symbols.Symbol

	CacheKey  string
	FromCache bool

	Output     string
	OutputPath string

	// Diagnostics are user-facing generation errors; Err is an
	// infrastructure failure (I/O, broken cache) that stops the run.
	Diagnostics []*diagnostics.DiagnosticError
	Err         error
}

// Failed reports whether the run produced errors of either kind.
func (ctx *Context) Failed() bool {
	return ctx.Err != nil || len(ctx.Diagnostics) > 0
}

// Processor is one stage of the run.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Default is the standard stage order for a full run.
func Default() *Pipeline {
	return New(
		&LoadDecls{},
		&CacheCheck{},
		&Generate{},
		&VerifyForeign{},
		&Emit{},
	)
}

// Run executes the pipeline. Stages are responsible for skipping
// themselves when the context is already failed or satisfied from the
// cache; Run itself never short-circuits, so diagnostics from every
// reachable stage are collected.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	if ctx.Log == nil {
		ctx.Log = commonlog.GetLogger("declgen")
	}
	if ctx.Table == nil {
		ctx.Table = symbols.NewSymbolTable()
	}
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

func (ctx *Context) resolve(path string) string {
	return config.Resolve(ctx.ConfigDir, path)
}
