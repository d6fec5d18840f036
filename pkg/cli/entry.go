// Package cli is the declgen command-line entry point, kept out of
// cmd/ so embedders can drive a run programmatically.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/funvibe/declgen/internal/cache"
	"github.com/funvibe/declgen/internal/config"
	"github.com/funvibe/declgen/internal/diagnostics"
	"github.com/funvibe/declgen/internal/pipeline"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1 // generation diagnostics
	ExitUsage = 2 // bad invocation or missing config
)

// Entry runs declgen with the given arguments and returns the process
// exit code. Output goes to stdout/stderr.
func Entry(args []string) int {
	return entry(args, os.Stdout, os.Stderr)
}

func entry(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("declgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to declgen.yaml (default: search upward from cwd)")
	noCache := fs.Bool("no-cache", false, "bypass the generation cache")
	cleanCache := fs.Bool("clean-cache", false, "drop the generation cache and exit")
	verbose := fs.Bool("verbose", false, "verbose logging")
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if *version {
		fmt.Fprintf(stdout, "declgen %s\n", config.ToolVersion)
		return ExitOK
	}

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("declgen")

	path := *configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(stderr, "declgen: %s\n", err)
			return ExitUsage
		}
		path, err = config.FindConfig(cwd)
		if err != nil {
			fmt.Fprintf(stderr, "declgen: %s\n", err)
			return ExitUsage
		}
		if path == "" {
			fmt.Fprintln(stderr, "declgen: no declgen.yaml found (here or in any parent directory)")
			return ExitUsage
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(stderr, "declgen: %s\n", err)
		return ExitUsage
	}
	configDir := config.Dir(path)

	if *cleanCache {
		c, err := cache.Open(configDir)
		if err != nil {
			fmt.Fprintf(stderr, "declgen: %s\n", err)
			return ExitError
		}
		defer c.Close()
		if err := c.Clean(); err != nil {
			fmt.Fprintf(stderr, "declgen: %s\n", err)
			return ExitError
		}
		return ExitOK
	}

	ctx := pipeline.Default().Run(&pipeline.Context{
		Config:    cfg,
		ConfigDir: configDir,
		NoCache:   *noCache,
		Log:       log,
	})

	if ctx.Err != nil {
		fmt.Fprintf(stderr, "declgen: %s\n", ctx.Err)
		return ExitError
	}
	if len(ctx.Diagnostics) > 0 {
		printDiagnostics(stderr, ctx.Diagnostics)
		return ExitError
	}

	if ctx.FromCache {
		fmt.Fprintf(stdout, "%s (cached)\n", ctx.OutputPath)
	} else {
		fmt.Fprintf(stdout, "%s (%d declarations)\n", ctx.OutputPath, len(ctx.Generated))
	}
	return ExitOK
}

func printDiagnostics(w io.Writer, diags []*diagnostics.DiagnosticError) {
	colorize := useColor(w)
	for _, d := range diags {
		if colorize {
			fmt.Fprintf(w, "\x1b[31m%s\x1b[0m\n", d.Error())
		} else {
			fmt.Fprintln(w, d.Error())
		}
	}
	fmt.Fprintf(w, "%d error(s)\n", len(diags))
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
