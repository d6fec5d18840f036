package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/declgen/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testProject(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "base.decl", `type Player = {
  name: String
  equipment: Map<String, Int>
}`)
	writeFile(t, dir, "types.gen", `product Save {
  who: selectFrom(Player, name)
  slot: 1
}

signature repeat(1, "blah") -> "blahblah"
`)

	return dir, &config.Config{
		Decls:   []string{"base.decl"},
		Scripts: []string{"types.gen"},
		Out:     "generated.decl",
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir, cfg := testProject(t)

	ctx := Default().Run(&Context{Config: cfg, ConfigDir: dir})
	if ctx.Failed() {
		t.Fatalf("run failed: err=%v diags=%v", ctx.Err, ctx.Diagnostics)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generated.decl"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"type Save = {",
		"who: String",
		"slot: Int",
		"sig repeat: (Int, &String) -> &String",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunUsesCacheOnSecondRun(t *testing.T) {
	dir, cfg := testProject(t)

	first := Default().Run(&Context{Config: cfg, ConfigDir: dir})
	if first.Failed() {
		t.Fatalf("first run failed: %v %v", first.Err, first.Diagnostics)
	}
	if first.FromCache {
		t.Fatal("first run claims a cache hit")
	}

	second := Default().Run(&Context{Config: cfg, ConfigDir: dir})
	if second.Failed() {
		t.Fatalf("second run failed: %v %v", second.Err, second.Diagnostics)
	}
	if !second.FromCache {
		t.Error("second run missed the cache")
	}
	if second.Output != first.Output {
		t.Error("cached output differs from generated output")
	}
}

func TestRunNoCacheBypasses(t *testing.T) {
	dir, cfg := testProject(t)

	Default().Run(&Context{Config: cfg, ConfigDir: dir})
	ctx := Default().Run(&Context{Config: cfg, ConfigDir: dir, NoCache: true})
	if ctx.FromCache {
		t.Error("NoCache run hit the cache")
	}
}

func TestRunCacheDisabledInConfig(t *testing.T) {
	dir, cfg := testProject(t)
	disabled := false
	cfg.Cache = &disabled

	Default().Run(&Context{Config: cfg, ConfigDir: dir})
	ctx := Default().Run(&Context{Config: cfg, ConfigDir: dir})
	if ctx.FromCache {
		t.Error("disabled cache produced a hit")
	}
}

func TestRunFailedScriptEmitsNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.gen", `product Broken { x: nope }`)
	cfg := &config.Config{
		Scripts: []string{"bad.gen"},
		Out:     "generated.decl",
	}

	ctx := Default().Run(&Context{Config: cfg, ConfigDir: dir})
	if !ctx.Failed() {
		t.Fatal("run should have failed")
	}
	if _, err := os.Stat(filepath.Join(dir, "generated.decl")); !os.IsNotExist(err) {
		t.Error("failed run still wrote output")
	}
}

func TestRunScriptOrderVisibility(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first.gen", `product Player {
  name: "Slayer"
}`)
	writeFile(t, dir, "second.gen", `product Save {
  who: selectFrom(Player, name)
}`)
	cfg := &config.Config{
		Scripts: []string{"first.gen", "second.gen"},
		Out:     "out.decl",
	}

	ctx := Default().Run(&Context{Config: cfg, ConfigDir: dir})
	if ctx.Failed() {
		t.Fatalf("run failed: %v %v", ctx.Err, ctx.Diagnostics)
	}
	if !strings.Contains(ctx.Output, "who: String") {
		t.Errorf("second script did not see the first one's declaration:\n%s", ctx.Output)
	}
}
