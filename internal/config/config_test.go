package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigMinimal(t *testing.T) {
	data := []byte(`
scripts:
  - gen/player.gen
out: gen/generated.decl
`)
	cfg, err := ParseConfig(data, "declgen.yaml")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if len(cfg.Scripts) != 1 || cfg.Scripts[0] != "gen/player.gen" {
		t.Errorf("Scripts = %v, want [gen/player.gen]", cfg.Scripts)
	}
	if cfg.Out != "gen/generated.decl" {
		t.Errorf("Out = %q", cfg.Out)
	}
	if !cfg.CacheEnabled() {
		t.Errorf("cache should default to enabled")
	}
}

func TestParseConfigFull(t *testing.T) {
	data := []byte(`
decls:
  - decls/core.decl
scripts:
  - gen/a.gen
  - gen/b.gen
out: gen/out.decl
foreign:
  go_packages:
    - os
  protosets:
    - api/service.protoset
cache: false
`)
	cfg, err := ParseConfig(data, "declgen.yaml")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if len(cfg.Decls) != 1 {
		t.Errorf("Decls = %v", cfg.Decls)
	}
	if len(cfg.Foreign.GoPackages) != 1 || cfg.Foreign.GoPackages[0] != "os" {
		t.Errorf("GoPackages = %v", cfg.Foreign.GoPackages)
	}
	if len(cfg.Foreign.Protosets) != 1 {
		t.Errorf("Protosets = %v", cfg.Foreign.Protosets)
	}
	if cfg.CacheEnabled() {
		t.Errorf("cache: false not honored")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no scripts", "out: x.decl\n"},
		{"no out", "scripts: [a.gen]\n"},
		{"duplicate script", "scripts: [a.gen, a.gen]\nout: x.decl\n"},
		{"decl is out", "scripts: [a.gen]\ndecls: [x.decl]\nout: x.decl\n"},
		{"empty protoset", "scripts: [a.gen]\nout: x.decl\nforeign:\n  protosets: [\"\"]\n"},
		{"bad yaml", "scripts: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml), "declgen.yaml"); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, "declgen.yaml")
	if err := os.WriteFile(cfgPath, []byte("scripts: [a.gen]\nout: x.decl\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig failed: %v", err)
	}
	if found != cfgPath {
		t.Errorf("FindConfig = %q, want %q", found, cfgPath)
	}
}

func TestFindConfigMissing(t *testing.T) {
	found, err := FindConfig(t.TempDir())
	if err != nil {
		t.Fatalf("FindConfig failed: %v", err)
	}
	if found != "" {
		t.Errorf("FindConfig = %q, want empty", found)
	}
}
