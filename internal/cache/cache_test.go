package cache

import (
	"testing"
)

func TestLookupMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	_, ok, err := c.Lookup("no-such-key")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unexpected hit")
	}
}

func TestStoreAndLookup(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := Key(nil, []byte("product Foo { x: 1 }"), nil)
	if err := c.Store(key, "types.gen", "type Foo = { x: Int }\n"); err != nil {
		t.Fatal(err)
	}

	out, ok, err := c.Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if out != "type Foo = { x: Int }\n" {
		t.Errorf("output = %q", out)
	}
}

func TestStoreReplaces(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := Key(nil, []byte("script"), nil)
	if err := c.Store(key, "a.gen", "old"); err != nil {
		t.Fatal(err)
	}
	if err := c.Store(key, "a.gen", "new"); err != nil {
		t.Fatal(err)
	}
	out, _, err := c.Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	if out != "new" {
		t.Errorf("output = %q", out)
	}
}

func TestClean(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := Key(nil, []byte("script"), nil)
	if err := c.Store(key, "a.gen", "out"); err != nil {
		t.Fatal(err)
	}
	if err := c.Clean(); err != nil {
		t.Fatal(err)
	}
	_, ok, err := c.Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("entry survived Clean")
	}
}

func TestKeySensitivity(t *testing.T) {
	base := Key([]byte("cfg"), []byte("script"), [][]byte{[]byte("decl")})
	if Key([]byte("cfg2"), []byte("script"), [][]byte{[]byte("decl")}) == base {
		t.Error("key ignores config content")
	}
	if Key([]byte("cfg"), []byte("script2"), [][]byte{[]byte("decl")}) == base {
		t.Error("key ignores script content")
	}
	if Key([]byte("cfg"), []byte("script"), [][]byte{[]byte("decl2")}) == base {
		t.Error("key ignores declaration inputs")
	}
	if Key([]byte("cfg"), []byte("script"), [][]byte{[]byte("decl")}) != base {
		t.Error("key is not deterministic")
	}
}
