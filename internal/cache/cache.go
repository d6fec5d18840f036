// Package cache stores generation results keyed by input content, so an
// unchanged script is not regenerated on every build.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/funvibe/declgen/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS generations (
	key        TEXT PRIMARY KEY,
	script     TEXT NOT NULL,
	output     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Cache is a sqlite-backed map from input hashes to emitted declaration
// text. One database lives per project under the cache directory.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the project cache database.
func Open(projectDir string) (*Cache, error) {
	dir := filepath.Join(projectDir, config.CacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "cache.db"))
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached output for a key, if present.
func (c *Cache) Lookup(key string) (string, bool, error) {
	var output string
	err := c.db.QueryRow("SELECT output FROM generations WHERE key = ?", key).Scan(&output)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup: %w", err)
	}
	return output, true, nil
}

// Store records the output for a key, replacing any prior entry.
func (c *Cache) Store(key, scriptPath, output string) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO generations (key, script, output, created_at) VALUES (?, ?, ?, ?)",
		key, scriptPath, output, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

// Clean drops every cached entry.
func (c *Cache) Clean() error {
	_, err := c.db.Exec("DELETE FROM generations")
	return err
}

// Key hashes the project config together with the scripts and every
// declaration input they could see. The tool version is mixed in so a
// new binary never reuses output in an older format.
func Key(configData, scriptData []byte, declInputs [][]byte) string {
	h := sha256.New()
	h.Write(configData)
	h.Write([]byte{0})
	h.Write(scriptData)
	for _, d := range declInputs {
		h.Write([]byte{0})
		h.Write(d)
	}
	h.Write([]byte{0})
	h.Write([]byte(config.ToolVersion))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
