package airport

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

const cacheFile = "airports.json"

// ErrNoCache is returned when no dataset has been cached yet.
var ErrNoCache = errors.New("no cached airports")

// Cache keeps a downloaded dataset on a filesystem.
type Cache struct {
	fs zfilesystem.ReadWriteFileFS
}

// NewCache creates a cache rooted at fsys.
func NewCache(fsys zfilesystem.ReadWriteFileFS) *Cache {
	return &Cache{fs: fsys}
}

// Load parses the cached dataset.
func (c *Cache) Load() (Table, error) {
	data, err := c.fs.ReadFile(cacheFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, ErrNoCache
		}
		return Table{}, fmt.Errorf("load cache: read: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return Table{}, fmt.Errorf("load cache: %w", err)
	}
	return t, nil
}

// Store replaces the cached dataset with raw.
func (c *Cache) Store(raw []byte) error {
	if err := c.fs.WriteFile(cacheFile, raw, 0o600); err != nil {
		return fmt.Errorf("store cache: write: %w", err)
	}
	return nil
}

// Resolve returns the cached table when one exists and is non-empty,
// otherwise the bundled default. A nil cache means the default.
func Resolve(c *Cache) (Table, error) {
	if c != nil {
		t, err := c.Load()
		switch {
		case err == nil && t.Len() > 0:
			return t, nil
		case err != nil && !errors.Is(err, ErrNoCache):
			return Table{}, err
		}
	}
	return Default()
}
