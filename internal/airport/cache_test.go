package airport

import (
	"errors"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

func TestCacheEmpty(t *testing.T) {
	c := NewCache(zfilesystem.NewMemFS())
	_, err := c.Load()
	if !errors.Is(err, ErrNoCache) {
		t.Fatalf("expected ErrNoCache, got %v", err)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	c := NewCache(fs)

	if err := c.Store([]byte(datasetOK)); err != nil {
		t.Fatalf("store: %v", err)
	}

	raw, err := fs.ReadFile("airports.json")
	if err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	if string(raw) != datasetOK {
		t.Error("cache should hold the raw dataset")
	}

	tbl, err := c.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Len() != 2 || tbl.At(0).Code != "ORD" {
		t.Errorf("loaded table: got %v", tbl.Codes())
	}
}

func TestCacheCorrupt(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	fs.WriteFile("airports.json", []byte("not json"), 0o600)

	if _, err := NewCache(fs).Load(); err == nil || errors.Is(err, ErrNoCache) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	def, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	t.Run("nil cache uses default", func(t *testing.T) {
		tbl, err := Resolve(nil)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tbl.Len() != def.Len() {
			t.Errorf("len: got %d, want %d", tbl.Len(), def.Len())
		}
	})

	t.Run("missing cache uses default", func(t *testing.T) {
		tbl, err := Resolve(NewCache(zfilesystem.NewMemFS()))
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tbl.Len() != def.Len() {
			t.Errorf("len: got %d, want %d", tbl.Len(), def.Len())
		}
	})

	t.Run("cached table wins", func(t *testing.T) {
		c := NewCache(zfilesystem.NewMemFS())
		c.Store([]byte(datasetOK))

		tbl, err := Resolve(c)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tbl.Len() != 2 {
			t.Errorf("len: got %d, want 2", tbl.Len())
		}
	})

	t.Run("empty cached table falls back", func(t *testing.T) {
		c := NewCache(zfilesystem.NewMemFS())
		c.Store([]byte(`[]`))

		tbl, err := Resolve(c)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if tbl.Len() != def.Len() {
			t.Errorf("len: got %d, want %d", tbl.Len(), def.Len())
		}
	})

	t.Run("corrupt cache errors", func(t *testing.T) {
		fs := zfilesystem.NewMemFS()
		fs.WriteFile("airports.json", []byte("{"), 0o600)

		if _, err := Resolve(NewCache(fs)); err == nil {
			t.Error("expected error for corrupt cache")
		}
	})
}
