package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	key := RenderKey(Hash([]byte("digraph { a -> b }")), RenderKeyOpts{Width: 200, ScaleX: 10, ScaleY: 10})
	want := []byte("+--+\n|ab|\n+--+\n")

	if err := c.Set(ctx, key, want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("entry survived Delete")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestRenderKeyVariesWithOptions(t *testing.T) {
	in := Hash([]byte("graph"))
	base := RenderKey(in, RenderKeyOpts{Width: 200, ScaleX: 10, ScaleY: 10})

	variants := []RenderKeyOpts{
		{Width: 100, ScaleX: 10, ScaleY: 10},
		{Width: 200, ScaleX: 20, ScaleY: 10},
		{Width: 200, ScaleX: 10, ScaleY: 10, Debug: true},
		{Width: 200, ScaleX: 10, ScaleY: 10, Font: "abc"},
	}
	for _, opts := range variants {
		if RenderKey(in, opts) == base {
			t.Errorf("options %+v should change the render key", opts)
		}
	}
	if RenderKey(Hash([]byte("other")), RenderKeyOpts{Width: 200, ScaleX: 10, ScaleY: 10}) == base {
		t.Error("different input should change the render key")
	}
}

func TestTableKey(t *testing.T) {
	a := TableKey(Hash([]byte("charset-a")))
	b := TableKey(Hash([]byte("charset-b")))
	if a == b {
		t.Error("different charsets should produce different table keys")
	}
}
