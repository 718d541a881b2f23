package cache

import (
	"context"
	"strings"
	"testing"
)

func TestKeyStability(t *testing.T) {
	a := Key("forex", 10)
	b := Key("forex", 10)
	if a != b {
		t.Fatalf("same inputs produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "news:response:") {
		t.Fatalf("key missing namespace prefix: %q", a)
	}
}

func TestKeyDistinguishesInputs(t *testing.T) {
	base := Key("forex", 10)
	if Key("forex", 20) == base {
		t.Fatal("max_articles not part of the cache key")
	}
	if Key("inflation", 10) == base {
		t.Fatal("keyword not part of the cache key")
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache

	if _, ok := c.Get(context.Background(), Key("forex", 10)); ok {
		t.Fatal("nil cache reported a hit")
	}
	// Must not panic.
	c.Set(context.Background(), Key("forex", 10), []byte("payload"))
	if err := c.Close(); err != nil {
		t.Fatalf("nil cache Close error: %v", err)
	}
}
