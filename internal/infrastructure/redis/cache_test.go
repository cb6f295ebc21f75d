package redis

import (
	"strings"
	"testing"
)

func TestQueryKeyIgnoresParameterOrder(t *testing.T) {
	t.Parallel()

	a := QueryKey("p", map[string]string{"limit": "5", "active": "true"})
	b := QueryKey("p", map[string]string{"active": "true", "limit": "5"})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "p:") {
		t.Fatalf("missing prefix: %q", a)
	}
	if got := len(strings.TrimPrefix(a, "p:")); got != 32 {
		t.Fatalf("hash length = %d, want 32", got)
	}
}

func TestMostSearchedKeyDependsOnLimit(t *testing.T) {
	t.Parallel()

	if MostSearchedKey(5) == MostSearchedKey(10) {
		t.Fatal("different limits must not share a cache key")
	}
	if !strings.HasPrefix(MostSearchedKey(5), mostSearchedPrefix+":") {
		t.Fatalf("unexpected key %q", MostSearchedKey(5))
	}
}
