package feedback

import (
	"fmt"
	"testing"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

func TestCacheKey(t *testing.T) {
	k1 := CacheKey("8 + 5", []tagging.Tag{tagging.TagComplementMiss, tagging.TagOffByOne})
	k2 := CacheKey("8 + 5", []tagging.Tag{tagging.TagComplementMiss, tagging.TagOffByOne})
	if k1 != k2 {
		t.Errorf("identical inputs produced different keys: %q vs %q", k1, k2)
	}

	k3 := CacheKey("8 + 5", []tagging.Tag{tagging.TagOffByOne})
	if k1 == k3 {
		t.Error("different tag sets must produce different keys")
	}

	k4 := CacheKey("8 + 6", []tagging.Tag{tagging.TagComplementMiss, tagging.TagOffByOne})
	if k1 == k4 {
		t.Error("different questions must produce different keys")
	}
}

func TestBoundedCache_GetPut(t *testing.T) {
	c := NewBoundedCache(10)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Put("k", "nice try")
	text, ok := c.Get("k")
	if !ok || text != "nice try" {
		t.Errorf("Get = (%q, %v), want (nice try, true)", text, ok)
	}

	// Overwrite keeps a single entry.
	c.Put("k", "even nicer")
	text, _ = c.Get("k")
	if text != "even nicer" {
		t.Errorf("overwrite: got %q", text)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestBoundedCache_EvictsOldest(t *testing.T) {
	c := NewBoundedCache(3)
	for i := range 4 {
		c.Put(fmt.Sprintf("k%d", i), "v")
	}

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Error("oldest entry k0 should have been evicted")
	}
	for _, k := range []string{"k1", "k2", "k3"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %s missing", k)
		}
	}
}

func TestBoundedCache_Clear(t *testing.T) {
	c := NewBoundedCache(3)
	c.Put("a", "1")
	c.Put("b", "2")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Clear")
	}

	// Cache stays usable after Clear.
	c.Put("c", "3")
	if _, ok := c.Get("c"); !ok {
		t.Error("Put after Clear failed")
	}
}

func TestBoundedCache_MinimumBound(t *testing.T) {
	c := NewBoundedCache(0)
	c.Put("a", "1")
	c.Put("b", "2")
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 (bound clamped to 1)", c.Len())
	}
}
