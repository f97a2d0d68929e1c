package feedback

import (
	"strings"
	"sync"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

// Cache stores generated feedback text so repeat attempts with the same
// question and tag set don't trigger another LLM call. The cache is owned
// and injected by the caller, not the feedback service, so its lifetime and
// bounds stay under the caller's control.
type Cache interface {
	Get(key string) (string, bool)
	Put(key, text string)
	Clear()
}

// CacheKey derives the lookup key for an attempt: the question text plus
// the ordered tag list. Classification is deterministic, so identical
// attempts always map to the same key.
func CacheKey(question string, tags []tagging.Tag) string {
	return question + "|" + strings.Join(tagging.Strings(tags), ",")
}

// BoundedCache is an in-memory Cache holding at most maxEntries entries,
// evicting the oldest insertion when full. Safe for concurrent use.
type BoundedCache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]string
	order      []string // insertion order, oldest first
}

// NewBoundedCache creates a BoundedCache. maxEntries must be positive.
func NewBoundedCache(maxEntries int) *BoundedCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &BoundedCache{
		maxEntries: maxEntries,
		entries:    make(map[string]string, maxEntries),
	}
}

func (c *BoundedCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.entries[key]
	return text, ok
}

func (c *BoundedCache) Put(key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = text
		return
	}

	if len(c.entries) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = text
	c.order = append(c.order, key)
}

func (c *BoundedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string, c.maxEntries)
	c.order = nil
}

// Len returns the current number of cached entries.
func (c *BoundedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
