package mcp

import (
	"strconv"
	"strings"

	"github.com/maypok86/otter"
)

// resultCache memoizes marshaled tool responses. Extraction is a pure
// function of its inputs, so entries never go stale. A nil cache stores
// nothing.
type resultCache struct {
	cache otter.Cache[string, string]
}

// newResultCache returns nil when size is zero.
func newResultCache(size int) (*resultCache, error) {
	if size <= 0 {
		return nil, nil
	}
	cache, err := otter.MustBuilder[string, string](size).Build()
	if err != nil {
		return nil, err
	}
	return &resultCache{cache: cache}, nil
}

func (c *resultCache) get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.cache.Get(key)
}

func (c *resultCache) set(key, value string) {
	if c == nil {
		return
	}
	c.cache.Set(key, value)
}

func (c *resultCache) close() {
	if c == nil {
		return
	}
	c.cache.Close()
}

// cacheKey joins the parts with length prefixes so distinct inputs never
// collide.
func cacheKey(tool string, parts ...string) string {
	var b strings.Builder
	b.WriteString(tool)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}
