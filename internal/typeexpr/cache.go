package typeexpr

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes ParseUnion results by expression. A nil *Cache is valid and
// parses every call.
type Cache struct {
	entries *lru.Cache[string, Union]
}

// NewCache creates a cache holding at most size expressions.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, Union](size)
	if err != nil {
		return nil, fmt.Errorf("create type expression cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// ParseUnion returns the parsed union for expr, parsing it on a miss.
// The returned Members slice is owned by the caller.
func (c *Cache) ParseUnion(expr string) Union {
	if c == nil {
		return ParseUnion(expr)
	}
	if u, ok := c.entries.Get(expr); ok {
		return Union{Expr: u.Expr, Members: slices.Clone(u.Members)}
	}
	u := ParseUnion(expr)
	c.entries.Add(expr, Union{Expr: u.Expr, Members: slices.Clone(u.Members)})
	return u
}

// Len reports how many expressions are cached.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
