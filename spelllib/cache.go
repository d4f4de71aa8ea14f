package spelllib

import (
	"fmt"

	"github.com/patrickmn/go-cache"
)

// Store keeps verdicts beyond a single run, e.g. in Redis
type Store interface {
	GetVerdict(key string) (verdict bool, found bool, err error)
	SetVerdict(key string, verdict bool) error
}

// Cached memoizes the verdicts of another validator. Lookups try memory,
// then the store when there is one, then the wrapped validator.
type Cached struct {
	v      Validator
	mem    *cache.Cache
	store  Store
	prefix string

	Hits, Misses int
}

// NewCached wraps v. store may be nil. prefix namespaces store keys, one per
// dictionary, e.g. "hunspell:de_DE:".
func NewCached(v Validator, store Store, prefix string) *Cached {
	return &Cached{
		v:      v,
		mem:    cache.New(cache.NoExpiration, 0),
		store:  store,
		prefix: prefix,
	}
}

// IsWord implements Validator. Errors are never cached.
func (c *Cached) IsWord(form string) (bool, error) {
	if x, found := c.mem.Get(form); found {
		c.Hits++
		return x.(bool), nil
	}

	if c.store != nil {
		verdict, found, err := c.store.GetVerdict(c.prefix + form)
		if err != nil {
			return false, fmt.Errorf("verdict store: %w", err)
		}
		if found {
			c.Hits++
			c.mem.Set(form, verdict, cache.NoExpiration)
			return verdict, nil
		}
	}

	c.Misses++
	verdict, err := c.v.IsWord(form)
	if err != nil {
		return false, err
	}
	c.mem.Set(form, verdict, cache.NoExpiration)
	if c.store != nil {
		if err := c.store.SetVerdict(c.prefix+form, verdict); err != nil {
			return false, fmt.Errorf("verdict store: %w", err)
		}
	}
	return verdict, nil
}

// Len returns how many verdicts are held in memory
func (c *Cached) Len() int {
	return c.mem.ItemCount()
}
