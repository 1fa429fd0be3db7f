// Package props holds the ordered property bags passed to the tag builder,
// and the asymmetric merge of two bags.
package props

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Props is an ordered mapping from property name to value. Setting an
// existing key keeps its position. A nil *Props reads as empty.
type Props struct {
	m *linkedhashmap.Map
}

// entry boxes stored values: linkedhashmap reports a nil value as missing.
type entry struct {
	v interface{}
}

// New returns an empty bag.
func New() *Props {
	return &Props{m: linkedhashmap.New()}
}

// FromMap copies m into a new bag, keys sorted.
func FromMap(m map[string]interface{}) *Props {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := New()
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Set stores value under key and returns p for chaining.
func (p *Props) Set(key string, value interface{}) *Props {
	p.m.Put(key, entry{value})
	return p
}

// Get returns the value under key. ok is true for every key that was set,
// including ones holding nil.
func (p *Props) Get(key string) (value interface{}, ok bool) {
	if p == nil {
		return nil, false
	}
	e, ok := p.m.Get(key)
	if !ok {
		return nil, false
	}
	return e.(entry).v, true
}

func (p *Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p *Props) Delete(key string) {
	if p == nil {
		return
	}
	p.m.Remove(key)
}

func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return p.m.Size()
}

// Keys returns the keys in insertion order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, p.m.Size())
	for _, k := range p.m.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Each calls fn for every entry in insertion order until fn returns an error.
func (p *Props) Each(fn func(key string, value interface{}) error) error {
	if p == nil {
		return nil
	}
	it := p.m.Iterator()
	for it.Next() {
		if err := fn(it.Key().(string), it.Value().(entry).v); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a shallow copy of p.
func (p *Props) Copy() *Props {
	c := New()
	if p == nil {
		return c
	}
	p.m.Each(func(k, v interface{}) {
		c.m.Put(k, v)
	})
	return c
}

// Map returns the entries as a plain map.
func (p *Props) Map() map[string]interface{} {
	out := make(map[string]interface{}, p.Len())
	if p == nil {
		return out
	}
	p.m.Each(func(k, v interface{}) {
		out[k.(string)] = v.(entry).v
	})
	return out
}

func (p *Props) String() string {
	parts := make([]string, 0, p.Len())
	_ = p.Each(func(k string, v interface{}) error {
		parts = append(parts, fmt.Sprintf("%s:%v", k, v))
		return nil
	})
	return "{" + strings.Join(parts, " ") + "}"
}
