package cache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is used when LRU capacity is not positive
const DefaultCapacity = 512

type entry struct {
	key   string
	value interface{}
}

// LRU represents a bounded cache with least recently used eviction
type LRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
	group    singleflight.Group
}

// Get returns memoized value or computes it once with factory
func (c *LRU) Get(key string, factory func() (interface{}, error)) (interface{}, error) {
	if value, ok := c.Lookup(key); ok {
		return value, nil
	}
	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		if value, ok := c.Lookup(key); ok {
			return value, nil
		}
		value, err := factory()
		if err != nil {
			return nil, err
		}
		c.Set(key, value)
		return value, nil
	})
	return value, err
}

// Lookup returns cached value without computing it
func (c *LRU) Lookup(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(entry).value, true
	}
	return nil, false
}

// Set stores value, evicting the least recently used entry when over capacity
func (c *LRU) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value = entry{key: key, value: value}
		c.order.MoveToFront(elem)
		return
	}
	elem := c.order.PushFront(entry{key: key, value: value})
	c.items[key] = elem
	if c.order.Len() > c.capacity {
		if last := c.order.Back(); last != nil {
			c.order.Remove(last)
			delete(c.items, last.Value.(entry).key)
		}
	}
}

// Len returns number of cached entries
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// NewLRU creates LRU cache
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU{
		capacity: capacity,
		items:    map[string]*list.Element{},
		order:    list.New(),
	}
}
