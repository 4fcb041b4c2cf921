package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memory represents unbounded in-memory cache
type Memory struct {
	entries sync.Map
	group   singleflight.Group
}

// Get returns memoized value or computes it once with factory
func (m *Memory) Get(key string, factory func() (interface{}, error)) (interface{}, error) {
	if value, ok := m.entries.Load(key); ok {
		return value, nil
	}
	value, err, _ := m.group.Do(key, func() (interface{}, error) {
		if value, ok := m.entries.Load(key); ok {
			return value, nil
		}
		value, err := factory()
		if err != nil {
			return nil, err
		}
		m.entries.Store(key, value)
		return value, nil
	})
	return value, err
}

// Lookup returns cached value without computing it
func (m *Memory) Lookup(key string) (interface{}, bool) {
	return m.entries.Load(key)
}

// Set stores value
func (m *Memory) Set(key string, value interface{}) {
	m.entries.Store(key, value)
}

// NewMemory creates a memory cache
func NewMemory() *Memory {
	return &Memory{}
}
