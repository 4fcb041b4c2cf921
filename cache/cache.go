// Package cache provides memoizing key-value caches used for reflected type metadata.
// Both implementations guarantee that concurrent first lookups of the same key run the
// factory once; failed factories are not memoized.
package cache

// Cache represents a memoizing cache
type Cache interface {
	//Get returns cached value for key, computing it with factory on miss
	Get(key string, factory func() (interface{}, error)) (interface{}, error)
	//Set stores value for key
	Set(key string, value interface{})
}
