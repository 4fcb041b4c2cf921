package xcast

import (
	"reflect"
	"sync"

	"github.com/viant/xcast/enum"
)

var defaultAccessor = sync.OnceValue(func() *Accessor {
	return NewAccessor()
})

// Default returns default engine
func Default() *Engine {
	return defaultAccessor().engine
}

// DefaultAccessor returns default property accessor
func DefaultAccessor() *Accessor {
	return defaultAccessor()
}

// RegisterEnum registers E members with default engine
func RegisterEnum[E enum.Member](members ...E) (*enum.Type, error) {
	return enum.Register(Default().enums, members...)
}

// Coerce converts value to target with default engine
func Coerce(value interface{}, target reflect.Type) interface{} {
	return Default().Coerce(value, target)
}

// CoerceOrDefault converts value to target with default engine
func CoerceOrDefault(value interface{}, target reflect.Type, defaultValue interface{}) interface{} {
	return Default().CoerceOrDefault(value, target, defaultValue)
}

// IsConvertible returns true if default engine can convert value to target
func IsConvertible(value interface{}, target reflect.Type) bool {
	return Default().IsConvertible(value, target)
}

// ToSimpleString returns value string form with default engine
func ToSimpleString(value interface{}) string {
	return Default().ToSimpleString(value)
}

// GetProperty returns named property with default accessor
func GetProperty(entity interface{}, name string) (interface{}, error) {
	return defaultAccessor().GetProperty(entity, name)
}

// SetProperty sets named property with default accessor
func SetProperty(entity interface{}, name string, value interface{}) error {
	return defaultAccessor().SetProperty(entity, name, value)
}
