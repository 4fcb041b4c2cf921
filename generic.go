package xcast

import "reflect"

// AsWith coerces value to T with engine, returning the first defaultValue (or zero T) when conversion is not possible
func AsWith[T any](engine *Engine, value interface{}, defaultValue ...T) T {
	var fallback T
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	result := engine.CoerceOrDefault(value, reflect.TypeOf((*T)(nil)).Elem(), fallback)
	if typed, ok := result.(T); ok {
		return typed
	}
	return fallback
}

// As coerces value to T with default engine
func As[T any](value interface{}, defaultValue ...T) T {
	return AsWith[T](Default(), value, defaultValue...)
}

// IsWith returns true if engine can coerce value to T
func IsWith[T any](engine *Engine, value interface{}) bool {
	return engine.IsConvertible(value, reflect.TypeOf((*T)(nil)).Elem())
}

// Is returns true if default engine can coerce value to T
func Is[T any](value interface{}) bool {
	return IsWith[T](Default(), value)
}
