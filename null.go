package xcast

import (
	"database/sql/driver"
	"reflect"
)

// NullValue represents explicit null marker type
type NullValue struct{}

// Null is the explicit null marker
var Null = NullValue{}

// IsNull returns true for absent values: nil, nil pointers, maps, slices, funcs and chans,
// the Null marker, and driver.Valuer values without a database value
func IsNull(value interface{}) bool {
	if value == nil {
		return true
	}
	if _, ok := value.(NullValue); ok {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if rValue.IsNil() {
			return true
		}
	}
	if valuer, ok := value.(driver.Valuer); ok {
		dbValue, err := valuer.Value()
		return err == nil && dbValue == nil
	}
	return false
}
