package conv

import (
	"database/sql/driver"
	"encoding"
	"fmt"
	"reflect"
	"time"
)

var (
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType        = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType           = reflect.TypeOf((*error)(nil)).Elem()
	valuerType          = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
)

// IsInteger returns true for signed and unsigned integer kinds
func IsInteger(kind reflect.Kind) bool {
	return isSigned(kind) || isUnsigned(kind)
}

func isSigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(kind reflect.Kind) bool {
	return IsInteger(kind) || kind == reflect.Float32 || kind == reflect.Float64
}

func isPrimitive(kind reflect.Kind) bool {
	return isNumber(kind) || kind == reflect.Bool || kind == reflect.String
}

func isBytes(rType reflect.Type) bool {
	return rType.Kind() == reflect.Slice && rType.Elem().Kind() == reflect.Uint8
}

func isText(rType reflect.Type) bool {
	return rType.Kind() == reflect.String || isBytes(rType)
}

func isTextUnmarshaler(rType reflect.Type) bool {
	return rType.Kind() != reflect.Ptr && reflect.PointerTo(rType).Implements(textUnmarshalerType)
}

func textOf(value reflect.Value) string {
	if value.Kind() == reflect.String {
		return value.String()
	}
	return string(value.Bytes())
}

func indirectType(rType reflect.Type) reflect.Type {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType
}

// basic returns value as a predeclared go type so that named types convert like their underlying ones
func basic(value reflect.Value) interface{} {
	switch value.Kind() {
	case reflect.Bool:
		return value.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Uint()
	case reflect.Float32:
		return float32(value.Float())
	case reflect.Float64:
		return value.Float()
	case reflect.String:
		return value.String()
	case reflect.Slice:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return value.Bytes()
		}
	}
	return value.Interface()
}
