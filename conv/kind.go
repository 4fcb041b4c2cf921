package conv

import (
	"database/sql/driver"
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// kindConverter is the default converter for types without a registered converter
type kindConverter struct {
	rType    reflect.Type
	registry *Registry
}

func (c *kindConverter) CanConvertFrom(src reflect.Type) bool {
	if src == nil {
		return false
	}
	dest := c.rType
	if _, ok := c.registry.conversion(src, dest); ok {
		return true
	}
	switch {
	case dest == timeType:
		return src == timeType || isText(src) || isNumber(src.Kind())
	case dest == durationType:
		return isText(src) || isNumber(src.Kind())
	case isText(src) && isTextUnmarshaler(dest):
		return true
	}
	switch dest.Kind() {
	case reflect.Interface:
		return src.Implements(dest)
	case reflect.String:
		if c.registry.renders(src) {
			return false
		}
		return isPrimitive(src.Kind()) || isBytes(src)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return isPrimitive(src.Kind()) || isBytes(src)
	case reflect.Ptr:
		return src.AssignableTo(dest.Elem()) || c.registry.Lookup(dest.Elem()).CanConvertFrom(src)
	case reflect.Slice:
		if isBytes(dest) && isText(src) {
			return true
		}
		switch src.Kind() {
		case reflect.Slice, reflect.Array:
			return true
		case reflect.String:
			return isPrimitive(dest.Elem().Kind())
		}
	case reflect.Map, reflect.Struct:
		kind := indirectType(src).Kind()
		return kind == reflect.Map || kind == reflect.Struct
	}
	return false
}

func (c *kindConverter) ConvertFrom(value interface{}) (interface{}, error) {
	dest := c.rType
	if value == nil {
		return Normalize(nil, dest)
	}
	src := reflect.ValueOf(value)
	if fn, ok := c.registry.conversion(src.Type(), dest); ok {
		result := reflect.New(dest)
		if err := fn(value, result.Interface(), c.registry.options); err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
	switch {
	case dest == timeType:
		return c.toTime(src)
	case dest == durationType:
		return cast.ToDurationE(basic(src))
	case isText(src.Type()) && isTextUnmarshaler(dest):
		ptr := reflect.New(dest)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(textOf(src))); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
	switch dest.Kind() {
	case reflect.Interface:
		if src.Type().Implements(dest) {
			return value, nil
		}
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return c.toScalar(src, dest)
	case reflect.Ptr:
		elem, err := c.registry.ConvertValue(value, dest.Elem())
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(dest.Elem())
		if elem != nil {
			ptr.Elem().Set(reflect.ValueOf(elem))
		}
		return ptr.Interface(), nil
	case reflect.Slice:
		return c.toSlice(src, dest)
	case reflect.Map, reflect.Struct:
		return c.decode(value, dest)
	}
	return nil, fmt.Errorf("unsupported conversion: %v to %v", src.Type(), dest)
}

func (c *kindConverter) CanConvertTo(dest reflect.Type) bool {
	if dest == nil {
		return false
	}
	src := c.rType
	if _, ok := c.registry.conversion(src, dest); ok {
		return true
	}
	if src.Implements(valuerType) {
		return true
	}
	switch dest.Kind() {
	case reflect.String:
		return src == timeType || isPrimitive(src.Kind()) ||
			src.Implements(textMarshalerType) || src.Implements(stringerType) || src.Implements(errorType)
	case reflect.Slice:
		return isBytes(dest) && src.Implements(textMarshalerType)
	}
	return false
}

func (c *kindConverter) ConvertTo(value interface{}, dest reflect.Type) (interface{}, error) {
	if value == nil {
		return nil, fmt.Errorf("cannot convert nil to %v", dest)
	}
	src := reflect.ValueOf(value)
	if fn, ok := c.registry.conversion(src.Type(), dest); ok {
		result := reflect.New(dest)
		if err := fn(value, result.Interface(), c.registry.options); err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
	var text string
	switch actual := value.(type) {
	case driver.Valuer:
		dbValue, err := actual.Value()
		if err != nil {
			return nil, err
		}
		if dbValue == nil {
			return nil, fmt.Errorf("cannot convert null %T to %v", value, dest)
		}
		return c.registry.ConvertValue(dbValue, dest)
	case time.Time:
		text = actual.Format(c.layout())
	case encoding.TextMarshaler:
		data, err := actual.MarshalText()
		if err != nil {
			return nil, err
		}
		text = string(data)
	case fmt.Stringer:
		text = actual.String()
	case error:
		text = actual.Error()
	default:
		if dest.Kind() == reflect.String && isPrimitive(src.Kind()) {
			return c.toScalar(src, dest)
		}
		return nil, fmt.Errorf("unsupported conversion: %v to %v", src.Type(), dest)
	}
	switch {
	case dest.Kind() == reflect.String:
		return reflect.ValueOf(text).Convert(dest).Interface(), nil
	case isBytes(dest):
		return reflect.ValueOf([]byte(text)).Convert(dest).Interface(), nil
	}
	return nil, fmt.Errorf("unsupported conversion: %v to %v", src.Type(), dest)
}

func (c *kindConverter) layout() string {
	return c.registry.options.DateLayout
}
