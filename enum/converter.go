package enum

import (
	"fmt"
	"reflect"

	"github.com/viant/xcast/conv"
)

// Converter converts enum members from integers and names, and into names and integers
type Converter struct {
	*Type
}

func (c *Converter) CanConvertFrom(src reflect.Type) bool {
	if src == nil {
		return false
	}
	return src == c.rType || conv.IsInteger(src.Kind()) || src.Kind() == reflect.String
}

func (c *Converter) CanConvertTo(dest reflect.Type) bool {
	if dest == nil {
		return false
	}
	return dest.Kind() == reflect.String || conv.IsInteger(dest.Kind())
}

func (c *Converter) ConvertFrom(value interface{}) (interface{}, error) {
	rValue := reflect.ValueOf(value)
	if !rValue.IsValid() {
		return nil, fmt.Errorf("cannot convert nil to %v", c.rType)
	}
	switch {
	case rValue.Type() == c.rType:
		return value, nil
	case conv.IsInteger(rValue.Kind()):
		return c.FromInt(rValue)
	case rValue.Kind() == reflect.String:
		return c.Parse(rValue.String())
	}
	return nil, fmt.Errorf("cannot convert %T to %v", value, c.rType)
}

func (c *Converter) ConvertTo(value interface{}, dest reflect.Type) (interface{}, error) {
	rValue := reflect.ValueOf(value)
	if !rValue.IsValid() || rValue.Type() != c.rType {
		return nil, fmt.Errorf("cannot convert %T as %v", value, c.rType)
	}
	if dest.Kind() == reflect.String {
		return reflect.ValueOf(c.Format(value)).Convert(dest).Interface(), nil
	}
	if !conv.IsInteger(dest.Kind()) {
		return nil, fmt.Errorf("cannot convert %v to %v", c.rType, dest)
	}
	result := reflect.New(dest).Elem()
	if err := setInteger(result, rValue); err != nil {
		return nil, err
	}
	return result.Interface(), nil
}
