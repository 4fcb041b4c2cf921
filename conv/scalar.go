package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

func (c *kindConverter) toScalar(src reflect.Value, dest reflect.Type) (interface{}, error) {
	result := reflect.New(dest).Elem()
	value := basic(src)
	if dest.Kind() != reflect.String && isText(src.Type()) {
		value = strings.TrimSpace(textOf(src))
	}
	switch dest.Kind() {
	case reflect.String:
		text, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}
		result.SetString(text)
	case reflect.Bool:
		flag, err := cast.ToBoolE(value)
		if err != nil {
			return nil, err
		}
		result.SetBool(flag)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		if result.OverflowInt(n) {
			return nil, fmt.Errorf("value %v overflows %v", value, dest)
		}
		result.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toUint64(value)
		if err != nil {
			return nil, err
		}
		if result.OverflowUint(n) {
			return nil, fmt.Errorf("value %v overflows %v", value, dest)
		}
		result.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, err
		}
		if result.OverflowFloat(f) {
			return nil, fmt.Errorf("value %v overflows %v", value, dest)
		}
		result.SetFloat(f)
	default:
		return nil, fmt.Errorf("cannot convert %v to %v", src.Type(), dest)
	}
	return result.Interface(), nil
}

// toInt64 reads text as a base 10 number, cast would treat a leading zero as octal
func toInt64(value interface{}) (int64, error) {
	if text, ok := value.(string); ok {
		return strconv.ParseInt(text, 10, 64)
	}
	return cast.ToInt64E(value)
}

func toUint64(value interface{}) (uint64, error) {
	if text, ok := value.(string); ok {
		return strconv.ParseUint(text, 10, 64)
	}
	return cast.ToUint64E(value)
}
