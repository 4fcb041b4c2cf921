package conv

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTime parses text with layout first, then with common layouts
func ParseTime(layout, text string) (time.Time, error) {
	if layout != "" {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts, nil
		}
	}
	for _, candidate := range timeLayouts {
		if ts, err := time.Parse(candidate, text); err == nil {
			return ts, nil
		}
	}
	ts, err := cast.ToTimeInDefaultLocationE(text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time string '%s': %w", text, err)
	}
	return ts, nil
}

func (c *kindConverter) toTime(src reflect.Value) (interface{}, error) {
	switch src.Kind() {
	case reflect.String:
		return ParseTime(c.layout(), src.String())
	case reflect.Slice:
		if isBytes(src.Type()) {
			return ParseTime(c.layout(), string(src.Bytes()))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return unixTime(src.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unixTime(int64(src.Uint())), nil
	case reflect.Float32, reflect.Float64:
		seconds := int64(src.Float())
		nanos := int64((src.Float() - float64(seconds)) * 1e9)
		return time.Unix(seconds, nanos), nil
	case reflect.Struct:
		if src.Type() == timeType {
			return src.Interface(), nil
		}
	}
	return nil, fmt.Errorf("cannot convert %v to time.Time", src.Type())
}

func unixTime(value int64) time.Time {
	if value > 1e10 { // nanoseconds
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}
