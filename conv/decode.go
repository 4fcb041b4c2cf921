package conv

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// decode maps map or struct input into map or struct dest
func (c *kindConverter) decode(value interface{}, dest reflect.Type) (interface{}, error) {
	result := reflect.New(dest)
	options := c.registry.options
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result.Interface(),
		TagName:          options.TagName,
		WeaklyTypedInput: options.WeaklyTyped,
		ErrorUnused:      !options.IgnoreUnmapped,
		Squash:           true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			c.timeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			c.integerHook,
		),
	})
	if err != nil {
		return nil, err
	}
	if err = decoder.Decode(value); err != nil {
		return nil, err
	}
	return result.Elem().Interface(), nil
}

func (c *kindConverter) timeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseTime(c.layout(), reflect.ValueOf(data).String())
}

// integerHook keeps decimal text decimal for integer fields, mapstructure would read "010" as octal
func (c *kindConverter) integerHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || !IsInteger(to.Kind()) || to == durationType {
		return data, nil
	}
	text := reflect.ValueOf(data)
	if strings.TrimSpace(text.String()) == "" {
		return data, nil
	}
	return c.toScalar(text, to)
}
