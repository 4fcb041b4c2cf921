package xcast

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/spf13/cast"
	"github.com/viant/xcast/conv"
	"github.com/viant/xcast/enum"
	"github.com/viant/xcast/token"
)

// Engine coerces arbitrary values into target types.
//
// CoerceOrDefault tries, in order: null check, identity, token extraction, enum value, enum target from integer,
// enum target from member name, target type converter and finally value type converter.
// The first applicable strategy decides the outcome; failures fall back to the default value.
type Engine struct {
	registry *conv.Registry
	enums    *enum.Registry
	codec    Codec
	logger   *slog.Logger
}

// Registry returns engine conversion registry, it extends the registry supplied with WithRegistry
// with enum and token converters; conversions registered here are visible to this engine only
func (e *Engine) Registry() *conv.Registry {
	return e.registry
}

// Enums returns enum registry
func (e *Engine) Enums() *enum.Registry {
	return e.enums
}

// Coerce converts value to target, returning zero value of target when conversion is not possible
func (e *Engine) Coerce(value interface{}, target reflect.Type) interface{} {
	if target == nil {
		return nil
	}
	return e.CoerceOrDefault(value, target, reflect.Zero(target).Interface())
}

// CoerceOrDefault converts value to target, returning defaultValue when value is null or conversion is not possible
func (e *Engine) CoerceOrDefault(value interface{}, target reflect.Type, defaultValue interface{}) (result interface{}) {
	if target == nil {
		return defaultValue
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("coercion recovered", "value", fmt.Sprintf("%T", value), "target", target.String(), "panic", r)
			result = defaultValue
		}
	}()
	if converted, ok := e.coerce(value, target); ok {
		return converted
	}
	return defaultValue
}

// IsConvertible returns true if value can be coerced into target
func (e *Engine) IsConvertible(value interface{}, target reflect.Type) (ok bool) {
	if target == nil {
		return false
	}
	if IsNull(value) {
		return conv.Nillable(target)
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	_, ok = e.coerce(value, target)
	return ok
}

// ToSimpleString returns value string form, enum members are rendered by name
func (e *Engine) ToSimpleString(value interface{}) string {
	if IsNull(value) {
		return ""
	}
	if enumType, ok := e.enums.Lookup(reflect.TypeOf(value)); ok {
		return enumType.Format(value)
	}
	if text, err := cast.ToStringE(value); err == nil {
		return text
	}
	return fmt.Sprint(value)
}

func (e *Engine) coerce(value interface{}, target reflect.Type) (interface{}, bool) {
	if IsNull(value) {
		return nil, false
	}
	valueType := reflect.TypeOf(value)
	if valueType.AssignableTo(target) {
		return value, true
	}
	if aToken, ok := value.(token.Token); ok {
		if _, isEnum := e.enums.Lookup(target); !isEnum {
			extracted, err := aToken.ExtractAs(target)
			return e.outcome(value, target, extracted, err)
		}
		natural, err := aToken.ExtractAs(anyType)
		if err != nil || IsNull(natural) {
			e.logger.Debug("token extraction failed", "target", target.String(), "error", err)
			return nil, false
		}
		value, valueType = natural, reflect.TypeOf(natural)
	}
	if _, ok := e.enums.Lookup(valueType); ok && valueType.Kind() == target.Kind() && valueType.ConvertibleTo(target) {
		return reflect.ValueOf(value).Convert(target).Interface(), true
	}
	if enumType, ok := e.enums.Lookup(target); ok {
		if conv.IsInteger(valueType.Kind()) {
			member, err := enumType.FromInt(reflect.ValueOf(value))
			return e.outcome(value, target, member, err)
		}
		member, err := enumType.Parse(e.ToSimpleString(value))
		return e.outcome(value, target, member, err)
	}
	if converter := e.registry.Lookup(target); converter.CanConvertFrom(valueType) {
		converted, err := converter.ConvertFrom(value)
		return e.outcome(value, target, converted, err)
	}
	if converter := e.registry.Lookup(valueType); converter.CanConvertTo(target) {
		converted, err := converter.ConvertTo(value, target)
		return e.outcome(value, target, converted, err)
	}
	return nil, false
}

// outcome normalizes converted value to target
func (e *Engine) outcome(value interface{}, target reflect.Type, converted interface{}, err error) (interface{}, bool) {
	if err == nil {
		converted, err = conv.Normalize(converted, target)
	}
	if err != nil {
		e.logger.Debug("coercion failed", "value", fmt.Sprintf("%T", value), "target", target.String(), "error", err)
		return nil, false
	}
	return converted, true
}

// New creates a coercion engine
func New(opts ...Option) *Engine {
	o := newOptions(opts)
	ret := &Engine{enums: o.enums, codec: o.codec, logger: o.logger}
	base := o.registry
	if base == nil {
		base = conv.NewRegistry(conv.DefaultOptions())
	}
	if ret.enums == nil {
		ret.enums = enum.NewRegistry()
	}
	if ret.codec == nil {
		ret.codec = &JSONCodec{}
	}
	ret.registry = base.Extend(ret.enums.Converter, token.Resolve)
	return ret
}
