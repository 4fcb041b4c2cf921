package xcast

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/viant/xcast/cache"
	"github.com/viant/xcast/conv"
	"github.com/viant/xunsafe"
)

// Accessor reads and writes struct properties by name
type Accessor struct {
	engine *Engine
	cache  cache.Cache
	logger *slog.Logger
}

// Engine returns accessor coercion engine
func (a *Accessor) Engine() *Engine {
	return a.engine
}

// Properties returns cached properties of entity type, entity can be a value, pointer or reflect.Type
func (a *Accessor) Properties(entity interface{}) (*Properties, error) {
	rType, ok := entity.(reflect.Type)
	if !ok {
		rType = reflect.TypeOf(entity)
	}
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("%w: expected struct or pointer to struct, but had %v", ErrInvalidEntity, rType)
	}
	return a.properties(structType)
}

func (a *Accessor) properties(structType reflect.Type) (*Properties, error) {
	key := typeKey(structType)
	value, err := a.cache.Get(key, a.factory(structType))
	if err != nil {
		return nil, err
	}
	properties := value.(*Properties)
	if properties.rType == structType {
		return properties, nil
	}
	value, err = a.cache.Get(identityKey(structType), a.factory(structType))
	if err != nil {
		return nil, err
	}
	return value.(*Properties), nil
}

func (a *Accessor) factory(structType reflect.Type) func() (interface{}, error) {
	return func() (interface{}, error) {
		a.logger.Debug("reflecting properties", "type", structType.String())
		return NewProperties(structType)
	}
}

// GetProperty returns value of named property
func (a *Accessor) GetProperty(entity interface{}, name string) (interface{}, error) {
	if IsNull(entity) {
		return nil, fmt.Errorf("%w: entity was nil", ErrInvalidEntity)
	}
	properties, err := a.Properties(entity)
	if err != nil {
		return nil, err
	}
	property := properties.Lookup(name)
	if property == nil {
		return nil, &PropertyNotFoundError{Type: properties.rType, Name: name}
	}
	rValue := reflect.ValueOf(entity)
	if rValue.Kind() != reflect.Ptr {
		holder := reflect.New(rValue.Type())
		holder.Elem().Set(rValue)
		rValue = holder
	}
	return property.Value(xunsafe.AsPointer(rValue.Interface())), nil
}

// SetProperty sets named property, converting value into declared property type when needed
func (a *Accessor) SetProperty(entity interface{}, name string, value interface{}) error {
	rValue := reflect.ValueOf(entity)
	if !rValue.IsValid() || rValue.Kind() != reflect.Ptr || rValue.IsNil() {
		return fmt.Errorf("%w: expected non nil pointer to struct, but had %T", ErrInvalidEntity, entity)
	}
	properties, err := a.Properties(entity)
	if err != nil {
		return err
	}
	property := properties.Lookup(name)
	if property == nil {
		return &PropertyNotFoundError{Type: properties.rType, Name: name}
	}
	converted, err := a.convert(property, value)
	if err != nil {
		return &TypeMismatchError{Name: name, Value: reflect.TypeOf(value), Declared: property.Type, Err: err}
	}
	property.SetValue(xunsafe.AsPointer(entity), converted)
	return nil
}

// convert reconciles value with declared property type
func (a *Accessor) convert(property *Property, value interface{}) (result interface{}, err error) {
	declared := property.Type
	if value == nil {
		if conv.Nillable(declared) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot use nil as %v", declared)
	}
	valueType := reflect.TypeOf(value)
	if valueType == declared {
		return value, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("conversion panic: %v", r)
		}
	}()
	if property.Layout != "" {
		if text, ok := value.(string); ok {
			return a.parseTime(property, text)
		}
	}
	registry := a.engine.registry
	var failed error
	if converter := registry.Lookup(declared); converter.CanConvertFrom(valueType) {
		converted, err := converter.ConvertFrom(value)
		if err == nil {
			if converted, err = conv.Normalize(converted, declared); err == nil {
				return converted, nil
			}
		}
		failed = err
	}
	if converter := registry.Lookup(valueType); converter.CanConvertTo(declared) {
		converted, err := converter.ConvertTo(value, declared)
		if err == nil {
			if converted, err = conv.Normalize(converted, declared); err == nil {
				return converted, nil
			}
		}
		failed = err
	}
	if failed == nil {
		failed = fmt.Errorf("no converter from %v to %v", valueType, declared)
	}
	return nil, failed
}

func (a *Accessor) parseTime(property *Property, text string) (interface{}, error) {
	ts, err := conv.ParseTime(property.Layout, text)
	if err != nil {
		return nil, err
	}
	if property.Type == timePtrType {
		return &ts, nil
	}
	return ts, nil
}

// NewAccessor creates a property accessor
func NewAccessor(opts ...Option) *Accessor {
	o := newOptions(opts)
	ret := &Accessor{engine: o.engine, cache: o.cache, logger: o.logger}
	if ret.engine == nil {
		ret.engine = New(opts...)
	}
	if ret.cache == nil {
		ret.cache = cache.NewMemory()
	}
	return ret
}
