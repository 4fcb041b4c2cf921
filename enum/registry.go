package enum

import (
	"fmt"
	"reflect"

	"github.com/viant/xcast/conv"
	"github.com/viant/xcast/internal/syncmap"
)

// Registry represents enum types
type Registry struct {
	types      *syncmap.Map[reflect.Type, *Type]
	converters *syncmap.Map[*Type, *Converter]
}

// Register registers rType members; member values must fit rType
func (r *Registry) Register(rType reflect.Type, members map[string]int64) (*Type, error) {
	if rType == nil || !conv.IsInteger(rType.Kind()) {
		return nil, fmt.Errorf("invalid enum type %v: expected integer kind", rType)
	}
	values := make(map[string]reflect.Value, len(members))
	for name, value := range members {
		member := reflect.New(rType).Elem()
		if err := setInteger(member, reflect.ValueOf(value)); err != nil {
			return nil, fmt.Errorf("invalid enum %v member %v: %w", rType, name, err)
		}
		values[name] = member
	}
	result := newType(rType, values)
	r.types.Put(rType, result)
	return result, nil
}

// Lookup returns registered enum type
func (r *Registry) Lookup(rType reflect.Type) (*Type, bool) {
	if rType == nil {
		return nil, false
	}
	return r.types.Get(rType)
}

// Converter returns a type converter for registered enum type
func (r *Registry) Converter(rType reflect.Type) (conv.TypeConverter, bool) {
	enumType, ok := r.Lookup(rType)
	if !ok {
		return nil, false
	}
	return r.converters.GetOrPut(enumType, func() *Converter {
		return &Converter{Type: enumType}
	}), true
}

// Register registers E with supplied members, named by their String method
func Register[E Member](r *Registry, members ...E) (*Type, error) {
	rType := reflect.TypeOf((*E)(nil)).Elem()
	values := make(map[string]reflect.Value, len(members))
	for _, member := range members {
		values[member.String()] = reflect.ValueOf(member)
	}
	result := newType(rType, values)
	r.types.Put(rType, result)
	return result, nil
}

// NewRegistry creates an enum registry
func NewRegistry() *Registry {
	return &Registry{
		types:      syncmap.New[reflect.Type, *Type](),
		converters: syncmap.New[*Type, *Converter](),
	}
}
