package xcast

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

// TimeLayoutTag defines legacy time layout tag
const TimeLayoutTag = "timeLayout"

type (
	//Property represents struct field accessible by name
	Property struct {
		Name   string
		Type   reflect.Type
		Tag    reflect.StructTag
		Layout string
		//holders are value embedded structs leading to field
		holders []*xunsafe.Field
		field   *xunsafe.Field
		direct  bool
	}

	//Properties represents type properties indexed by name
	Properties struct {
		rType reflect.Type
		index map[string]int
		Items []*Property
	}
)

// Type returns owner struct type
func (p *Properties) Type() reflect.Type {
	return p.rType
}

// Lookup returns property for exact name or nil
func (p *Properties) Lookup(name string) *Property {
	index, ok := p.index[name]
	if !ok {
		return nil
	}
	return p.Items[index]
}

// Names returns property names in declaration order
func (p *Properties) Names() []string {
	var result = make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		result = append(result, item.Name)
	}
	return result
}

func (p *Properties) add(property *Property) {
	p.index[property.Name] = len(p.Items)
	p.Items = append(p.Items, property)
}

// Promoted returns true for fields promoted from embedded structs
func (p *Property) Promoted() bool {
	return len(p.holders) > 0
}

// IsTime returns true for time.Time and *time.Time properties
func (p *Property) IsTime() bool {
	return isTimeType(p.Type)
}

func (p *Property) holder(ptr unsafe.Pointer) unsafe.Pointer {
	for _, holder := range p.holders {
		ptr = holder.Pointer(ptr)
	}
	return ptr
}

// Value returns property value of struct pointed by ptr
func (p *Property) Value(ptr unsafe.Pointer) interface{} {
	holderPtr := p.holder(ptr)
	if p.direct {
		return p.field.Value(holderPtr)
	}
	return reflect.NewAt(p.Type, p.field.Pointer(holderPtr)).Elem().Interface()
}

// SetValue sets property value of struct pointed by ptr, value has to be of property type or nil
func (p *Property) SetValue(ptr unsafe.Pointer, value interface{}) {
	holderPtr := p.holder(ptr)
	if p.direct && value != nil {
		p.field.SetValue(holderPtr, value)
		return
	}
	target := reflect.NewAt(p.Type, p.field.Pointer(holderPtr)).Elem()
	if value == nil {
		target.Set(reflect.Zero(p.Type))
		return
	}
	target.Set(reflect.ValueOf(value))
}

// NewProperties creates properties for exported fields of supplied struct type,
// fields promoted from value embedded structs are included
func NewProperties(rType reflect.Type) (*Properties, error) {
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("%w: expected struct, but had %v", ErrInvalidEntity, rType)
	}
	result := &Properties{rType: structType, index: make(map[string]int)}
	for _, field := range reflect.VisibleFields(structType) {
		if !field.IsExported() {
			continue
		}
		holders, ok := holdersOf(structType, field.Index)
		if !ok {
			continue
		}
		result.add(newProperty(field, holders))
	}
	return result, nil
}

// holdersOf returns embedded struct fields leading to field index, ok is false when an embedded pointer is on the way
func holdersOf(structType reflect.Type, index []int) ([]*xunsafe.Field, bool) {
	var holders []*xunsafe.Field
	current := structType
	for _, i := range index[:len(index)-1] {
		field := current.Field(i)
		if field.Type.Kind() != reflect.Struct {
			return nil, false
		}
		holders = append(holders, xunsafe.NewField(field))
		current = field.Type
	}
	return holders, true
}

func newProperty(field reflect.StructField, holders []*xunsafe.Field) *Property {
	return &Property{
		Name:    field.Name,
		Type:    field.Type,
		Tag:     field.Tag,
		Layout:  timeLayout(field),
		holders: holders,
		field:   xunsafe.NewField(field),
		direct:  isDirect(field.Type),
	}
}

// isDirect returns true for predeclared basic types xunsafe reads and writes without reflection
func isDirect(rType reflect.Type) bool {
	if rType.PkgPath() != "" {
		return false
	}
	switch rType.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func timeLayout(field reflect.StructField) string {
	if !isTimeType(field.Type) {
		return ""
	}
	if tag, err := format.Parse(field.Tag); err == nil && tag != nil {
		if tag.TimeLayout != "" {
			return tag.TimeLayout
		}
		if tag.DateFormat != "" {
			return ftime.DateFormatToTimeLayout(tag.DateFormat)
		}
	}
	return strings.TrimSpace(field.Tag.Get(TimeLayoutTag))
}
