// Package enum registers named integer types together with their member names.
//
// Go has no enumeration kind; a type such as
//
//	type Color int
//
//	const (
//	    Red Color = iota + 1
//	    Green
//	)
//
// becomes an enum once registered:
//
//	enum.Register(registry, Red, Green)
//
// Registered types convert from integers and exact member names and render as member names.
package enum

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/viant/xcast/conv"
)

// Member represents an integer type that renders its members by name
type Member interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	fmt.Stringer
}

// Type represents registered enum type
type Type struct {
	rType   reflect.Type
	names   []string
	byName  map[string]reflect.Value
	byValue map[uint64]string
}

// Type returns enum go type
func (t *Type) Type() reflect.Type {
	return t.rType
}

// Names returns member names ordered by member value
func (t *Type) Names() []string {
	return append([]string(nil), t.names...)
}

// FromInt returns the member whose underlying value equals value
func (t *Type) FromInt(value reflect.Value) (interface{}, error) {
	if !conv.IsInteger(value.Kind()) {
		return nil, fmt.Errorf("cannot convert %v to %v: not an integer", value.Type(), t.rType)
	}
	result := reflect.New(t.rType).Elem()
	if err := setInteger(result, value); err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

// Parse returns the member with exactly matching name
func (t *Type) Parse(name string) (interface{}, error) {
	member, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("invalid %v member: %q", t.rType, name)
	}
	return member.Interface(), nil
}

// Name returns member name for value of the enum type
func (t *Type) Name(value interface{}) (string, bool) {
	rValue := reflect.ValueOf(value)
	if !rValue.IsValid() || rValue.Type() != t.rType {
		return "", false
	}
	name, ok := t.byValue[bits(rValue)]
	return name, ok
}

// Format returns member name, or the underlying number for values without a name
func (t *Type) Format(value interface{}) string {
	if name, ok := t.Name(value); ok {
		return name
	}
	rValue := reflect.ValueOf(value)
	if isSigned(rValue.Kind()) {
		return strconv.FormatInt(rValue.Int(), 10)
	}
	return strconv.FormatUint(rValue.Uint(), 10)
}

func newType(rType reflect.Type, members map[string]reflect.Value) *Type {
	result := &Type{
		rType:   rType,
		byName:  make(map[string]reflect.Value, len(members)),
		byValue: make(map[uint64]string, len(members)),
	}
	for name, member := range members {
		result.byName[name] = member
		key := bits(member)
		if prev, ok := result.byValue[key]; !ok || name < prev { // aliases render with the lowest name
			result.byValue[key] = name
		}
		result.names = append(result.names, name)
	}
	sort.Slice(result.names, func(i, j int) bool {
		left, right := result.byName[result.names[i]], result.byName[result.names[j]]
		if isSigned(rType.Kind()) {
			if left.Int() != right.Int() {
				return left.Int() < right.Int()
			}
		} else if left.Uint() != right.Uint() {
			return left.Uint() < right.Uint()
		}
		return result.names[i] < result.names[j]
	})
	return result
}

func bits(value reflect.Value) uint64 {
	if isSigned(value.Kind()) {
		return uint64(value.Int())
	}
	return value.Uint()
}

// setInteger assigns integer src to integer dest, failing on overflow
func setInteger(dest, src reflect.Value) error {
	if isSigned(src.Kind()) {
		n := src.Int()
		if isSigned(dest.Kind()) {
			if dest.OverflowInt(n) {
				return fmt.Errorf("value %v overflows %v", n, dest.Type())
			}
			dest.SetInt(n)
			return nil
		}
		if n < 0 || dest.OverflowUint(uint64(n)) {
			return fmt.Errorf("value %v overflows %v", n, dest.Type())
		}
		dest.SetUint(uint64(n))
		return nil
	}
	n := src.Uint()
	if isSigned(dest.Kind()) {
		if n > math.MaxInt64 || dest.OverflowInt(int64(n)) {
			return fmt.Errorf("value %v overflows %v", n, dest.Type())
		}
		dest.SetInt(int64(n))
		return nil
	}
	if dest.OverflowUint(n) {
		return fmt.Errorf("value %v overflows %v", n, dest.Type())
	}
	dest.SetUint(n)
	return nil
}

func isSigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}
