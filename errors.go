package xcast

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrPropertyNotFound is returned when a named property does not exist on the entity type
	ErrPropertyNotFound = errors.New("property not found")
	// ErrTypeMismatch is returned when a value cannot be reconciled with the declared property type
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidEntity is returned when the entity is not a struct or pointer to struct
	ErrInvalidEntity = errors.New("invalid entity")
)

// PropertyNotFoundError represents an unknown property error
type PropertyNotFoundError struct {
	Type reflect.Type
	Name string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("%v: %v.%v", ErrPropertyNotFound, e.Type, e.Name)
}

// Is reports whether target is ErrPropertyNotFound
func (e *PropertyNotFoundError) Is(target error) bool {
	return target == ErrPropertyNotFound
}

// TypeMismatchError represents a failed property assignment
type TypeMismatchError struct {
	Name     string
	Value    reflect.Type
	Declared reflect.Type
	Err      error
}

func (e *TypeMismatchError) Error() string {
	value := "nil"
	if e.Value != nil {
		value = e.Value.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: cannot assign %v to %v %v: %v", ErrTypeMismatch, value, e.Name, e.Declared, e.Err)
	}
	return fmt.Sprintf("%v: cannot assign %v to %v %v", ErrTypeMismatch, value, e.Name, e.Declared)
}

// Is reports whether target is ErrTypeMismatch
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}
