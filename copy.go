package xcast

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

type (
	// Codec represents serialization codec used for deep copy
	Codec interface {
		Marshal(value interface{}) ([]byte, error)
		Unmarshal(data []byte, dest interface{}) error
	}

	// JSONCodec represents JSON codec
	JSONCodec struct{}

	// MsgpackCodec represents MessagePack codec
	MsgpackCodec struct{}
)

func (c *JSONCodec) Marshal(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

func (c *JSONCodec) Unmarshal(data []byte, dest interface{}) error {
	return json.Unmarshal(data, dest)
}

func (c *MsgpackCodec) Marshal(value interface{}) ([]byte, error) {
	return msgpack.Marshal(value)
}

func (c *MsgpackCodec) Unmarshal(data []byte, dest interface{}) error {
	return msgpack.Unmarshal(data, dest)
}

// Copy returns deep copy of value made by codec round trip, pointers are copied into new pointers
func (e *Engine) Copy(value interface{}) (interface{}, error) {
	if IsNull(value) {
		return value, nil
	}
	rType := reflect.TypeOf(value)
	data, err := e.codec.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to copy %v: %w", rType, err)
	}
	if rType.Kind() == reflect.Ptr {
		result := reflect.New(rType.Elem())
		if err = e.codec.Unmarshal(data, result.Interface()); err != nil {
			return nil, fmt.Errorf("failed to copy %v: %w", rType, err)
		}
		return result.Interface(), nil
	}
	result := reflect.New(rType)
	if err = e.codec.Unmarshal(data, result.Interface()); err != nil {
		return nil, fmt.Errorf("failed to copy %v: %w", rType, err)
	}
	return result.Elem().Interface(), nil
}

// CopyWith returns deep copy of value made by engine codec
func CopyWith[T any](engine *Engine, value T) (T, error) {
	var zero T
	copied, err := engine.Copy(value)
	if err != nil || copied == nil {
		return zero, err
	}
	result, ok := copied.(T)
	if !ok {
		return zero, fmt.Errorf("failed to copy: expected %T, but had %T", zero, copied)
	}
	return result, nil
}

// Copy returns deep copy of value made by default engine codec
func Copy[T any](value T) (T, error) {
	return CopyWith(Default(), value)
}
