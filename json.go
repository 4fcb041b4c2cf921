package xcast

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
)

type (
	// JSONOption represents ToJSON option
	JSONOption func(o *jsonOptions)

	jsonOptions struct {
		omitNull bool
		indent   string
	}
)

// OmitNull controls whether null object members are dropped, they are dropped by default
func OmitNull(flag bool) JSONOption {
	return func(o *jsonOptions) {
		o.omitNull = flag
	}
}

// Indented renders JSON with two space indentation
func Indented() JSONOption {
	return func(o *jsonOptions) {
		o.indent = "  "
	}
}

// ToJSON returns value JSON text, null object members are omitted unless OmitNull(false) is supplied.
// Null array elements are kept.
func (e *Engine) ToJSON(value interface{}, opts ...JSONOption) (string, error) {
	o := &jsonOptions{omitNull: true}
	for _, opt := range opts {
		opt(o)
	}
	data, err := json.Marshal(value)
	if err != nil {
		e.logger.Debug("json encoding failed", "value", fmt.Sprintf("%T", value), "error", err)
		return "", fmt.Errorf("failed to encode %T as JSON: %w", value, err)
	}
	if o.omitNull {
		if data, err = omitNulls(data); err != nil {
			return "", fmt.Errorf("failed to encode %T as JSON: %w", value, err)
		}
	}
	if o.indent != "" {
		buffer := bytes.Buffer{}
		if err = json.Indent(&buffer, data, "", o.indent); err != nil {
			return "", fmt.Errorf("failed to indent %T JSON: %w", value, err)
		}
		data = buffer.Bytes()
	}
	return string(data), nil
}

// ToJSON returns value JSON text using default engine
func ToJSON(value interface{}, opts ...JSONOption) (string, error) {
	return Default().ToJSON(value, opts...)
}

func omitNulls(data []byte) ([]byte, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	buffer := bytes.Buffer{}
	if err = writeWithoutNulls(&buffer, value, dataType); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func writeWithoutNulls(buffer *bytes.Buffer, value []byte, dataType jsonparser.ValueType) error {
	switch dataType {
	case jsonparser.Object:
		buffer.WriteByte('{')
		count := 0
		err := jsonparser.ObjectEach(value, func(key []byte, item []byte, itemType jsonparser.ValueType, _ int) error {
			if itemType == jsonparser.Null {
				return nil
			}
			if count > 0 {
				buffer.WriteByte(',')
			}
			count++
			//keys are unescaped by ObjectEach
			encodedKey, err := json.Marshal(string(key))
			if err != nil {
				return err
			}
			buffer.Write(encodedKey)
			buffer.WriteByte(':')
			return writeWithoutNulls(buffer, item, itemType)
		})
		buffer.WriteByte('}')
		return err
	case jsonparser.Array:
		buffer.WriteByte('[')
		count := 0
		var failed error
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if failed != nil {
				return
			}
			if count > 0 {
				buffer.WriteByte(',')
			}
			count++
			failed = writeWithoutNulls(buffer, item, itemType)
		})
		buffer.WriteByte(']')
		if err != nil {
			return err
		}
		return failed
	case jsonparser.String:
		buffer.WriteByte('"')
		buffer.Write(value)
		buffer.WriteByte('"')
	default:
		buffer.Write(value)
	}
	return nil
}
