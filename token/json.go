package token

import (
	"fmt"
	"reflect"

	"github.com/buger/jsonparser"
	"github.com/francoispqt/gojay"
	"github.com/goccy/go-json"
	"github.com/viant/xcast/conv"
)

// JSON represents a JSON document node
type JSON struct {
	value []byte
	kind  jsonparser.ValueType
	*options
}

// Kind returns node value type
func (j *JSON) Kind() jsonparser.ValueType {
	return j.kind
}

// Raw returns node bytes, string nodes are returned without quotes
func (j *JSON) Raw() []byte {
	return j.value
}

// Get returns child node located by keys, array elements use "[index]" keys
func (j *JSON) Get(keys ...string) (*JSON, error) {
	if len(keys) == 0 {
		return j, nil
	}
	if j.kind != jsonparser.Object && j.kind != jsonparser.Array {
		return nil, fmt.Errorf("failed to get %v: node is %v", keys, j.kind)
	}
	value, kind, _, err := jsonparser.Get(j.value, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %v: %w", keys, err)
	}
	return &JSON{value: value, kind: kind, options: j.options}, nil
}

// String returns node text
func (j *JSON) String() string {
	if j.kind == jsonparser.String {
		if text, err := jsonparser.ParseString(j.value); err == nil {
			return text
		}
	}
	return string(j.value)
}

// ExtractAs returns node value as target type
func (j *JSON) ExtractAs(target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, fmt.Errorf("target type was nil")
	}
	switch j.kind {
	case jsonparser.Null:
		return extractNull(target)
	case jsonparser.String:
		text, err := jsonparser.ParseString(j.value)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON string: %w", err)
		}
		return j.registry.ConvertValue(text, target)
	case jsonparser.Number, jsonparser.Boolean:
		if target.Kind() == reflect.String {
			return reflect.ValueOf(string(j.value)).Convert(target).Interface(), nil
		}
		if value, ok := j.decodeScalar(target); ok {
			return value, nil
		}
		value, err := j.scalar()
		if err != nil {
			return nil, err
		}
		return j.registry.ConvertValue(value, target)
	case jsonparser.Object, jsonparser.Array:
		result := reflect.New(target)
		if err := json.Unmarshal(j.value, result.Interface()); err != nil {
			return nil, fmt.Errorf("failed to extract %v as %v: %w", j.kind, target, err)
		}
		return result.Elem().Interface(), nil
	}
	return nil, fmt.Errorf("unsupported JSON value type: %v", j.kind)
}

// decodeScalar decodes number and boolean literals straight into primitive target kinds
func (j *JSON) decodeScalar(target reflect.Type) (interface{}, bool) {
	decoded, ok := decodeTypes[target.Kind()]
	if !ok {
		return nil, false
	}
	ptr := reflect.New(decoded)
	if err := gojay.Unmarshal(j.value, ptr.Interface()); err != nil {
		return nil, false
	}
	return ptr.Elem().Convert(target).Interface(), true
}

// scalar returns number or boolean literal as go value
func (j *JSON) scalar() (interface{}, error) {
	if j.kind == jsonparser.Boolean {
		return jsonparser.ParseBoolean(j.value)
	}
	if n, err := jsonparser.ParseInt(j.value); err == nil {
		return n, nil
	}
	return jsonparser.ParseFloat(j.value)
}

var decodeTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(0),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint64(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
}

// ParseJSON parses JSON document into its root node, see WithRegistry for the conversion registry in use
func ParseJSON(data []byte, opts ...Option) (*JSON, error) {
	value, kind, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &JSON{value: value, kind: kind, options: newOptions(opts)}, nil
}

var _ conv.TypeConverter = (*Converter)(nil)
