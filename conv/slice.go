package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/parsly"
)

// repeated represents coma delimited text items, items can be quoted with ' or "
type repeated []string

func newRepeated(text string, isNumeric bool) repeated {
	if text == "" {
		return repeated{}
	}
	if text[0] == '[' && text[len(text)-1] == ']' { //remove enclosure if needed
		text = text[1 : len(text)-1]
	}
	var result = repeated{}
	cursor := parsly.NewCursor("", []byte(text), 0)
	for cursor.Pos < len(cursor.Input) {
		elem := matchElement(cursor)
		if isNumeric && elem == "" {
			continue
		}
		result = append(result, elem)
	}
	return result
}

func (c *kindConverter) toSlice(src reflect.Value, dest reflect.Type) (interface{}, error) {
	if isBytes(dest) && isText(src.Type()) {
		return reflect.ValueOf([]byte(textOf(src))).Convert(dest).Interface(), nil
	}
	elemType := dest.Elem()
	if src.Kind() == reflect.String {
		items := newRepeated(src.String(), elemType.Kind() != reflect.String)
		result := reflect.MakeSlice(dest, len(items), len(items))
		for i, item := range items {
			if err := c.setItem(result.Index(i), item, elemType); err != nil {
				return nil, fmt.Errorf("failed to convert %v into %v: %w", items, dest, err)
			}
		}
		return result.Interface(), nil
	}
	if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
		return nil, fmt.Errorf("cannot convert %v to %v", src.Type(), dest)
	}
	length := src.Len()
	result := reflect.MakeSlice(dest, length, length)
	for i := 0; i < length; i++ {
		if err := c.setItem(result.Index(i), src.Index(i).Interface(), elemType); err != nil {
			return nil, fmt.Errorf("error converting slice element %d: %w", i, err)
		}
	}
	return result.Interface(), nil
}

func (c *kindConverter) setItem(item reflect.Value, value interface{}, elemType reflect.Type) error {
	converted, err := c.registry.ConvertValue(value, elemType)
	if err != nil {
		return err
	}
	if converted != nil {
		item.Set(reflect.ValueOf(converted))
	}
	return nil
}
