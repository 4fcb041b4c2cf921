package main

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

var targetTypes = map[string]reflect.Type{
	"string":   reflect.TypeOf(""),
	"bool":     reflect.TypeOf(false),
	"int":      reflect.TypeOf(0),
	"int8":     reflect.TypeOf(int8(0)),
	"int16":    reflect.TypeOf(int16(0)),
	"int32":    reflect.TypeOf(int32(0)),
	"int64":    reflect.TypeOf(int64(0)),
	"uint":     reflect.TypeOf(uint(0)),
	"uint8":    reflect.TypeOf(uint8(0)),
	"uint16":   reflect.TypeOf(uint16(0)),
	"uint32":   reflect.TypeOf(uint32(0)),
	"uint64":   reflect.TypeOf(uint64(0)),
	"float32":  reflect.TypeOf(float32(0)),
	"float64":  reflect.TypeOf(float64(0)),
	"time":     reflect.TypeOf(time.Time{}),
	"duration": reflect.TypeOf(time.Duration(0)),
}

func lookupType(name string) (reflect.Type, error) {
	if rType, ok := targetTypes[strings.ToLower(name)]; ok {
		return rType, nil
	}
	names := make([]string, 0, len(targetTypes))
	for candidate := range targetTypes {
		names = append(names, candidate)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unsupported type %q, expected one of: %s", name, strings.Join(names, ", "))
}
