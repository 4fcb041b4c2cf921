package xcast

import (
	"fmt"
	"reflect"
	"time"
)

var (
	anyType     = reflect.TypeOf((*interface{})(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.PtrTo(timeType)
)

func isTimeType(candidate reflect.Type) bool {
	return candidate == timeType || candidate == timePtrType
}

// ensureStruct returns struct type of supplied struct or pointer to struct type
func ensureStruct(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return t.Elem()
		}
	}
	return nil
}

// typeKey returns fully qualified type name
func typeKey(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// identityKey returns type key distinguishing types sharing qualified name
func identityKey(t reflect.Type) string {
	return fmt.Sprintf("%s@%p", typeKey(t), t)
}
