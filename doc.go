// Package xcast coerces loosely typed values into go types and reads or writes struct fields by name.
//
// Coercion never fails: CoerceOrDefault returns the supplied default whenever the value is absent or
// cannot be converted, IsConvertible reports up front whether a conversion would succeed.
//
//	port := xcast.CoerceOrDefault("8080", reflect.TypeOf(0), 80).(int)
//	status := xcast.As[Status]("Active")
//
// Accessor resolves exported fields, including promoted ones, and converts assigned values into the
// declared field type:
//
//	err := xcast.SetProperty(user, "Id", "1231")
package xcast
