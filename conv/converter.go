package conv

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// DefaultDateLayout is the default layout used for time parsing when no layout is specified
const DefaultDateLayout = "2006-01-02 15:04:05.000"

type (
	// TypeConverter converts values to and from the type it was registered against
	TypeConverter interface {
		//CanConvertFrom returns true if converter can produce its type from src type
		CanConvertFrom(src reflect.Type) bool
		//CanConvertTo returns true if converter can convert its type into dest type
		CanConvertTo(dest reflect.Type) bool
		//ConvertFrom converts value into converter type
		ConvertFrom(value interface{}) (interface{}, error)
		//ConvertTo converts value of converter type into dest type
		ConvertTo(value interface{}, dest reflect.Type) (interface{}, error)
	}

	// Resolver returns a converter for a type family the registry does not know about
	Resolver func(rType reflect.Type) (TypeConverter, bool)

	// ConversionFunc defines a custom conversion function
	ConversionFunc func(src interface{}, dest interface{}, opts Options) error

	// Options contains configuration for the converters
	Options struct {
		// DateLayout specifies the layout tried first for time parsing
		DateLayout string
		// TagName is the struct tag name used for map/struct field mapping
		TagName string
		// WeaklyTyped allows loose scalar conversions inside maps and structs
		WeaklyTyped bool
		// IgnoreUnmapped controls whether to ignore unmapped map keys
		IgnoreUnmapped bool
	}

	typeKey struct {
		srcType  reflect.Type
		destType reflect.Type
	}
)

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateLayout:     DefaultDateLayout,
		TagName:        "json",
		WeaklyTyped:    true,
		IgnoreUnmapped: true,
	}
}

// Registry represents converters keyed by type
type Registry struct {
	options       Options
	base          *Registry
	converters    sync.Map // map[reflect.Type]TypeConverter
	defaults      sync.Map // map[reflect.Type]*kindConverter
	customConvMap sync.Map // map[typeKey]ConversionFunc
	mux           sync.RWMutex
	resolvers     []Resolver
}

// NewRegistry creates a registry with the provided options
func NewRegistry(options Options) *Registry {
	if options.DateLayout == "" {
		options.DateLayout = DefaultDateLayout
	}
	if options.TagName == "" {
		options.TagName = "json"
	}
	return &Registry{options: options}
}

// Options returns registry options
func (r *Registry) Options() Options {
	return r.options
}

// Register registers converter for supplied type
func (r *Registry) Register(rType reflect.Type, converter TypeConverter) {
	r.converters.Store(rType, converter)
}

// AddResolver adds a converter resolver consulted before default converters
func (r *Registry) AddResolver(resolver Resolver) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.resolvers = append(r.resolvers, resolver)
}

// RegisterConversion registers a custom conversion function between source and destination types
func (r *Registry) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	r.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// RegisterFunc registers typed conversion function from S to D
func RegisterFunc[S any, D any](r *Registry, fn func(S) (D, error)) {
	r.RegisterConversion(reflect.TypeOf((*S)(nil)).Elem(), reflect.TypeOf((*D)(nil)).Elem(), func(src interface{}, dest interface{}, _ Options) error {
		value, err := fn(src.(S))
		if err != nil {
			return err
		}
		*dest.(*D) = value
		return nil
	})
}

// Extend returns a registry that sees every converter, conversion and resolver of r,
// while its own registrations and the supplied resolvers stay invisible to r
func (r *Registry) Extend(resolvers ...Resolver) *Registry {
	return &Registry{options: r.options, base: r, resolvers: resolvers}
}

func (r *Registry) conversion(srcType, destType reflect.Type) (ConversionFunc, bool) {
	for registry := r; registry != nil; registry = registry.base {
		if fn, ok := registry.customConvMap.Load(typeKey{srcType, destType}); ok {
			return fn.(ConversionFunc), true
		}
	}
	return nil, false
}

func (r *Registry) registered(rType reflect.Type) (TypeConverter, bool) {
	for registry := r; registry != nil; registry = registry.base {
		if converter, ok := registry.converters.Load(rType); ok {
			return converter.(TypeConverter), true
		}
	}
	return nil, false
}

// resolverChain returns own resolvers followed by base resolvers
func (r *Registry) resolverChain() []Resolver {
	var result []Resolver
	for registry := r; registry != nil; registry = registry.base {
		registry.mux.RLock()
		result = append(result, registry.resolvers...)
		registry.mux.RUnlock()
	}
	return result
}

// Lookup returns converter registered for supplied type, or a default one
func (r *Registry) Lookup(rType reflect.Type) TypeConverter {
	if converter, ok := r.registered(rType); ok {
		return converter
	}
	for _, resolve := range r.resolverChain() {
		if converter, ok := resolve(rType); ok {
			return converter
		}
	}
	if converter, ok := r.defaults.Load(rType); ok {
		return converter.(*kindConverter)
	}
	converter, _ := r.defaults.LoadOrStore(rType, &kindConverter{rType: rType, registry: r})
	return converter.(*kindConverter)
}

// renders returns true when the source type formats itself as text
func (r *Registry) renders(rType reflect.Type) bool {
	if rType.Implements(stringerType) || rType.Implements(textMarshalerType) {
		return true
	}
	if _, ok := r.registered(rType); ok {
		return true
	}
	for _, resolve := range r.resolverChain() {
		if _, ok := resolve(rType); ok {
			return true
		}
	}
	return false
}

// ConvertValue converts src into destType, trying the destination converter first and the source converter next
func (r *Registry) ConvertValue(src interface{}, destType reflect.Type) (interface{}, error) {
	if src == nil {
		return Normalize(nil, destType)
	}
	srcType := reflect.TypeOf(src)
	if srcType.AssignableTo(destType) {
		return Normalize(src, destType)
	}
	var errs []error
	if converter := r.Lookup(destType); converter.CanConvertFrom(srcType) {
		value, err := converter.ConvertFrom(src)
		if err == nil {
			if value, err = Normalize(value, destType); err == nil {
				return value, nil
			}
		}
		errs = append(errs, err)
	}
	if converter := r.Lookup(srcType); converter.CanConvertTo(destType) {
		value, err := converter.ConvertTo(src, destType)
		if err == nil {
			if value, err = Normalize(value, destType); err == nil {
				return value, nil
			}
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to convert %v to %v: %w", srcType, destType, errors.Join(errs...))
	}
	return nil, fmt.Errorf("unsupported conversion: %v to %v", srcType, destType)
}

// Convert converts the source value to the destination pointer
func (r *Registry) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil // Nothing to convert
	}
	value, err := r.ConvertValue(src, destValue.Elem().Type())
	if err != nil {
		return err
	}
	if value == nil {
		destValue.Elem().Set(reflect.Zero(destValue.Elem().Type()))
		return nil
	}
	destValue.Elem().Set(reflect.ValueOf(value))
	return nil
}

// Normalize returns value typed exactly as destType when the conversion keeps its kind
func Normalize(value interface{}, destType reflect.Type) (interface{}, error) {
	if value == nil {
		if Nillable(destType) {
			return reflect.Zero(destType).Interface(), nil
		}
		return nil, fmt.Errorf("cannot use nil as %v", destType)
	}
	rValue := reflect.ValueOf(value)
	valueType := rValue.Type()
	if valueType == destType {
		return value, nil
	}
	if destType.Kind() == reflect.Interface && valueType.Implements(destType) {
		return value, nil
	}
	if valueType.Kind() == destType.Kind() && valueType.ConvertibleTo(destType) {
		return rValue.Convert(destType).Interface(), nil
	}
	return nil, fmt.Errorf("converted value %T is not %v", value, destType)
}

// Nillable returns true if type accepts nil
func Nillable(rType reflect.Type) bool {
	if rType == nil {
		return false
	}
	switch rType.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
