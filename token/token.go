// Package token provides nodes of parsed JSON and YAML documents that extract themselves as typed values.
//
// Scalar extraction falls back to a conversion registry. Without WithRegistry nodes use a package level
// registry holding default conversions only; to extract with engine conversions and enums pass
// token.WithRegistry(engine.Registry()) to ParseJSON or ParseYAML.
package token

import (
	"fmt"
	"reflect"

	"github.com/viant/xcast/conv"
)

// Token represents a node of a dynamically typed document
type Token interface {
	//ExtractAs returns the node value as target type
	ExtractAs(target reflect.Type) (interface{}, error)
}

var tokenType = reflect.TypeOf((*Token)(nil)).Elem()

// IsToken returns true if rType implements Token
func IsToken(rType reflect.Type) bool {
	return rType != nil && rType.Implements(tokenType)
}

// Converter converts tokens into any type they can extract
type Converter struct{}

func (c *Converter) CanConvertFrom(src reflect.Type) bool {
	return false
}

func (c *Converter) CanConvertTo(dest reflect.Type) bool {
	return dest != nil
}

func (c *Converter) ConvertFrom(value interface{}) (interface{}, error) {
	return nil, fmt.Errorf("cannot convert %T to token", value)
}

func (c *Converter) ConvertTo(value interface{}, dest reflect.Type) (interface{}, error) {
	aToken, ok := value.(Token)
	if !ok {
		return nil, fmt.Errorf("expected %v, but had %T", tokenType, value)
	}
	return aToken.ExtractAs(dest)
}

// Resolve returns token converter for types implementing Token
func Resolve(rType reflect.Type) (conv.TypeConverter, bool) {
	if !IsToken(rType) {
		return nil, false
	}
	return &Converter{}, true
}

type (
	// Option represents token option
	Option func(o *options)

	options struct {
		registry *conv.Registry
	}
)

// WithRegistry sets conversion registry used for scalar fallbacks, it defaults to a shared registry with default options
func WithRegistry(registry *conv.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

var defaultRegistry = conv.NewRegistry(conv.DefaultOptions())

func newOptions(opts []Option) *options {
	result := &options{}
	for _, opt := range opts {
		opt(result)
	}
	if result.registry == nil {
		result.registry = defaultRegistry
	}
	return result
}

func extractNull(target reflect.Type) (interface{}, error) {
	if conv.Nillable(target) {
		return reflect.Zero(target).Interface(), nil
	}
	return nil, fmt.Errorf("cannot extract null as %v", target)
}
