package xcast

import (
	"io"
	"log/slog"

	"github.com/viant/xcast/cache"
	"github.com/viant/xcast/conv"
	"github.com/viant/xcast/enum"
)

type (
	// Option represents engine and accessor option
	Option func(o *options)

	// Options represents options
	Options []Option

	options struct {
		registry *conv.Registry
		enums    *enum.Registry
		codec    Codec
		logger   *slog.Logger
		cache    cache.Cache
		engine   *Engine
	}
)

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	result := &options{}
	Options(opts).Apply(result)
	if result.logger == nil {
		result.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return result
}

// WithRegistry sets type conversion registry
func WithRegistry(registry *conv.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithEnums sets enum registry
func WithEnums(enums *enum.Registry) Option {
	return func(o *options) {
		o.enums = enums
	}
}

// WithCodec sets deep copy codec
func WithCodec(codec Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCache sets property metadata cache
func WithCache(aCache cache.Cache) Option {
	return func(o *options) {
		o.cache = aCache
	}
}

// WithEngine sets accessor coercion engine
func WithEngine(engine *Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}
