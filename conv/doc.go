// Package conv provides a type conversion service: a flat registry of per-type converters.
// Each converter reports whether it can convert from a source type (target side) or to a
// destination type (source side). Types without a registered converter get a default one
// covering primitives, time, durations, text (un)marshalers, slices, maps and structs.
package conv
