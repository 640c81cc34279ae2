// Package features provides the generic schema-validated record underlying
// every element of a Cave project: a typed attribute map with declared valid
// keys, per-key validators, and default values.
//
// A Feature on its own knows nothing about XML. Concrete record types (the
// action variants, placements, timelines) embed a Feature, declare a Schema,
// and define their own serialize/deserialize shapes.
package features

import (
	"fmt"
	"reflect"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
)

// Schema declares the legal attributes of a feature: a validator per
// attribute name, and default values for the attributes that have one. Every
// default key must also appear in Validators.
type Schema struct {
	Validators map[string]validators.Validator
	Defaults   map[string]any
}

// Pair is a single attribute assignment, used for bulk construction and
// updates.
type Pair struct {
	Key   string
	Value any
}

// Feature is a schema-validated attribute record. Attributes are only ever
// written through Set, so a stored value has always passed its validator.
// Features are not safe for concurrent mutation; callers own their records.
type Feature struct {
	schema Schema
	attrs  map[string]any
}

// Empty creates a Feature with no attributes set.
func Empty(schema Schema) *Feature {
	return &Feature{
		schema: schema,
		attrs:  make(map[string]any),
	}
}

// New creates a Feature and applies each pair through Set. The first
// rejected pair aborts construction.
func New(schema Schema, pairs ...Pair) (*Feature, error) {
	f := Empty(schema)
	if err := f.Update(pairs...); err != nil {
		return nil, err
	}
	return f, nil
}

// Set stores value under key. The key must be declared in the schema and the
// value must pass the key's validator; otherwise nothing changes and an
// InvalidArgumentError is returned.
func (f *Feature) Set(key string, value any) error {
	v, ok := f.schema.Validators[key]
	if !ok {
		return &core.InvalidArgumentError{Key: key, Value: value}
	}
	if !v.Valid(value) {
		return &core.InvalidArgumentError{Key: key, Value: value, Help: v.Help()}
	}
	f.attrs[key] = value
	return nil
}

// Get returns the stored value for key, falling back to the schema default.
// When the key is unset and has no default, the returned error wraps
// core.ErrAttributeNotSet.
func (f *Feature) Get(key string) (any, error) {
	if value, ok := f.attrs[key]; ok {
		return value, nil
	}
	if value, ok := f.schema.Defaults[key]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("option %q: %w", key, core.ErrAttributeNotSet)
}

// Lookup returns the explicitly stored value for key, with no default
// fallback.
func (f *Feature) Lookup(key string) (any, bool) {
	value, ok := f.attrs[key]
	return value, ok
}

// Has reports whether key has been explicitly set.
func (f *Feature) Has(key string) bool {
	_, ok := f.attrs[key]
	return ok
}

// Update applies each pair through Set, in order. The first failure aborts
// and is returned; pairs applied before the failure remain applied.
func (f *Feature) Update(pairs ...Pair) error {
	for _, p := range pairs {
		if err := f.Set(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// IsDefault reports whether key is absent from the record and covered by a
// schema default. Serializers use this to omit attributes that round-trip
// back to their default anyway.
func (f *Feature) IsDefault(key string) bool {
	if _, ok := f.attrs[key]; ok {
		return false
	}
	_, ok := f.schema.Defaults[key]
	return ok
}

// Len returns the number of explicitly set attributes.
func (f *Feature) Len() int {
	return len(f.attrs)
}

// Equal reports whether both records hold the same explicitly-set
// attributes. Defaults do not participate: an unset attribute with a default
// is not equal to the same attribute set to the default value. Comparison is
// exact on dynamic types: deserialized numerics are float64, so a record
// built with an int attribute compares unequal to its own round trip even
// when the values are numerically the same.
func (f *Feature) Equal(other *Feature) bool {
	if other == nil {
		return f == nil
	}
	return reflect.DeepEqual(f.attrs, other.attrs)
}
