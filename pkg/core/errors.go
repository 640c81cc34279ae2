package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrAttributeNotSet indicates a read of an attribute that is neither
	// set on the record nor covered by a schema default.
	ErrAttributeNotSet = errors.New("attribute not set and has no default")

	// ErrNotImplemented is returned by hooks whose implementation lives in a
	// downstream stage (e.g. the code-generation target of Apply).
	ErrNotImplemented = errors.New("not implemented at this layer")
)

// InvalidArgumentError reports a value rejected by a feature's schema: either
// the attribute name is not part of the schema, or the value failed the
// attribute's validator.
type InvalidArgumentError struct {
	Key   string
	Value any
	Help  string // validator help text; empty when the key itself is unknown
}

func (e *InvalidArgumentError) Error() string {
	if e.Help == "" {
		return fmt.Sprintf("%q is not a valid option for this feature", e.Key)
	}
	return fmt.Sprintf("%v is not a valid value for option %q: %s", e.Value, e.Key, e.Help)
}

// BadXMLError reports malformed Cave XML: an unrecognized tag, or required
// structure (attribute or child node) that is absent.
type BadXMLError struct {
	Tag     string // tag of the offending node
	Message string
}

func (e *BadXMLError) Error() string {
	return fmt.Sprintf("bad Cave XML in %s node: %s", e.Tag, e.Message)
}

// ConsistencyError reports serialization of a record whose required
// attributes were never set. This is a programmer error, not bad input.
type ConsistencyError struct {
	Feature string
	Key     string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s must have %q set", e.Feature, e.Key)
}
