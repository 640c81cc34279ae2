// Package validators provides predicate objects used to check values offered
// for feature attributes. A validator never panics and never returns an
// error: illegal input yields false. Each validator carries help text
// describing the legal domain, for diagnostics and editor UIs.
package validators

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Validator checks whether a candidate value is legal for an attribute.
type Validator interface {
	// Valid reports whether value is acceptable.
	Valid(value any) bool

	// Help describes the legal domain of values.
	Help() string
}

// OptionList accepts only members of a fixed set of string literals.
type OptionList struct {
	options map[string]struct{}
	help    string
}

// Options creates an OptionList accepting exactly the given literals.
func Options(options ...string) *OptionList {
	set := make(map[string]struct{}, len(options))
	for _, opt := range options {
		set[opt] = struct{}{}
	}
	return &OptionList{
		options: set,
		help:    "Value must be one of " + strings.Join(options, ", "),
	}
}

// Valid reports whether value is a string in the option set.
func (v *OptionList) Valid(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, ok = v.options[s]
	return ok
}

func (v *OptionList) Help() string { return v.help }

// IsNumeric accepts any value convertible to a floating-point number:
// integers, floats, and numeric strings. Optional bounds restrict the range.
type IsNumeric struct {
	min, max *float64
	help     string
}

// Numeric creates an unbounded IsNumeric.
func Numeric() *IsNumeric {
	return &IsNumeric{help: "Value must be numeric"}
}

// NumericMin creates an IsNumeric with an inclusive lower bound.
func NumericMin(min float64) *IsNumeric {
	return &IsNumeric{
		min:  &min,
		help: fmt.Sprintf("Value must be numeric and >= %v", min),
	}
}

// NumericRange creates an IsNumeric with inclusive bounds.
func NumericRange(min, max float64) *IsNumeric {
	return &IsNumeric{
		min:  &min,
		max:  &max,
		help: fmt.Sprintf("Value must be numeric and >= %v and <= %v", min, max),
	}
}

// Valid reports whether value is convertible to a number within bounds.
func (v *IsNumeric) Valid(value any) bool {
	f, ok := toFloat(value)
	if !ok {
		return false
	}
	if v.min != nil && f < *v.min {
		return false
	}
	if v.max != nil && f > *v.max {
		return false
	}
	return true
}

func (v *IsNumeric) Help() string { return v.help }

// toFloat converts supported scalar types to float64.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// IsNumericIterable accepts slices and arrays whose every element is
// numeric. A required length of zero leaves the length unchecked.
type IsNumericIterable struct {
	requiredLength int
	elem           *IsNumeric
	help           string
}

// NumericIterable creates an IsNumericIterable of unchecked length.
func NumericIterable() *IsNumericIterable {
	return &IsNumericIterable{
		elem: Numeric(),
		help: "Value must be a sequence of numeric values",
	}
}

// NumericTuple creates an IsNumericIterable requiring exactly length elements.
func NumericTuple(length int) *IsNumericIterable {
	return &IsNumericIterable{
		requiredLength: length,
		elem:           Numeric(),
		help:           fmt.Sprintf("Value must be a sequence of %d numeric values", length),
	}
}

// Valid reports whether value is a slice or array of numeric elements of the
// required length. Non-iterable values yield false.
func (v *IsNumericIterable) Valid(value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !v.elem.Valid(rv.Index(i).Interface()) {
			return false
		}
	}
	return v.requiredLength == 0 || rv.Len() == v.requiredLength
}

func (v *IsNumericIterable) Help() string { return v.help }

// AlwaysValid accepts anything. Used for opaque collaborators where stronger
// typing is deferred to the value's own contract.
type AlwaysValid struct {
	help string
}

// Always creates an AlwaysValid with the given help text.
func Always(help string) *AlwaysValid {
	return &AlwaysValid{help: help}
}

// Valid always reports true.
func (v *AlwaysValid) Valid(any) bool { return true }

func (v *AlwaysValid) Help() string { return v.help }

// CheckType accepts only values whose dynamic type equals a reference type
// exactly.
type CheckType struct {
	typ  reflect.Type
	help string
}

// TypeOf creates a CheckType keyed to the dynamic type of example.
func TypeOf(example any) *CheckType {
	t := reflect.TypeOf(example)
	return &CheckType{
		typ:  t,
		help: fmt.Sprintf("Value must be of type %v", t),
	}
}

// Valid reports whether value's dynamic type equals the reference type.
func (v *CheckType) Valid(value any) bool {
	return reflect.TypeOf(value) == v.typ
}

func (v *CheckType) Help() string { return v.help }
