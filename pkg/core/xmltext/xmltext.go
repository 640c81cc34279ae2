// Package xmltext defines the canonical text forms used throughout the Cave
// XML wire format: booleans as "true"/"false", numbers in their shortest
// decimal form, and numeric tuples joined by commas, optionally wrapped in
// parentheses.
package xmltext

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FormatBool renders b in the canonical true/false text form.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseBool reads the canonical true/false text form. Surrounding whitespace
// is ignored; anything else is an error.
func ParseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%q is not one of \"true\", \"false\"", s)
}

// FormatNumber renders a numeric value in its shortest decimal form, so that
// integral floats print without a trailing fraction (2, not 2.0).
func FormatNumber(value any) string {
	switch n := value.(type) {
	case int:
		return strconv.Itoa(n)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", n)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", n)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return fmt.Sprint(value)
}

// JoinNumbers renders each element of a slice or array with FormatNumber and
// joins them with sep.
func JoinNumbers(value any, sep string) string {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return FormatNumber(value)
	}
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts[i] = FormatNumber(rv.Index(i).Interface())
	}
	return strings.Join(parts, sep)
}

// FormatTuple renders a numeric tuple in the parenthesised placement form,
// e.g. "(0, 1, 0)".
func FormatTuple(value any) string {
	return "(" + JoinNumbers(value, ", ") + ")"
}

// splitTuple trims optional surrounding parentheses and splits on commas.
func splitTuple(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// ParseTuple reads a comma-separated numeric tuple, with or without
// surrounding parentheses, into a float slice.
func ParseTuple(s string) ([]float64, error) {
	parts := splitTuple(s)
	values := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a numeric tuple: %w", s, err)
		}
		values[i] = f
	}
	return values, nil
}

// ParseIntTuple reads a comma-separated integer tuple, with or without
// surrounding parentheses.
func ParseIntTuple(s string) ([]int, error) {
	parts := splitTuple(s)
	values := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer tuple: %w", s, err)
		}
		values[i] = n
	}
	return values, nil
}
