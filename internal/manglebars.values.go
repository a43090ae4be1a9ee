package internal

import (
	"fmt"
	"reflect"
	"strconv"
)

// ValueToString converts a context value to its output form.
// nil (including absent keys) renders as the empty string.
func ValueToString(val any) string {
	switch v := val.(type) {
	case nil:
		return StringValueEmpty
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, IntBase10)
	case float64:
		return strconv.FormatFloat(v, FloatFormatFlag, FloatPrecisionAll, FloatBitSize64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsTruthy determines the truthiness of a value
// Truthiness rules:
// - nil -> false
// - bool -> value
// - string -> len(s) > 0
// - numbers -> n != 0
// - slice/array/map -> len(x) > 0
// - nil pointer/interface -> false
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return len(val) > 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}

// ToMappings converts a sequence of string-keyed maps into per-element contexts.
// It fails with a type error naming operator when v is not a slice or array, or when
// an element is not a string-keyed map.
func ToMappings(operator string, v any) ([]map[string]any, error) {
	switch val := v.(type) {
	case []map[string]any:
		return val, nil
	case []any:
		items := make([]map[string]any, len(val))
		for i, elem := range val {
			m, ok := toMapping(elem)
			if !ok {
				return nil, newElementTypeError(operator, elem, i)
			}
			items[i] = m
		}
		return items, nil
	}

	if v == nil {
		return nil, NewTypeError(ErrMsgNotSequence, operator, v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, NewTypeError(ErrMsgNotSequence, operator, v)
	}

	items := make([]map[string]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		m, ok := toMapping(elem)
		if !ok {
			return nil, newElementTypeError(operator, elem, i)
		}
		items[i] = m
	}
	return items, nil
}

func newElementTypeError(operator string, elem any, index int) *Error {
	err := NewTypeError(ErrMsgElementNotMapping, operator, elem)
	err.Detail = fmt.Sprintf(ErrFmtIndexDetail, err.Detail, index)
	return err
}

// toMapping converts a single value into a map[string]any context.
func toMapping(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return m, true
	}

	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
