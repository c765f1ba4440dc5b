package container

import (
	"fmt"
	"reflect"
	"strconv"
)

// convert turns v into a T the way a loosely typed caller would expect:
// identity, stringification, string parsing, then reflect conversion.
func convert[T any](op, param string, v any) (T, error) {
	var zero T
	if t, ok := v.(T); ok {
		return t, nil
	}
	if v == nil {
		return zero, nil
	}

	target := reflect.TypeOf((*T)(nil)).Elem()
	src := reflect.ValueOf(v)
	fail := func() (T, error) {
		return zero, &Fault{
			Kind:  ErrConversion,
			Op:    op,
			Param: param,
			Msg:   fmt.Sprintf("cannot convert %T to %v", v, target),
		}
	}

	if target.Kind() == reflect.String {
		return reflect.ValueOf(fmt.Sprint(v)).Convert(target).Interface().(T), nil
	}

	if src.Kind() == reflect.String {
		parsed, ok := parseString(src.String(), target)
		if !ok {
			return fail()
		}
		return parsed.Interface().(T), nil
	}

	if !src.Type().ConvertibleTo(target) {
		return fail()
	}
	// a slice converts to an array only when it is long enough
	if src.Kind() == reflect.Slice && target.Kind() == reflect.Array && src.Len() < target.Len() {
		return fail()
	}
	return src.Convert(target).Interface().(T), nil
}

func parseString(s string, target reflect.Type) (reflect.Value, bool) {
	switch target.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(b).Convert(target), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(target), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(target), true
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(f).Convert(target), true
	}
	return reflect.Value{}, false
}
