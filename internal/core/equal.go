package core

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// DeepEqual compares two thrown values structurally: their error messages and their
// exported fields, with embedded structs flattened. The dynamic types are not compared,
// so two different error types holding the same message and fields are equal.
func DeepEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	return cmp.Equal(Properties(actual), Properties(expected), exportAll)
}

// Properties flattens value into the property map DeepEqual compares. Errors contribute a
// "message" entry; structs contribute their exported fields, including fields promoted
// from embedded structs; maps contribute their entries. A *PanicError contributes only its
// message, so a normalized panic value equals a plain error with the same text.
func Properties(value any) map[string]any {
	props := make(map[string]any)

	if err, ok := value.(error); ok && !isNil(err) {
		props["message"] = err.Error()
	}

	if _, ok := value.(*PanicError); ok {
		return props
	}

	collectFields(reflect.ValueOf(value), props)

	return props
}

// describeProperties renders a property map one sorted "key: value" per line.
func describeProperties(props map[string]any) string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var out strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&out, "%s: %#v\n", key, props[key])
	}

	return out.String()
}

// unexported variables.
var (
	//nolint:gochecknoglobals // nested values may hold unexported fields
	exportAll = cmp.Exporter(func(reflect.Type) bool { return true })
)

func collectFields(value reflect.Value, props map[string]any) {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return
		}

		value = value.Elem()
	}

	//nolint:exhaustive // scalars contribute nothing beyond their message
	switch value.Kind() {
	case reflect.Struct:
		typ := value.Type()

		for i := range typ.NumField() {
			field := typ.Field(i)

			if !field.IsExported() {
				continue
			}

			if field.Anonymous && isStructLike(field.Type) {
				collectFields(value.Field(i), props)

				continue
			}

			props[field.Name] = value.Field(i).Interface()
		}
	case reflect.Map:
		iter := value.MapRange()
		for iter.Next() {
			props[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
	}
}

func isStructLike(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct
}
