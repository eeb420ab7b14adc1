package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// starlarkValue converts a Go value to its starlark counterpart for use
// as a REPL global. Structs become dicts keyed by exported field names.
func starlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case []byte:
		// keep bytes distinct from a list of ints
		return starlark.Bytes(v)
	case error:
		// the message is the useful part, not the struct fields
		return starlark.String(v.Error())
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = starlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		dict := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			dict.SetKey(
				starlarkValue(iter.Key().Interface()),
				starlarkValue(iter.Value().Interface()),
			)
		}
		return dict

	case reflect.Struct:
		typ := value.Type()
		dict := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			dict.SetKey(
				starlark.String(field.Name),
				starlarkValue(value.Field(i).Interface()),
			)
		}
		return dict

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return starlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
