package f2

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/itsatony/go-f2/internal"
	"github.com/ohler55/ojg/oj"
)

// Placeholders written in place of values that cannot be serialised
const (
	circular       = "[Circular]"
	unserializable = "[Unserializable]"
)

// maxSafeInteger is the largest float that still holds every integer exactly
const maxSafeInteger = 1<<53 - 1

var inspectOptions = func() oj.Options {
	opts := oj.DefaultOptions
	opts.Sort = true
	opts.HTMLUnsafe = true
	return opts
}()

// Inspect renders v as JSON for debugging: strings are quoted, map keys
// sorted, structs follow their json tags, functions and channels are
// dropped and cycles become "[Circular]". A value with no JSON reading,
// such as Undefined or a func, renders as "undefined". Inspect never
// panics.
func Inspect(v any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = StrUnserializable
		}
	}()

	in := inspector{visiting: make(map[visitKey]bool)}
	tree, ok := in.value(reflect.ValueOf(v))
	if !ok {
		return StrUndefined
	}
	return oj.JSON(tree, &inspectOptions)
}

type visitKey struct {
	ptr uintptr
	typ reflect.Type
}

// inspector converts arbitrary values into the generic types oj writes
type inspector struct {
	visiting map[visitKey]bool
}

// value returns the generic form of rv; false means the value is dropped
func (in *inspector) value(rv reflect.Value) (any, bool) {
	if !rv.IsValid() {
		return nil, true
	}

	if rv.CanInterface() {
		if tree, ok, handled := in.special(rv); handled {
			return tree, ok
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), true
		}
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return jsonFloat(rv.Float()), true
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(rv.Complex()), true
	case reflect.String:
		return rv.String(), true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, false
	case reflect.Interface:
		if rv.IsNil() {
			return nil, true
		}
		return in.value(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, true
		}
		return in.enter(rv, func() any {
			tree, ok := in.value(rv.Elem())
			if !ok {
				return nil
			}
			return tree
		})
	case reflect.Map:
		if rv.IsNil() {
			return nil, true
		}
		return in.enter(rv, func() any { return in.object(rv) })
	case reflect.Slice:
		if rv.IsNil() {
			return nil, true
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
		return in.enter(rv, func() any { return in.array(rv) })
	case reflect.Array:
		return in.array(rv), true
	case reflect.Struct:
		return in.structure(rv), true
	}
	return fmt.Sprint(rv.Interface()), true
}

// special handles Undefined, errors and JSON/text marshalers
func (in *inspector) special(rv reflect.Value) (any, bool, bool) {
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil, true, false
	}

	switch tv := rv.Interface().(type) {
	case internal.UndefinedValue:
		return nil, false, true
	case json.Marshaler:
		data, err := tv.MarshalJSON()
		if err != nil {
			return unserializable, true, true
		}
		tree, err := oj.Parse(data)
		if err != nil {
			return unserializable, true, true
		}
		return tree, true, true
	case encoding.TextMarshaler:
		text, err := tv.MarshalText()
		if err != nil {
			return unserializable, true, true
		}
		return string(text), true, true
	case error:
		return tv.Error(), true, true
	}
	return nil, false, false
}

// enter guards reference values against cycles
func (in *inspector) enter(rv reflect.Value, walk func() any) (any, bool) {
	key := visitKey{ptr: rv.Pointer(), typ: rv.Type()}
	if in.visiting[key] {
		return circular, true
	}
	in.visiting[key] = true
	defer delete(in.visiting, key)
	return walk(), true
}

func (in *inspector) object(rv reflect.Value) map[string]any {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		tree, ok := in.value(iter.Value())
		if !ok {
			continue
		}
		out[mapKey(iter.Key())] = tree
	}
	return out
}

func (in *inspector) array(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		if tree, ok := in.value(rv.Index(i)); ok {
			out[i] = tree
		}
	}
	return out
}

func (in *inspector) structure(rv reflect.Value) map[string]any {
	fields := internal.JSONFields(rv.Type())
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		// a nil embedded pointer hides its promoted fields
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			continue
		}
		if tree, ok := in.value(fv); ok {
			out[f.Name] = tree
		}
	}
	return out
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
			if text, err := tm.MarshalText(); err == nil {
				return string(text)
			}
		}
		return fmt.Sprint(k.Interface())
	}
	return fmt.Sprint(k)
}

// jsonFloat maps non-finite floats to null and whole floats to integers
func jsonFloat(f float64) any {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return nil
	case f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger:
		return int64(f)
	}
	return f
}

// hasCycle reports whether printing v with fmt would revisit a map, slice
// or pointer it is already inside. The walk follows fmt: pointers are only
// dereferenced at the top level, and nested values with their own String,
// Error or Format method are not entered.
func hasCycle(v any) bool {
	in := inspector{visiting: make(map[visitKey]bool)}
	return in.cycles(reflect.ValueOf(v), 0)
}

func (in *inspector) cycles(rv reflect.Value, depth int) bool {
	if !rv.IsValid() {
		return false
	}
	if depth > 0 && rv.CanInterface() {
		switch rv.Interface().(type) {
		case fmt.Formatter, fmt.Stringer, error:
			return false
		}
	}

	switch rv.Kind() {
	case reflect.Interface:
		return !rv.IsNil() && in.cycles(rv.Elem(), depth+1)
	case reflect.Pointer:
		if depth > 0 || rv.IsNil() {
			return false
		}
		return in.revisits(rv, func() bool { return in.cycles(rv.Elem(), depth+1) })
	case reflect.Map:
		if rv.IsNil() {
			return false
		}
		return in.revisits(rv, func() bool {
			iter := rv.MapRange()
			for iter.Next() {
				if in.cycles(iter.Value(), depth+1) {
					return true
				}
			}
			return false
		})
	case reflect.Slice:
		if rv.IsNil() || !mayReference(rv.Type().Elem()) {
			return false
		}
		return in.revisits(rv, func() bool { return in.elements(rv, depth) })
	case reflect.Array:
		return mayReference(rv.Type().Elem()) && in.elements(rv, depth)
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if in.cycles(rv.Field(i), depth+1) {
				return true
			}
		}
	}
	return false
}

// revisits marks rv as being walked for the duration of walk
func (in *inspector) revisits(rv reflect.Value, walk func() bool) bool {
	key := visitKey{ptr: rv.Pointer(), typ: rv.Type()}
	if in.visiting[key] {
		return true
	}
	in.visiting[key] = true
	defer delete(in.visiting, key)
	return walk()
}

func (in *inspector) elements(rv reflect.Value, depth int) bool {
	for i := 0; i < rv.Len(); i++ {
		if in.cycles(rv.Index(i), depth+1) {
			return true
		}
	}
	return false
}

// mayReference reports whether values of t can lead back to a container
func mayReference(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}
