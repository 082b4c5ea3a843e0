package internal

import (
	"reflect"
	"strings"
)

// UndefinedValue is the type of the Undefined sentinel
type UndefinedValue struct{}

// String implements fmt.Stringer
func (UndefinedValue) String() string {
	return StrUndefined
}

// Undefined stands for a missing positional argument, keyword object or
// keyword path. It is distinct from nil.
var Undefined any = UndefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// FormatterLookup resolves type codes to formatters at render time
type FormatterLookup interface {
	Lookup(code rune) (Formatter, bool)
}

// Inspector renders arguments that no placeholder consumed
type Inspector func(v any) string

// Renderer substitutes arguments into compiled templates
type Renderer struct {
	types   FormatterLookup
	inspect Inspector
}

// NewRenderer creates a renderer using types for placeholders and inspect
// for rest arguments
func NewRenderer(types FormatterLookup, inspect Inspector) *Renderer {
	return &Renderer{types: types, inspect: inspect}
}

// Render substitutes args into tmpl. Arguments before offsetLeft and the
// last offsetRight arguments are never substituted. When the template has
// keyword items, the last remaining argument is the keyword object and is
// not available positionally. Arguments past the highest positional index
// are appended through the inspector.
func (r *Renderer) Render(tmpl *Template, args []any, offsetLeft, offsetRight int) string {
	offsetLeft = max(offsetLeft, 0)
	offsetRight = max(offsetRight, 0)

	effectiveRight := offsetRight
	if tmpl.hasKeywords {
		effectiveRight++
	}
	lastIndex := len(args) - effectiveRight

	kwargs := Undefined
	if tmpl.hasKeywords && lastIndex >= offsetLeft && lastIndex < len(args) {
		kwargs = args[lastIndex]
	}

	var sb strings.Builder
	for i := range tmpl.items {
		it := &tmpl.items[i]
		switch it.Kind {
		case ItemText:
			sb.WriteString(it.Text)

		case ItemKeyword:
			value, ok := GetPath(kwargs, it.Path)
			if !ok {
				value = Undefined
			}
			sb.WriteString(r.format(it, value))

		case ItemPositional:
			value := Undefined
			if candidate := it.Index + offsetLeft; candidate < lastIndex {
				value = args[candidate]
			}
			sb.WriteString(r.format(it, value))
		}
	}

	r.appendRest(&sb, args, offsetLeft+tmpl.nextPositional, lastIndex, true)
	return sb.String()
}

// RenderRest inspects args[from:len(args)-offsetRight] joined by spaces
func (r *Renderer) RenderRest(args []any, from, offsetRight int) string {
	var sb strings.Builder
	r.appendRest(&sb, args, max(from, 0), len(args)-max(offsetRight, 0), false)
	return sb.String()
}

func (r *Renderer) appendRest(sb *strings.Builder, args []any, from, to int, leadingSpace bool) {
	for i := from; i < to; i++ {
		if leadingSpace || i > from {
			sb.WriteByte(CharSpace)
		}
		sb.WriteString(r.inspect(args[i]))
	}
}

func (r *Renderer) format(it *Item, value any) string {
	f, ok := r.types.Lookup(it.Directives.TypeCode)
	if !ok {
		return it.Text
	}
	return f(Force(value), it.Directives)
}

// Force invokes v when it is a function taking no arguments and returning
// at least one value, and returns its first result. Other values are
// returned unchanged.
func Force(v any) any {
	if v == nil {
		return nil
	}
	if fn, ok := v.(func() any); ok {
		if fn == nil {
			return v
		}
		return fn()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return v
	}
	rt := rv.Type()
	if rt.NumIn() != 0 || rt.NumOut() == 0 {
		return v
	}
	return rv.Call(nil)[0].Interface()
}
