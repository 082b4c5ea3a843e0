package f2

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/itsatony/go-f2/internal"
)

// Builtins returns the built-in formatters keyed by type code.
func Builtins() map[string]Formatter {
	return map[string]Formatter{
		TypeString:  FormatString,
		TypeDecimal: FormatDecimal,
		TypeJSON:    FormatJSON,
	}
}

// FormatString renders v as a string, truncated to d.Precision runes and
// padded to d.Width.
func FormatString(v any, d Directives) string {
	return internal.ApplyWidth(internal.Truncate(Stringify(v), d.Precision), d)
}

// FormatJSON renders Inspect(v) the way FormatString renders strings.
func FormatJSON(v any, d Directives) string {
	return FormatString(Inspect(v), d)
}

// FormatDecimal renders v as a number. Digits are zero-padded to
// d.Precision, negative numbers always carry '-', positive ones carry '+'
// when the sign directive is '+', and the result is padded to d.Width.
func FormatDecimal(v any, d Directives) string {
	n := toNumber(v)

	digits := n.abs()
	if d.Precision > 0 {
		digits = internal.PadLeft(digits, '0', d.Precision)
	}

	switch {
	case n.negative():
		digits = "-" + digits
	case d.Sign == SignPlus:
		digits = "+" + digits
	}

	return internal.ApplyWidth(digits, d)
}

// Stringify converts v to its plain string form: nil is "null", Undefined
// is "undefined", numbers use their shortest representation and everything
// else goes through fmt. Values that contain themselves are rendered by
// Inspect, since fmt would recurse forever.
func Stringify(v any) string {
	switch tv := v.(type) {
	case nil:
		return StrNull
	case string:
		return tv
	case internal.UndefinedValue:
		return StrUndefined
	case bool:
		if tv {
			return StrTrue
		}
		return StrFalse
	case float64:
		return formatFloat(tv)
	case float32:
		return formatFloat(float64(tv))
	case int:
		return strconv.Itoa(tv)
	case int64:
		return strconv.FormatInt(tv, 10)
	case error:
		return tv.Error()
	case fmt.Stringer:
		return tv.String()
	case []byte:
		return string(tv)
	}
	if hasCycle(v) {
		return Inspect(v)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return StrNaN
	case math.IsInf(f, 1):
		return StrInfinity
	case math.IsInf(f, -1):
		return "-" + StrInfinity
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// number is a numeric value kept exact for integers
type number struct {
	kind  numberKind
	i     int64
	u     uint64
	f     float64
	isNaN bool
}

type numberKind int

const (
	numberInt numberKind = iota
	numberUint
	numberFloat
)

var notANumber = number{kind: numberFloat, f: math.NaN(), isNaN: true}

func (n number) negative() bool {
	switch n.kind {
	case numberInt:
		return n.i < 0
	case numberFloat:
		return !n.isNaN && n.f < 0
	}
	return false
}

// abs renders the absolute value without sign
func (n number) abs() string {
	switch n.kind {
	case numberInt:
		if n.i < 0 {
			// negate via uint64 so MinInt64 does not overflow
			return strconv.FormatUint(uint64(-(n.i+1))+1, 10)
		}
		return strconv.FormatInt(n.i, 10)
	case numberUint:
		return strconv.FormatUint(n.u, 10)
	}
	if n.isNaN || math.IsNaN(n.f) {
		return StrNaN
	}
	return formatFloat(math.Abs(n.f))
}

// toNumber coerces v to a number; values without a numeric reading are NaN
func toNumber(v any) number {
	switch tv := v.(type) {
	case nil:
		return number{kind: numberInt}
	case bool:
		if tv {
			return number{kind: numberInt, i: 1}
		}
		return number{kind: numberInt}
	case json.Number:
		return parseNumber(tv.String())
	case string:
		return parseNumber(tv)
	case internal.UndefinedValue:
		return notANumber
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numberInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numberUint, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return floatNumber(rv.Float())
	}

	if s, ok := v.(fmt.Stringer); ok {
		return parseNumber(s.String())
	}
	return notANumber
}

// parseNumber reads a decimal string; blank strings are zero
func parseNumber(s string) number {
	s = strings.TrimSpace(s)
	if s == "" {
		return number{kind: numberInt}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{kind: numberInt, i: i}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatNumber(f)
	}
	return notANumber
}

func floatNumber(f float64) number {
	if math.IsNaN(f) {
		return notANumber
	}
	return number{kind: numberFloat, f: f}
}
