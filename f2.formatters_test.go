package f2

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type answer struct{}

func (answer) String() string { return "42" }

func selfMap() map[string]any {
	m := map[string]any{}
	m["self"] = m
	return m
}

func selfSlice() []any {
	s := make([]any, 1)
	s[0] = s
	return s
}

// node prints its Next pointer as an address, so fmt never follows it
type node struct {
	Next *node
	Tags []string
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		d        Directives
		expected string
	}{
		{name: "plain", value: "foo", d: DefaultDirectives('s'), expected: "foo"},
		{name: "precision", value: "foobar", d: Directives{Precision: 3}, expected: "foo"},
		{name: "width", value: "foo", d: Directives{Width: 5}, expected: "  foo"},
		{name: "fill x", value: "foo", d: Directives{Fill: 'x', Width: 5}, expected: "xxfoo"},
		{name: "fill zero", value: "foo", d: Directives{Fill: '0', Width: 5}, expected: "00foo"},
		{name: "fill colon", value: "foo", d: Directives{Fill: ':', Width: 5}, expected: "::foo"},
		{name: "minus sign", value: "foo", d: Directives{Sign: SignMinus, Fill: ' ', Width: 5}, expected: "foo  "},
		{name: "default fill", value: "foo", d: Directives{Width: 5}, expected: "  foo"},
		{name: "number", value: 42, d: Directives{}, expected: "42"},
		{name: "nil", value: nil, d: Directives{}, expected: "null"},
		{name: "undefined", value: Undefined, d: Directives{}, expected: "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatString(tt.value, tt.d))
		})
	}
}

func TestFormatJSON(t *testing.T) {
	assert.Equal(t, "{}", FormatJSON(map[string]any{}, Directives{}))
	assert.Equal(t, `{"f  `, FormatJSON(map[string]any{"foo": "bar"}, Directives{Sign: SignMinus, Width: 5, Precision: 3}))
	assert.Equal(t, "undefined", FormatJSON(Undefined, Directives{}))

	cyclic := map[string]any{}
	cyclic["o"] = cyclic
	assert.NotPanics(t, func() {
		FormatJSON(cyclic, Directives{})
	})
}

func TestFormatString_Cyclic(t *testing.T) {
	assert.Equal(t, `{"self":"[Circular]"}`, FormatString(selfMap(), Directives{}))
	assert.Equal(t, `["[C`, FormatString(selfSlice(), Directives{Precision: 4}))
}

func TestStringify_PointerFieldsAreNotFollowed(t *testing.T) {
	n := &node{Tags: []string{"a"}}
	n.Next = n

	out := Stringify(n)
	assert.True(t, strings.HasPrefix(out, "&{0x"), out)
	assert.True(t, strings.HasSuffix(out, " [a]}"), out)
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		d        Directives
		expected string
	}{
		{name: "string number", value: "5", expected: "5"},
		{name: "negative", value: "-5", expected: "-5"},
		{name: "plus on negative", value: "-5", d: Directives{Sign: SignPlus}, expected: "-5"},
		{name: "minus on negative", value: "-5", d: Directives{Sign: SignMinus}, expected: "-5"},
		{name: "plus on positive", value: "5", d: Directives{Sign: SignPlus}, expected: "+5"},
		{name: "precision", value: "5", d: Directives{Precision: 3}, expected: "005"},
		{name: "minus pads right", value: "5", d: Directives{Sign: SignMinus, Fill: ' ', Width: 3}, expected: "5  "},
		{name: "fill", value: "5", d: Directives{Sign: SignPlus, Fill: 'x', Width: 3}, expected: "x+5"},
		{name: "default fill", value: "5", d: Directives{Sign: SignPlus, Width: 3}, expected: " +5"},
		{name: "width", value: "5", d: Directives{Fill: ' ', Width: 3}, expected: "  5"},
		{name: "precision beats width", value: "5", d: Directives{Fill: ' ', Width: 3, Precision: 5}, expected: "00005"},
		{name: "stringer", value: answer{}, expected: "42"},
		{name: "int", value: 12, expected: "12"},
		{name: "int8", value: int8(-3), expected: "-3"},
		{name: "uint64", value: uint64(math.MaxUint64), expected: "18446744073709551615"},
		{name: "min int64", value: int64(math.MinInt64), expected: "-9223372036854775808"},
		{name: "float", value: 2.5, expected: "2.5"},
		{name: "negative float with precision", value: -2.5, d: Directives{Precision: 5}, expected: "-002.5"},
		{name: "json number", value: json.Number("17"), expected: "17"},
		{name: "bool", value: true, expected: "1"},
		{name: "nil", value: nil, expected: "0"},
		{name: "blank string", value: "  ", expected: "0"},
		{name: "not a number", value: "abc", expected: "NaN"},
		{name: "undefined", value: Undefined, expected: "NaN"},
		{name: "map", value: map[string]any{}, expected: "NaN"},
		{name: "infinity", value: math.Inf(-1), expected: "-Infinity"},
		{name: "nan float", value: math.NaN(), d: Directives{Sign: SignPlus}, expected: "+NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDecimal(tt.value, tt.d))
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "x", expected: "x"},
		{name: "nil", value: nil, expected: StrNull},
		{name: "undefined", value: Undefined, expected: StrUndefined},
		{name: "bool", value: false, expected: StrFalse},
		{name: "int", value: -4, expected: "-4"},
		{name: "int64", value: int64(9), expected: "9"},
		{name: "float whole", value: 3.0, expected: "3"},
		{name: "float", value: 0.25, expected: "0.25"},
		{name: "float32", value: float32(1.5), expected: "1.5"},
		{name: "nan", value: math.NaN(), expected: StrNaN},
		{name: "inf", value: math.Inf(1), expected: StrInfinity},
		{name: "error", value: errors.New("boom"), expected: "boom"},
		{name: "stringer", value: answer{}, expected: "42"},
		{name: "bytes", value: []byte("hi"), expected: "hi"},
		{name: "slice", value: []int{1, 2}, expected: "[1 2]"},
		{name: "nested map", value: map[string]any{"a": []any{1, "b"}}, expected: "map[a:[1 b]]"},
		{name: "shared but acyclic", value: []any{[]int{1}, []int{1}}, expected: "[[1] [1]]"},
		{name: "cyclic map", value: selfMap(), expected: `{"self":"[Circular]"}`},
		{name: "cyclic slice", value: selfSlice(), expected: `["[Circular]"]`},
		{name: "cycle below a map", value: map[string]any{"s": selfSlice()}, expected: `{"s":["[Circular]"]}`},
		{name: "cycle behind a pointer", value: &[]any{selfMap()}, expected: `[{"self":"[Circular]"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stringify(tt.value))
		})
	}
}

func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	assert.Len(t, builtins, 3)
	for _, code := range []string{TypeString, TypeDecimal, TypeJSON} {
		assert.Contains(t, builtins, code)
	}
}
