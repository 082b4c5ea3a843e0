package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		d        Directives
		expected string
	}{
		{name: "no width", input: "foo", d: Directives{}, expected: "foo"},
		{name: "left pad", input: "foo", d: Directives{Width: 5}, expected: "  foo"},
		{name: "right pad", input: "foo", d: Directives{Sign: SignMinus, Width: 5}, expected: "foo  "},
		{name: "plus pads left", input: "foo", d: Directives{Sign: SignPlus, Width: 4}, expected: " foo"},
		{name: "custom fill", input: "7", d: Directives{Fill: '0', Width: 3}, expected: "007"},
		{name: "wider input", input: "foobar", d: Directives{Width: 3}, expected: "foobar"},
		{name: "runes not bytes", input: "héé", d: Directives{Fill: '.', Width: 5}, expected: "..héé"},
		{name: "multibyte fill", input: "a", d: Directives{Sign: SignMinus, Fill: '·', Width: 3}, expected: "a··"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyWidth(tt.input, tt.d))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "foo", Truncate("foo", 0))
	assert.Equal(t, "fo", Truncate("foo", 2))
	assert.Equal(t, "foo", Truncate("foo", 3))
	assert.Equal(t, "foo", Truncate("foo", 10))
	assert.Equal(t, "hé", Truncate("héllo", 2))
}

func TestPadLeftRight(t *testing.T) {
	assert.Equal(t, "xxab", PadLeft("ab", 'x', 4))
	assert.Equal(t, "abxx", PadRight("ab", 'x', 4))
	assert.Equal(t, "ab", PadLeft("ab", 'x', -1))
}
