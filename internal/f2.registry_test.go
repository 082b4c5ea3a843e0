package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func constFormatter(out string) Formatter {
	return func(any, Directives) string { return out }
}

func TestTypeRegistry_SetLookup(t *testing.T) {
	r := NewTypeRegistry(zap.NewNop())

	assert.False(t, r.Has('s'))
	_, ok := r.Lookup('s')
	assert.False(t, ok)

	r.Set('s', constFormatter("one"))
	f, ok := r.Lookup('s')
	require.True(t, ok)
	assert.Equal(t, "one", f(nil, Directives{}))
	assert.True(t, r.Has('s'))
}

func TestTypeRegistry_Overwrite(t *testing.T) {
	r := NewTypeRegistry(nil)
	r.Set('x', constFormatter("one"))
	r.Set('x', constFormatter("two"))

	f, ok := r.Lookup('x')
	require.True(t, ok)
	assert.Equal(t, "two", f(nil, Directives{}))
	assert.Equal(t, []string{"x"}, r.Codes())
}

func TestTypeRegistry_CodesSorted(t *testing.T) {
	r := NewTypeRegistry(nil)
	for _, c := range "jsdQ" {
		r.Set(c, constFormatter(""))
	}
	assert.Equal(t, []string{"Q", "d", "j", "s"}, r.Codes())
}

func TestSingleRune(t *testing.T) {
	tests := []struct {
		input string
		r     rune
		ok    bool
	}{
		{input: "s", r: 's', ok: true},
		{input: "é", r: 'é', ok: true},
		{input: "", ok: false},
		{input: "ss", ok: false},
		{input: "\xff", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := SingleRune(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.r, r)
			}
		})
	}
}
