package f2

import "github.com/itsatony/go-f2/internal"

// Directives carries the formatting directives of a placeholder: sign,
// fill character, width, precision and type code. Width and Precision use
// zero for "absent"; Fill defaults to a space.
type Directives = internal.Directives

// Sign is the optional '+' or '-' directive of a placeholder
type Sign = internal.Sign

// Sign values
const (
	SignNone  = internal.SignNone
	SignPlus  = internal.SignPlus
	SignMinus = internal.SignMinus
)

// Formatter renders one substituted value. Formatters must not panic and
// must accept Undefined.
type Formatter = internal.Formatter

// Template is a compiled pattern. Templates are immutable and shared
// through the engine's cache.
type Template = internal.Template

// Item is one element of a compiled Template
type Item = internal.Item

// ItemKind identifies text, positional and keyword items
type ItemKind = internal.ItemKind

// Item kinds
const (
	ItemText       = internal.ItemText
	ItemPositional = internal.ItemPositional
	ItemKeyword    = internal.ItemKeyword
)

// CacheStats is a snapshot of template cache statistics
type CacheStats = internal.CacheStats

// Undefined is substituted for missing positional arguments and keyword
// paths. It renders as "undefined" with the built-in formatters.
var Undefined = internal.Undefined

// IsUndefined reports whether v is Undefined
func IsUndefined(v any) bool {
	return internal.IsUndefined(v)
}

// Lazy defers computing a value until the placeholder it fills is
// rendered. Any func taking no arguments and returning at least one value
// is treated the same way.
type Lazy func() any

// DefaultDirectives returns the directives of a bare %<code> placeholder
func DefaultDirectives(code rune) Directives {
	return internal.DefaultDirectives(code)
}

// ParsePath splits a keyword name such as "a.b[1]" into its segments
func ParsePath(name string) ([]string, error) {
	return internal.ParsePath(name)
}

// GetPath resolves segments against root, returning Undefined when a
// segment is missing
func GetPath(root any, segments []string) any {
	if v, ok := internal.GetPath(root, segments); ok {
		return v
	}
	return Undefined
}
