// Package f2 formats strings from printf-style patterns with typed,
// positional, indexed and keyword placeholders.
//
// # Basic Usage
//
// Create an engine and format:
//
//	engine := f2.MustNew()
//	engine.Format("%s has %d items", "cart", 3)
//	// "cart has 3 items"
//
// # Placeholders
//
// Implicit index, taking arguments in order:
//
//	%s %d %j
//
// Explicit 1-based index:
//
//	engine.Format("%2$s %1$s", "a", "b") // "b a"
//
// Keyword, looked up in the last argument:
//
//	engine.Format("Hello, %(user.name)s!", map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//
// # Directives
//
// Between the '%' (or index/keyword) and the type code a placeholder may
// carry [sign][fill:]width and .precision:
//
//	%5s     "  foo"
//	%-5s    "foo  "
//	%x:5s   "xxfoo"
//	%.2s    "fo"
//	%+d     "+5"
//	%.3d    "005"
//
// Sign and fill are only recognised together with a width. "%%" is a
// literal percent sign; anything that does not form a placeholder with a
// registered type code is copied to the output unchanged.
//
// # Built-in Types
//
//	s  string
//	d  decimal number
//	j  JSON (via Inspect)
//
// # Extra Arguments
//
// Arguments that no placeholder consumes are appended, separated by
// spaces, in their Inspect form:
//
//	engine.Format("%s", "foo", "bar") // `foo "bar"`
//
// # Lazy Values
//
// An argument that is a func with no parameters is called when (and only
// if) its placeholder is rendered:
//
//	engine.Format("%s", f2.Lazy(func() any { return expensive() }))
//
// # Custom Types
//
//	engine.MustRegisterType("q", func(v any, d f2.Directives) string {
//	    return strconv.Quote(f2.Stringify(v))
//	})
package f2
