package internal

import "fmt"

// ItemKind identifies the kind of a compiled template item
type ItemKind int

// Item kind constants
const (
	ItemText ItemKind = iota
	ItemPositional
	ItemKeyword
)

// Item kind names for debugging
const (
	ItemKindNameText       = "TEXT"
	ItemKindNamePositional = "POSITIONAL"
	ItemKindNameKeyword    = "KEYWORD"
	ItemKindNameUnknown    = "UNKNOWN"
)

// String returns the string representation of the item kind
func (k ItemKind) String() string {
	switch k {
	case ItemText:
		return ItemKindNameText
	case ItemPositional:
		return ItemKindNamePositional
	case ItemKeyword:
		return ItemKindNameKeyword
	default:
		return ItemKindNameUnknown
	}
}

// Sign is the optional sign directive of a placeholder
type Sign byte

// Sign constants
const (
	SignNone  Sign = 0
	SignPlus  Sign = CharPlus
	SignMinus Sign = CharMinus
)

// String returns the sign as written in a pattern, or "" when absent
func (s Sign) String() string {
	if s == SignNone {
		return ""
	}
	return string(rune(s))
}

// Directives carries the formatting directives of a placeholder.
// Width and Precision use zero for "absent".
type Directives struct {
	Sign      Sign
	Fill      rune
	Width     int
	Precision int
	TypeCode  rune
}

// DefaultDirectives returns directives with only the default fill set
func DefaultDirectives(typeCode rune) Directives {
	return Directives{Fill: CharSpace, TypeCode: typeCode}
}

// FillOrDefault returns the fill character, falling back to a space
func (d Directives) FillOrDefault() rune {
	if d.Fill == 0 {
		return CharSpace
	}
	return d.Fill
}

// Item is one element of a compiled template
type Item struct {
	Kind ItemKind

	// Text is the literal output for text items and the raw source of
	// placeholders.
	Text string

	// Index is the zero-based argument index of positional items.
	Index int

	// RawIndex is the 1-based index as written for %N$ forms, zero otherwise.
	RawIndex int

	// Path holds the property segments of keyword items.
	Path []string

	Directives Directives
}

// String returns a human-readable representation of the item
func (it Item) String() string {
	switch it.Kind {
	case ItemPositional:
		return fmt.Sprintf("%s{%d %q}", it.Kind, it.Index, it.Text)
	case ItemKeyword:
		return fmt.Sprintf("%s{%q %q}", it.Kind, it.Path, it.Text)
	default:
		return fmt.Sprintf("%s{%q}", it.Kind, it.Text)
	}
}

// Template is a compiled pattern. It is immutable once built.
type Template struct {
	source         string
	items          []Item
	hasKeywords    bool
	nextPositional int
}

// Source returns the pattern the template was compiled from
func (t *Template) Source() string {
	return t.source
}

// Items returns a copy of the compiled items
func (t *Template) Items() []Item {
	out := make([]Item, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of compiled items
func (t *Template) Len() int {
	return len(t.items)
}

// HasKeywords reports whether the template references a keyword placeholder
func (t *Template) HasKeywords() bool {
	return t.hasKeywords
}

// NextPositional returns one past the highest positional index referenced,
// or zero when there is none
func (t *Template) NextPositional() int {
	return t.nextPositional
}

// HasSubs reports whether the template has any positional or keyword item
func (t *Template) HasSubs() bool {
	for _, it := range t.items {
		if it.Kind != ItemText {
			return true
		}
	}
	return false
}

// HasKeySub reports whether a keyword item's path starts with path
func (t *Template) HasKeySub(path []string) bool {
	for _, it := range t.items {
		if it.Kind == ItemKeyword && hasPathPrefix(it.Path, path) {
			return true
		}
	}
	return false
}

// HasPosSub reports whether a positional item refers to the zero-based index
func (t *Template) HasPosSub(index int) bool {
	for _, it := range t.items {
		if it.Kind == ItemPositional && it.Index == index {
			return true
		}
	}
	return false
}

func hasPathPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i, seg := range prefix {
		if path[i] != seg {
			return false
		}
	}
	return true
}
