package internal

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/ohler55/ojg/jp"
)

// Path errors
var (
	ErrPathUnclosedBracket = errors.New(ErrMsgPathUnclosedBracket)
	ErrPathUnclosedQuote   = errors.New(ErrMsgPathUnclosedQuote)
	ErrPathEmptySegment    = errors.New(ErrMsgPathEmptySegment)
	ErrPathUnexpectedChar  = errors.New(ErrMsgPathUnexpectedChar)
)

// ParsePath splits a keyword name such as `a.b[1]`, `.a` or `["a"]['b']`
// into property segments. Whitespace around segments is ignored and an
// empty name yields no segments.
func ParsePath(name string) ([]string, error) {
	p := pathParser{src: name}
	return p.parse()
}

type pathParser struct {
	src string
	pos int
}

func (p *pathParser) parse() ([]string, error) {
	var segments []string

	for {
		p.skipSpace()
		if p.atEnd() {
			return segments, nil
		}

		switch c := p.src[p.pos]; {
		case c == CharDot:
			p.pos++
			p.skipSpace()
			seg := p.readIdent()
			if seg == "" {
				return nil, ErrPathEmptySegment
			}
			segments = append(segments, seg)

		case c == CharOpenBracket:
			p.pos++
			seg, err := p.readBracket()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		case len(segments) == 0 && isIdentChar(c):
			segments = append(segments, p.readIdent())

		default:
			return nil, ErrPathUnexpectedChar
		}
	}
}

func (p *pathParser) readBracket() (string, error) {
	p.skipSpace()
	if p.atEnd() {
		return "", ErrPathUnclosedBracket
	}

	var seg string
	if c := p.src[p.pos]; c == CharDoubleQuote || c == CharSingleQuote {
		quoted, err := p.readQuoted(c)
		if err != nil {
			return "", err
		}
		seg = quoted
	} else {
		start := p.pos
		for !p.atEnd() && p.src[p.pos] != CharCloseBracket && !isSpace(p.src[p.pos]) {
			p.pos++
		}
		seg = p.src[start:p.pos]
		if seg == "" {
			return "", ErrPathEmptySegment
		}
	}

	p.skipSpace()
	if p.atEnd() || p.src[p.pos] != CharCloseBracket {
		return "", ErrPathUnclosedBracket
	}
	p.pos++
	return seg, nil
}

func (p *pathParser) readQuoted(quote byte) (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for !p.atEnd() {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == CharBackslash && p.pos+1 < len(p.src):
			sb.WriteByte(unescape(p.src[p.pos+1]))
			p.pos += 2
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", ErrPathUnclosedQuote
}

func (p *pathParser) readIdent() string {
	start := p.pos
	for !p.atEnd() && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *pathParser) skipSpace() {
	for !p.atEnd() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *pathParser) atEnd() bool {
	return p.pos >= len(p.src)
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	switch c {
	case CharDot, CharOpenBracket, CharCloseBracket, CharDoubleQuote, CharSingleQuote,
		CharOpenParen, CharCloseParen:
		return false
	}
	return !isSpace(c)
}

// GetPath walks root along path. It never panics; the second result is
// false when any segment is missing.
func GetPath(root any, path []string) (any, bool) {
	cur := root
	for _, seg := range path {
		next, ok := getChild(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func getChild(v any, seg string) (any, bool) {
	switch tv := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return first(jp.C(seg).Get(tv))
	case []any:
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return nil, false
		}
		return first(jp.N(n).Get(tv))
	}
	return reflectChild(reflect.ValueOf(v), seg)
}

func first(got []any) (any, bool) {
	if len(got) == 0 {
		return nil, false
	}
	return got[0], true
}

// reflectChild handles typed maps, slices and structs. Struct fields are
// matched by json tag name first, then by field name.
func reflectChild(rv reflect.Value, seg string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true

	case reflect.Slice, reflect.Array:
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 || n >= rv.Len() {
			return nil, false
		}
		return rv.Index(n).Interface(), true

	case reflect.Struct:
		rt := rv.Type()
		for _, f := range JSONFields(rt) {
			if f.Name != seg {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil || !fv.CanInterface() {
				return nil, false
			}
			return fv.Interface(), true
		}
		if f, ok := rt.FieldByName(seg); ok && f.IsExported() && len(f.Index) == 1 && f.Tag.Get("json") != "-" {
			return rv.FieldByIndex(f.Index).Interface(), true
		}
	}
	return nil, false
}

// JSONField is a struct field as encoding/json exposes it. Fields of
// embedded structs without a tag name are promoted into the parent.
type JSONField struct {
	Name   string
	Index  []int
	tagged bool
}

var jsonFieldCache sync.Map // reflect.Type -> []JSONField

// JSONFields lists the fields of struct type t in declaration order, with
// the same promotion and conflict rules encoding/json applies: the
// shallowest field wins, then a tagged one, and otherwise the name is
// dropped.
func JSONFields(t reflect.Type) []JSONField {
	if cached, ok := jsonFieldCache.Load(t); ok {
		return cached.([]JSONField)
	}
	var all []JSONField
	collectJSONFields(t, nil, make(map[reflect.Type]bool), &all)
	fields := dominantFields(all)
	jsonFieldCache.Store(t, fields)
	return fields
}

func collectJSONFields(t reflect.Type, index []int, visiting map[reflect.Type]bool, out *[]JSONField) {
	if visiting[t] {
		return
	}
	visiting[t] = true
	defer delete(visiting, t)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		idx := append(append(make([]int, 0, len(index)+1), index...), i)

		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if name == "" && ft.Kind() == reflect.Struct {
				collectJSONFields(ft, idx, visiting, out)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		field := JSONField{Name: name, Index: idx, tagged: name != ""}
		if name == "" {
			field.Name = f.Name
		}
		*out = append(*out, field)
	}
}

func dominantFields(all []JSONField) []JSONField {
	byName := make(map[string][]int, len(all))
	for i, f := range all {
		byName[f.Name] = append(byName[f.Name], i)
	}

	fields := make([]JSONField, 0, len(all))
	for i, f := range all {
		if dominant(all, byName[f.Name]) == i {
			fields = append(fields, f)
		}
	}
	return fields
}

// dominant picks the winner among fields sharing a name, or -1
func dominant(all []JSONField, candidates []int) int {
	if len(candidates) == 1 {
		return candidates[0]
	}
	depth := len(all[candidates[0]].Index)
	for _, c := range candidates[1:] {
		depth = min(depth, len(all[c].Index))
	}

	var shallow, tagged []int
	for _, c := range candidates {
		if len(all[c].Index) != depth {
			continue
		}
		shallow = append(shallow, c)
		if all[c].tagged {
			tagged = append(tagged, c)
		}
	}
	switch {
	case len(shallow) == 1:
		return shallow[0]
	case len(tagged) == 1:
		return tagged[0]
	}
	return -1
}
