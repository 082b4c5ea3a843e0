package internal

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TypeChecker reports whether a type code currently has a formatter
type TypeChecker func(code rune) bool

// Lexer compiles a pattern into a Template in a single left-to-right scan.
// Anything that is not a recognised placeholder becomes literal text, so
// compilation never fails.
type Lexer struct {
	source  string
	isKnown TypeChecker
	pos     int
	logger  *zap.Logger

	paths *pathIndex
	text  strings.Builder

	items      []Item
	autoIndex  int
	next       int
	hasKeyword bool
}

// NewLexer creates a lexer for source. isKnown decides which type codes
// produce placeholders.
func NewLexer(source string, isKnown TypeChecker, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isKnown == nil {
		isKnown = func(rune) bool { return false }
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldPatternLength, len(source)))
	return &Lexer{
		source:  source,
		isKnown: isKnown,
		logger:  logger,
	}
}

// Compile is a convenience wrapper around NewLexer(...).Compile()
func Compile(source string, isKnown TypeChecker, logger *zap.Logger) *Template {
	return NewLexer(source, isKnown, logger).Compile()
}

// Compile scans the whole source and returns the compiled template
func (l *Lexer) Compile() *Template {
	for l.pos < len(l.source) {
		if l.source[l.pos] != CharPercent {
			end := strings.IndexByte(l.source[l.pos:], CharPercent)
			if end < 0 {
				end = len(l.source) - l.pos
			}
			l.addText(l.source[l.pos : l.pos+end])
			l.pos += end
			continue
		}

		if ph, ok := l.scanPlaceholder(l.pos); ok {
			raw := l.source[l.pos:ph.end]
			l.pos = ph.end
			l.addPlaceholder(ph, raw)
			continue
		}

		// escaped or dangling percent
		if l.pos+1 < len(l.source) && l.source[l.pos+1] == CharPercent {
			l.pos += 2
		} else {
			l.pos++
		}
		l.addText(StrPercent)
	}
	l.flushText()

	tmpl := &Template{
		source:         l.source,
		items:          l.items,
		hasKeywords:    l.hasKeyword,
		nextPositional: l.next,
	}
	l.logger.Debug(LogMsgPatternCompiled,
		zap.Int(LogFieldPatternLength, len(l.source)),
		zap.Int(LogFieldItems, len(tmpl.items)),
		zap.Bool(LogFieldKeywords, tmpl.hasKeywords),
	)
	return tmpl
}

func (l *Lexer) addPlaceholder(ph placeholder, raw string) {
	if !l.isKnown(ph.directives.TypeCode) {
		l.addText(raw)
		return
	}

	if ph.hasPath {
		path, err := ParsePath(ph.path)
		if err != nil {
			l.addText(raw)
			return
		}
		l.flushText()
		l.items = append(l.items, Item{
			Kind:       ItemKeyword,
			Text:       raw,
			Path:       path,
			Directives: ph.directives,
		})
		l.hasKeyword = true
		return
	}

	index := ph.rawIndex - 1
	if ph.rawIndex == 0 {
		index = l.autoIndex
		l.autoIndex++
	}
	if index+1 > l.next {
		l.next = index + 1
	}
	l.flushText()
	l.items = append(l.items, Item{
		Kind:       ItemPositional,
		Text:       raw,
		Index:      index,
		RawIndex:   ph.rawIndex,
		Directives: ph.directives,
	})
}

// addText queues literal text; consecutive text becomes a single item
func (l *Lexer) addText(text string) {
	l.text.WriteString(text)
}

func (l *Lexer) flushText() {
	if l.text.Len() == 0 {
		return
	}
	l.items = append(l.items, Item{Kind: ItemText, Text: l.text.String()})
	l.text.Reset()
}

// placeholder is the result of matching one %... placeholder
type placeholder struct {
	end        int
	hasPath    bool
	path       string
	rawIndex   int
	directives Directives
}

// scanPlaceholder matches a placeholder starting at the '%' at pos. The
// alternatives are tried in priority order: keyword path, explicit index,
// then none; the first that yields a complete placeholder wins.
func (l *Lexer) scanPlaceholder(pos int) (placeholder, bool) {
	s := l.source
	p := pos + 1

	if close := l.pathClose(p); close >= 0 {
		if d, end, ok := scanDirectives(s, close+1); ok {
			return placeholder{
				end:        end,
				hasPath:    true,
				path:       s[p+1 : close],
				directives: d,
			}, true
		}
	}

	if index, after, ok := scanExplicitIndex(s, p); ok {
		if d, end, ok := scanDirectives(s, after); ok {
			return placeholder{end: end, rawIndex: index, directives: d}, true
		}
	}

	if d, end, ok := scanDirectives(s, p); ok {
		return placeholder{end: end, directives: d}, true
	}
	return placeholder{}, false
}

// scanExplicitIndex matches [1-9][0-9]*'$' at p
func scanExplicitIndex(s string, p int) (int, int, bool) {
	if p >= len(s) || s[p] < '1' || s[p] > '9' {
		return 0, 0, false
	}
	n, q, ok := scanDigits(s, p)
	if !ok || q >= len(s) || s[q] != CharDollar || n > MaxExplicitIndex {
		return 0, 0, false
	}
	return n, q + 1, true
}

// scanDirectives matches [[sign][fill ':']width]['.'precision]type at p.
// Candidates for the width group are tried in the order a backtracking
// matcher would: with sign and fill, sign only, fill only, width only and
// finally without the group.
func scanDirectives(s string, p int) (Directives, int, bool) {
	type groupTry struct{ sign, fill bool }
	tries := []groupTry{{true, true}, {true, false}, {false, true}, {false, false}}

	for _, try := range tries {
		d := Directives{Fill: CharSpace}
		q := p
		if try.sign {
			if q >= len(s) || (s[q] != CharPlus && s[q] != CharMinus) {
				continue
			}
			d.Sign = Sign(s[q])
			q++
		}
		if try.fill {
			r, size := utf8.DecodeRuneInString(s[q:])
			if size == 0 || q+size >= len(s) || s[q+size] != CharColon {
				continue
			}
			d.Fill = r
			q += size + 1
		}
		width, after, ok := scanDigits(s, q)
		if !ok {
			continue
		}
		d.Width = min(width, MaxDirectiveValue)
		if end, ok := scanTail(s, after, &d); ok {
			return d, end, true
		}
	}

	d := Directives{Fill: CharSpace}
	if end, ok := scanTail(s, p, &d); ok {
		return d, end, true
	}
	return Directives{}, 0, false
}

// scanTail matches ['.'precision] and the type code
func scanTail(s string, q int, d *Directives) (int, bool) {
	if q+1 < len(s) && s[q] == CharDot {
		if prec, after, ok := scanDigits(s, q+1); ok {
			d.Precision = min(prec, MaxDirectiveValue)
			q = after
		}
	}
	if q >= len(s) || !isTypeCode(s[q]) {
		return 0, false
	}
	d.TypeCode = rune(s[q])
	return q + 1, true
}

// scanDigits reads one or more ASCII digits; values saturate instead of
// overflowing
func scanDigits(s string, p int) (int, int, bool) {
	q := p
	n := 0
	for q < len(s) && s[q] >= '0' && s[q] <= '9' {
		if n <= MaxExplicitIndex {
			n = n*10 + int(s[q]-'0')
		}
		q++
	}
	return n, q, q > p
}

func isTypeCode(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// pathClose matches '(' body ')' at p and returns the offset of the
// closing parenthesis, or -1.
func (l *Lexer) pathClose(p int) int {
	if p >= len(l.source) || l.source[p] != CharOpenParen {
		return -1
	}
	if l.paths == nil {
		l.paths = newPathIndex(l.source)
	}
	return l.paths.closeAt[p+1]
}

// pathIndex records, for every offset q, the closing parenthesis of a path
// body starting at q, or -1. The body is one or more tokens, each a quoted
// string (which may contain parentheses) or a run of characters other than
// parentheses. Quoted tokens are preferred and runs are tried longest
// first, shortening on failure. A shortened run only leads somewhere new
// when the next token is quoted, so the table is filled right to left in a
// single pass.
type pathIndex struct {
	closeAt []int
}

func newPathIndex(s string) *pathIndex {
	n := len(s)

	// first unescaped double and single quote at or after i
	dq := make([]int, n+2)
	sq := make([]int, n+2)
	dq[n], dq[n+1], sq[n], sq[n+1] = -1, -1, -1, -1
	for i := n - 1; i >= 0; i-- {
		switch s[i] {
		case CharBackslash:
			dq[i], sq[i] = dq[i+2], sq[i+2]
		case CharDoubleQuote:
			dq[i], sq[i] = i, sq[i+1]
		case CharSingleQuote:
			dq[i], sq[i] = dq[i+1], i
		default:
			dq[i], sq[i] = dq[i+1], sq[i+1]
		}
	}

	closeAt := make([]int, n+1)
	// viaQuote[q] is the result through the rightmost quoted token that
	// starts in [q, next parenthesis) and leads to a close
	viaQuote := make([]int, n+1)
	closeAt[n], viaQuote[n] = -1, -1

	// after is a token boundary: more tokens or the closing parenthesis
	after := func(q int) int {
		if closeAt[q] >= 0 {
			return closeAt[q]
		}
		if q < n && s[q] == CharCloseParen {
			return q
		}
		return -1
	}

	nextParen := n
	for q := n - 1; q >= 0; q-- {
		c := s[q]
		if c == CharOpenParen || c == CharCloseParen {
			nextParen = q
			closeAt[q], viaQuote[q] = -1, -1
			continue
		}

		quoted := -1
		end := -1
		switch c {
		case CharDoubleQuote:
			end = dq[q+1]
		case CharSingleQuote:
			end = sq[q+1]
		}
		if end >= 0 {
			quoted = after(end + 1)
		}

		viaQuote[q] = viaQuote[q+1]
		if viaQuote[q] < 0 {
			viaQuote[q] = quoted
		}

		r := quoted
		if r < 0 {
			r = after(nextParen)
		}
		if r < 0 {
			r = viaQuote[q+1]
		}
		closeAt[q] = r
	}
	return &pathIndex{closeAt: closeAt}
}
