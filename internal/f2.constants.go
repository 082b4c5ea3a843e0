package internal

// Pattern grammar characters
const (
	CharPercent      = '%'
	CharOpenParen    = '('
	CharCloseParen   = ')'
	CharDollar       = '$'
	CharColon        = ':'
	CharDot          = '.'
	CharPlus         = '+'
	CharMinus        = '-'
	CharSpace        = ' '
	CharBackslash    = '\\'
	CharDoubleQuote  = '"'
	CharSingleQuote  = '\''
	CharOpenBracket  = '['
	CharCloseBracket = ']'
)

// StrPercent is the literal rendering of an escaped or dangling percent sign.
const StrPercent = "%"

// Limits
const (
	// DefaultCacheSize is the number of compiled templates kept by default.
	DefaultCacheSize = 255

	// MaxDirectiveValue caps width and precision values read from a pattern.
	MaxDirectiveValue = 1<<16 - 1

	// MaxExplicitIndex caps %N$ indexes; larger ones are not placeholders.
	MaxExplicitIndex = 1<<31 - 1
)

// Rendering of sentinel values
const (
	StrUndefined = "undefined"
	StrNull      = "null"
)

// Log messages
const (
	LogMsgLexerCreated    = "lexer created"
	LogMsgPatternCompiled = "pattern compiled"
	LogMsgRegistryCreated = "type registry created"
	LogMsgTypeRegistered  = "type formatter registered"
	LogMsgTypeOverwritten = "type formatter overwritten"
	LogMsgCacheCreated    = "template cache created"
	LogMsgCacheCleared    = "template cache cleared"
	LogMsgCacheEvicted    = "template evicted from cache"
)

// Log field names
const (
	LogFieldPatternLength = "pattern_length"
	LogFieldItems         = "item_count"
	LogFieldTypeCode      = "type_code"
	LogFieldCapacity      = "capacity"
	LogFieldEntries       = "entries"
	LogFieldKeywords      = "has_keywords"
)

// Path error messages
const (
	ErrMsgPathUnclosedBracket = "unclosed bracket in path"
	ErrMsgPathUnclosedQuote   = "unterminated quoted segment in path"
	ErrMsgPathEmptySegment    = "empty segment in path"
	ErrMsgPathUnexpectedChar  = "unexpected character in path"
)
