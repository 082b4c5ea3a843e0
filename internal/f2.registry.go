package internal

import (
	"sort"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Formatter renders a substituted value according to its directives
type Formatter func(value any, d Directives) string

// TypeRegistry maps single-character type codes to formatters.
// It is thread-safe for concurrent read/write access.
type TypeRegistry struct {
	formatters map[rune]Formatter
	mu         sync.RWMutex
	logger     *zap.Logger
}

// NewTypeRegistry creates an empty type registry
func NewTypeRegistry(logger *zap.Logger) *TypeRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &TypeRegistry{
		formatters: make(map[rune]Formatter),
		logger:     logger,
	}
}

// Set stores f for code, replacing any previous formatter. Callers
// validate code and f.
func (r *TypeRegistry) Set(code rune, f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[code]; exists {
		r.logger.Warn(LogMsgTypeOverwritten, zap.String(LogFieldTypeCode, string(code)))
	}
	r.formatters[code] = f
	r.logger.Debug(LogMsgTypeRegistered, zap.String(LogFieldTypeCode, string(code)))
}

// Lookup returns the formatter registered for code
func (r *TypeRegistry) Lookup(code rune) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[code]
	return f, ok
}

// Has reports whether code has a formatter
func (r *TypeRegistry) Has(code rune) bool {
	_, ok := r.Lookup(code)
	return ok
}

// Codes returns all registered type codes in sorted order
func (r *TypeRegistry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.formatters))
	for code := range r.formatters {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	return codes
}

// SingleRune returns the only rune of s, or false if s is not exactly one
// character long
func SingleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	return r, true
}
