package f2

import (
	"sync"

	"github.com/itsatony/go-f2/internal"
	"go.uber.org/zap"
)

// Engine owns a type registry and a compiled-template cache and formats
// patterns against argument lists. An Engine is safe for concurrent use.
type Engine struct {
	types    *internal.TypeRegistry
	cache    *internal.TemplateCache
	renderer *internal.Renderer
	mu       sync.RWMutex // registry changes vs. compile-and-cache
	logger   *zap.Logger
}

// New creates a new Engine with the given options. Unless WithoutBuiltins
// is given, the s, d and j formatters are registered.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	inspect := config.inspector
	if inspect == nil {
		inspect = Inspect
	}

	types := internal.NewTypeRegistry(logger)
	e := &Engine{
		types:    types,
		cache:    internal.NewTemplateCache(config.cacheSize, logger),
		renderer: internal.NewRenderer(types, inspect),
		logger:   logger,
	}

	if config.builtins {
		for code, f := range Builtins() {
			if err := e.RegisterType(code, f); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range config.types {
		if err := e.RegisterType(t.code, t.formatter); err != nil {
			return nil, err
		}
	}

	logger.Debug(LogMsgEngineCreated,
		zap.Int(LogFieldCacheSize, config.cacheSize),
		zap.Bool(LogFieldBuiltins, config.builtins),
	)
	return e, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Format formats its arguments. When the first argument is a string it is
// the pattern and the rest are substituted into it; otherwise every
// argument is inspected and the results joined by spaces.
func (e *Engine) Format(args ...any) string {
	return e.ApplyArgs(args, 0, 0)
}

// Subst formats pattern with args. Unlike Format, pattern is always a
// pattern.
func (e *Engine) Subst(pattern string, args ...any) string {
	return e.ApplyArgsTo(pattern, args, 0, 0)
}

// ApplyArgs is Format with the arguments given as a slice. args[offsetLeft]
// is the candidate pattern; the last offsetRight arguments are ignored.
func (e *Engine) ApplyArgs(args []any, offsetLeft, offsetRight int) string {
	offsetLeft = max(offsetLeft, 0)

	if offsetLeft < len(args) {
		if pattern, ok := args[offsetLeft].(string); ok {
			return e.renderer.Render(e.template(pattern), args, offsetLeft+1, offsetRight)
		}
	}

	e.logger.Debug(LogMsgNotAPattern, zap.Int(LogFieldArgs, len(args)))
	return e.renderer.RenderRest(args, offsetLeft, offsetRight)
}

// ApplyArgsTo formats pattern with args[offsetLeft:len(args)-offsetRight].
func (e *Engine) ApplyArgsTo(pattern string, args []any, offsetLeft, offsetRight int) string {
	return e.renderer.Render(e.template(pattern), args, offsetLeft, offsetRight)
}

// Detach returns Format as a standalone function bound to e.
func (e *Engine) Detach() func(args ...any) string {
	return e.Format
}

// RegisterType registers f for the one-character type code, replacing any
// previous formatter, and drops every cached template. Patterns only
// recognise codes a-z; any other rune registers but never matches.
func (e *Engine) RegisterType(code string, f Formatter) error {
	r, ok := internal.SingleRune(code)
	if !ok {
		e.logger.Warn(LogMsgTypeRejected, zap.String(LogFieldTypeCode, code))
		return NewInvalidTypeCodeError(code)
	}
	if f == nil {
		e.logger.Warn(LogMsgTypeRejected, zap.String(LogFieldTypeCode, code))
		return NewInvalidFormatterError(code)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.types.Set(r, f)
	// compiled templates depend on which codes are known
	e.cache.Clear()
	return nil
}

// MustRegisterType registers f and panics if registration fails. It
// returns e for chaining.
func (e *Engine) MustRegisterType(code string, f Formatter) *Engine {
	if err := e.RegisterType(code, f); err != nil {
		panic(err)
	}
	return e
}

// Types returns the registered type codes in sorted order.
func (e *Engine) Types() []string {
	return e.types.Codes()
}

// HasSubs reports whether pattern contains at least one placeholder.
func (e *Engine) HasSubs(pattern string) bool {
	return e.template(pattern).HasSubs()
}

// HasKeySub reports whether pattern has a keyword placeholder whose path
// starts with the path parsed from name.
func (e *Engine) HasKeySub(pattern, name string) bool {
	path, err := internal.ParsePath(name)
	if err != nil {
		return false
	}
	return e.template(pattern).HasKeySub(path)
}

// HasPosSub reports whether pattern has a positional placeholder for the
// 1-based argument index.
func (e *Engine) HasPosSub(pattern string, index int) bool {
	return e.template(pattern).HasPosSub(index - 1)
}

// Compile returns the compiled template for pattern, from the cache when
// possible. The result must not be modified.
func (e *Engine) Compile(pattern string) *Template {
	return e.template(pattern)
}

// CacheStats returns a snapshot of the template cache statistics.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}

// template returns the cached template for pattern, compiling and caching
// it on a miss
func (e *Engine) template(pattern string) *Template {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if tmpl, ok := e.cache.Get(pattern); ok {
		return tmpl
	}
	tmpl := internal.Compile(pattern, e.types.Has, e.logger)
	e.cache.Add(pattern, tmpl)
	return tmpl
}
