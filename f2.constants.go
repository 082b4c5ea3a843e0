package f2

import "github.com/itsatony/go-f2/internal"

// Built-in type codes
const (
	TypeString  = "s"
	TypeDecimal = "d"
	TypeJSON    = "j"
)

// Defaults
const (
	// DefaultCacheSize is the default number of compiled patterns cached
	DefaultCacheSize = internal.DefaultCacheSize
)

// Rendered forms of special values
const (
	StrUndefined      = internal.StrUndefined
	StrNull           = internal.StrNull
	StrNaN            = "NaN"
	StrInfinity       = "Infinity"
	StrCircular       = `"[Circular]"`
	StrUnserializable = `"[Unserializable]"`
	StrTrue           = "true"
	StrFalse          = "false"
)

// Metadata keys for error context
const (
	MetaKeyErrorCode = "error_code"
	MetaKeyTypeCode  = "type_code"
	MetaKeyPath      = "path"
	MetaKeyBuiltin   = "builtin"
)

// Log messages
const (
	LogMsgEngineCreated = "f2 engine created"
	LogMsgTypeRejected  = "type registration rejected"
	LogMsgConfigLoaded  = "configuration loaded"
	LogMsgNotAPattern   = "first argument is not a pattern, inspecting all arguments"
)

// Log field names
const (
	LogFieldCacheSize = "cache_size"
	LogFieldBuiltins  = "builtins"
	LogFieldTypeCode  = "type_code"
	LogFieldArgs      = "arg_count"
	LogFieldPath      = "path"
)
