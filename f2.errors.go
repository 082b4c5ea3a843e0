package f2

import (
	"errors"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	ErrMsgInvalidTypeCode  = "type code must be exactly one character"
	ErrMsgInvalidFormatter = "type formatter must be a non-nil function"
	ErrMsgConfigParse      = "failed to parse configuration"
	ErrMsgConfigRead       = "failed to read configuration file"
	ErrMsgUnknownBuiltin   = "unknown built-in type"
	ErrMsgInvalidCacheSize = "cache size must not be negative"
)

// Error code constants for categorization
const (
	ErrCodeInvalidTypeCode  = "F2_INVALID_TYPE_CODE"
	ErrCodeInvalidFormatter = "F2_INVALID_FORMATTER"
	ErrCodeConfig           = "F2_CONFIG"
)

// NewInvalidTypeCodeError creates the error returned when a type code is
// not a single character
func NewInvalidTypeCodeError(code string) error {
	return cuserr.NewValidationError(ErrCodeInvalidTypeCode, ErrMsgInvalidTypeCode).
		WithMetadata(MetaKeyErrorCode, ErrCodeInvalidTypeCode).
		WithMetadata(MetaKeyTypeCode, code)
}

// NewInvalidFormatterError creates the error returned for a nil formatter
func NewInvalidFormatterError(code string) error {
	return cuserr.NewValidationError(ErrCodeInvalidFormatter, ErrMsgInvalidFormatter).
		WithMetadata(MetaKeyErrorCode, ErrCodeInvalidFormatter).
		WithMetadata(MetaKeyTypeCode, code)
}

// NewConfigError creates a configuration error, wrapping cause if present
func NewConfigError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	}
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}

// NewConfigFileError creates an error for an unreadable configuration file
func NewConfigFileError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigRead).
		WithMetadata(MetaKeyPath, path)
}

// NewUnknownBuiltinError creates an error for a type alias naming a
// built-in that does not exist
func NewUnknownBuiltinError(code, builtin string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownBuiltin).
		WithMetadata(MetaKeyTypeCode, code).
		WithMetadata(MetaKeyBuiltin, builtin)
}

// IsInvalidTypeCode reports whether err was caused by a malformed type code
func IsInvalidTypeCode(err error) bool {
	return hasErrorCode(err, ErrCodeInvalidTypeCode)
}

// IsInvalidFormatter reports whether err was caused by a nil formatter
func IsInvalidFormatter(err error) bool {
	return hasErrorCode(err, ErrCodeInvalidFormatter)
}

func hasErrorCode(err error, code string) bool {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	got, ok := customErr.GetMetadata(MetaKeyErrorCode)
	return ok && got == code
}
