package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Catalog errors
	ErrCodeCatalogLoad   ErrorCode = "CATALOG_LOAD"
	ErrCodeCatalogSource ErrorCode = "CATALOG_SOURCE"
	ErrCodeUnknownKind   ErrorCode = "UNKNOWN_KIND"

	// Filesystem errors
	ErrCodeFileExists ErrorCode = "FILE_EXISTS"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// KakapoError represents a structured error with context
type KakapoError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *KakapoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KakapoError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *KakapoError) WithDetail(key string, value interface{}) *KakapoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *KakapoError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new KakapoError
func New(code ErrorCode, message string) *KakapoError {
	return &KakapoError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a KakapoError
func Wrap(err error, code ErrorCode, message string) *KakapoError {
	return &KakapoError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error chain contains a KakapoError with the given code.
// The outermost KakapoError wins.
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return GetCode(err) == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	kerr, ok := err.(*KakapoError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return kerr.Code
}

// As returns the outermost KakapoError in err's chain.
func As(err error) (*KakapoError, bool) {
	for err != nil {
		if kerr, ok := err.(*KakapoError); ok {
			return kerr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
