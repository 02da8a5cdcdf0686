package apperrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Code is a stable machine-readable error kind.
type Code string

const (
	CodeInvalidAmount       Code = "INVALID_AMOUNT"
	CodeInvalidTokenAddress Code = "INVALID_TOKEN_ADDRESS"
	CodePoolNotFound        Code = "POOL_NOT_FOUND"
	CodeMirrorNode          Code = "MIRROR_NODE_ERROR"
	CodeConfiguration       Code = "CONFIGURATION_ERROR"
	CodeValidation          Code = "VALIDATION_ERROR"
)

// FieldViolation describes a single invalid request field.
type FieldViolation struct {
	Field  string
	Reason string
}

// Error is the single error type produced by the normalisation core.
// StatusCode is set only for CodeMirrorNode, Fields only for CodeValidation.
type Error struct {
	Code       Code
	Message    string
	StatusCode int
	Fields     []FieldViolation
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrPoolNotFound) matches any pool lookup failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	// ErrInvalidAmount is returned when an amount is zero, negative or unparseable.
	ErrInvalidAmount = &Error{Code: CodeInvalidAmount, Message: "invalid amount"}

	// ErrInvalidTokenAddress is returned when a token identifier cannot be resolved.
	ErrInvalidTokenAddress = &Error{Code: CodeInvalidTokenAddress, Message: "invalid token address"}

	// ErrPoolNotFound is returned when no pool exists for the requested pair.
	ErrPoolNotFound = &Error{Code: CodePoolNotFound, Message: "pool not found"}

	// ErrMirrorNode is returned when a mirror node or pool index call
	// answers with a non-success status.
	ErrMirrorNode = &Error{Code: CodeMirrorNode, Message: "mirror node error"}

	// ErrConfiguration is returned when required configuration is absent.
	ErrConfiguration = &Error{Code: CodeConfiguration, Message: "configuration error"}

	// ErrValidation is returned when a request fails schema validation.
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
)

// InvalidAmount builds an INVALID_AMOUNT error for the given raw amount.
func InvalidAmount(amount string) error {
	return &Error{
		Code:    CodeInvalidAmount,
		Message: fmt.Sprintf("Invalid amount: %s. Amount must be greater than zero", amount),
	}
}

func InvalidTokenAddress(address string) error {
	return &Error{
		Code:    CodeInvalidTokenAddress,
		Message: fmt.Sprintf("Invalid token address: %s", address),
	}
}

func PoolNotFound(tokenA, tokenB string) error {
	return &Error{
		Code:    CodePoolNotFound,
		Message: fmt.Sprintf("Pool not found for tokens %s and %s", tokenA, tokenB),
	}
}

// MirrorNode builds a transport error carrying the upstream HTTP status code.
func MirrorNode(statusCode int, message string) error {
	return &Error{
		Code:       CodeMirrorNode,
		Message:    fmt.Sprintf("Mirror Node error: %s", message),
		StatusCode: statusCode,
	}
}

func Configuration(message string) error {
	return &Error{
		Code:    CodeConfiguration,
		Message: fmt.Sprintf("Configuration error: %s", message),
	}
}

// Validation builds a single error enumerating every violated field.
func Validation(fields []FieldViolation) error {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("Field %q - %s", f.Field, f.Reason))
	}
	return &Error{
		Code:    CodeValidation,
		Message: "Invalid parameters: " + strings.Join(parts, "; "),
		Fields:  fields,
	}
}

// CodeOf extracts the error kind from err, if any.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// StatusCodeOf returns the upstream status code carried by a MIRROR_NODE_ERROR.
func StatusCodeOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeMirrorNode {
		return e.StatusCode, true
	}
	return 0, false
}
