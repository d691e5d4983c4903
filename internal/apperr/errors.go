package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced in API responses.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeAuthentication      = "AUTHENTICATION_ERROR"
	CodeAuthorization       = "AUTHORIZATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeQuoteExpired        = "QUOTE_EXPIRED"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeInvalidAddress      = "INVALID_ADDRESS"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeExternalService     = "EXTERNAL_SERVICE_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
	CodeUnknown             = "UNKNOWN_ERROR"
)

// Error is a typed application error carrying an HTTP status, a
// machine-readable code and an operational flag. Operational errors are
// expected business failures; non-operational ones are faults.
type Error struct {
	Code        string
	Message     string
	Status      int
	Operational bool
	Details     any
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an operational application error.
func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status, Operational: true}
}

// WithDetails attaches structured details to a copy of the error.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Validation returns a 400 VALIDATION_ERROR with optional field details.
func Validation(message string, details any) *Error {
	err := New(CodeValidation, message, http.StatusBadRequest)
	err.Details = details
	return err
}

// Authentication returns a 401 AUTHENTICATION_ERROR.
func Authentication(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return New(CodeAuthentication, message, http.StatusUnauthorized)
}

// Authorization returns a 403 AUTHORIZATION_ERROR.
func Authorization(message string) *Error {
	if message == "" {
		message = "Insufficient permissions"
	}
	return New(CodeAuthorization, message, http.StatusForbidden)
}

// NotFound returns a 404 for the named resource.
func NotFound(resource string) *Error {
	if resource == "" {
		resource = "Resource"
	}
	return New(CodeNotFound, resource+" not found", http.StatusNotFound)
}

// Conflict returns a 409 CONFLICT.
func Conflict(message string) *Error {
	return New(CodeConflict, message, http.StatusConflict)
}

// QuoteExpired returns the fixed 400 quote-expiry error.
func QuoteExpired() *Error {
	return New(CodeQuoteExpired, "Quote has expired. Please request a new quote.", http.StatusBadRequest)
}

// InsufficientBalance returns a 400 for the given token symbol.
func InsufficientBalance(token string) *Error {
	return New(CodeInsufficientBalance, fmt.Sprintf("Insufficient %s balance", token), http.StatusBadRequest)
}

// InvalidAddress returns a 400 INVALID_ADDRESS.
func InvalidAddress(addressType string) *Error {
	if addressType == "" {
		addressType = "address"
	}
	return New(CodeInvalidAddress, fmt.Sprintf("Invalid %s format", addressType), http.StatusBadRequest)
}

// RateLimited returns a 429 RATE_LIMIT_EXCEEDED.
func RateLimited(message string) *Error {
	if message == "" {
		message = "Too many requests"
	}
	return New(CodeRateLimitExceeded, message, http.StatusTooManyRequests)
}

// ExternalService returns a 502 for an upstream provider failure.
func ExternalService(service, message string) *Error {
	return New(CodeExternalService, fmt.Sprintf("%s: %s", service, message), http.StatusBadGateway)
}

// From converts any error into an *Error. Typed errors pass through;
// everything else is downgraded to UNKNOWN_ERROR/500 and marked
// non-operational so the transport layer always has an envelope to send.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if err != nil {
		return &Error{Code: CodeUnknown, Message: err.Error(), Status: http.StatusInternalServerError}
	}
	return &Error{Code: CodeUnknown, Message: "An unexpected error occurred", Status: http.StatusInternalServerError}
}

// Is reports whether err is an application error with the given code.
func Is(err error, code string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
