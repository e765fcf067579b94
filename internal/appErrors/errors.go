package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error class.
type ErrorCode string

// AppError is the application error envelope.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// MarshalJSON hides the wrapped error and the HTTP code from clients.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Accounts
	ErrUserNotFound     = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrDuplicateAccount = New(CodeDuplicateAccount, "An account with this email already exists", http.StatusConflict)
	ErrEmailConflict    = New(CodeEmailConflict, "Email is already used by another account", http.StatusConflict)
	ErrWeakPassword     = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole  = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrCannotModifySelf = New(CodeCannotModifySelf, "Cannot modify your own account", http.StatusBadRequest)

	// Donations and catalog
	ErrDonationNotFound    = New(CodeDonationNotFound, "Donation not found", http.StatusNotFound)
	ErrLocationNotFound    = New(CodeLocationNotFound, "Location not found", http.StatusNotFound)
	ErrPackageNotFound     = New(CodePackageNotFound, "Package not found", http.StatusNotFound)
	ErrCertificateNotFound = New(CodeCertificateNotFound, "Certificate not found", http.StatusNotFound)
	ErrNewsNotFound        = New(CodeNewsNotFound, "News article not found", http.StatusNotFound)
	ErrPermissionDenied    = New(CodePermissionDenied, "Permission denied", http.StatusForbidden)

	// Payments
	ErrGatewayDisabled  = New(CodeGatewayDisabled, "Payment gateway is not configured", http.StatusServiceUnavailable)
	ErrInvalidSignature = New(CodeInvalidSignature, "Webhook signature verification failed", http.StatusUnauthorized)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// GatewayFailure wraps a payment provider error; the reason is forwarded to
// the caller but the call is never retried automatically.
func GatewayFailure(reason string) *AppError {
	return New(CodeGatewayFailure, "Payment gateway error: "+reason, http.StatusBadGateway)
}

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}
