package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Generation specific errors
	CodeMissingAPIKey ErrorCode = "MISSING_API_KEY"
	CodeRateLimited   ErrorCode = "RATE_LIMITED"
	CodeLLMService    ErrorCode = "LLM_SERVICE_ERROR"

	// File upload errors
	CodeUnsupportedFile ErrorCode = "UNSUPPORTED_FILE_TYPE"
	CodeFileExtraction  ErrorCode = "FILE_EXTRACTION_ERROR"
	CodeEmptyExtraction ErrorCode = "EMPTY_EXTRACTION"

	// Feedback errors
	CodeEmailDelivery ErrorCode = "EMAIL_DELIVERY_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is (or wraps) a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewMissingAPIKeyError() *DomainError {
	return NewError(CodeMissingAPIKey, "Gemini API key not found. Please provide one or configure it in secrets.", nil)
}

func NewUnauthorizedError(err error) *DomainError {
	return NewError(CodeUnauthorized, "Invalid API key or authentication error.", err)
}

func NewRateLimitedError(err error) *DomainError {
	return NewError(CodeRateLimited, "API rate limit exceeded. Please try again later.", err)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMService, fmt.Sprintf("Error generating study materials: %v", err), err)
}

func NewUnsupportedFileError(contentType string) *DomainError {
	return NewError(CodeUnsupportedFile, fmt.Sprintf("Unsupported file type (%s). Please upload PDF or TXT.", contentType), nil)
}

func NewFileExtractionError(message string, err error) *DomainError {
	return NewError(CodeFileExtraction, message, err)
}

func NewEmptyExtractionError() *DomainError {
	return NewError(CodeEmptyExtraction, "File seems empty or text could not be extracted.", nil)
}

func NewEmailDeliveryError(err error) *DomainError {
	return NewError(CodeEmailDelivery, fmt.Sprintf("Failed to send feedback: %v", err), err)
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures so a response can report
// every invalid field at once
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, ve := range e {
		messages = append(messages, ve.Error())
	}
	return strings.Join(messages, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidValueError(field, value string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("invalid value: %s", value),
	}
}
