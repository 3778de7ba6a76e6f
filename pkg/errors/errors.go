package errors

import "fmt"

// Error codes
const (
	CodeConfig           = "CONFIG_ERROR"
	CodeValidation       = "VALIDATION_ERROR"
	CodeNetwork          = "NETWORK_ERROR"
	CodeUpstream         = "UPSTREAM_ERROR"
	CodeEmptyResponse    = "EMPTY_RESPONSE"
	CodeParse            = "PARSE_ERROR"
	CodeGenerationFailed = "GENERATION_FAILED"
)

type StudioError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *StudioError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StudioError) Unwrap() error {
	return e.Cause
}

func (e *StudioError) WithCause(cause error) *StudioError {
	e.Cause = cause
	return e
}

// ConfigError signals that no usable credential could be resolved.
type ConfigError struct {
	*StudioError
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeConfig,
		},
	}
}

// ValidationError signals caller-supplied input failing a stage precondition.
type ValidationError struct {
	*StudioError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// NetworkError signals an unreachable transport, before any upstream status exists.
type NetworkError struct {
	*StudioError
}

func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeNetwork,
			Cause:   cause,
		},
	}
}

// UpstreamError carries the non-2xx status and raw body from the AI provider.
type UpstreamError struct {
	*StudioError
	StatusCode int
	Body       string
}

func NewUpstreamError(message string, statusCode int, body string) *UpstreamError {
	return &UpstreamError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeUpstream,
			Context: map[string]any{
				"status_code": statusCode,
				"body":        body,
			},
		},
		StatusCode: statusCode,
		Body:       body,
	}
}

// Retryable reports whether the upstream failure is a server-side fault.
func (e *UpstreamError) Retryable() bool {
	return e.StatusCode >= 500
}

// EmptyResponseError signals a well-formed 2xx response with no extractable text.
type EmptyResponseError struct {
	*StudioError
}

func NewEmptyResponseError(message string) *EmptyResponseError {
	return &EmptyResponseError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeEmptyResponse,
		},
	}
}

// ParseError signals that the extracted text was not valid JSON.
type ParseError struct {
	*StudioError
}

func NewParseError(message string, cause error) *ParseError {
	return &ParseError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeParse,
			Cause:   cause,
		},
	}
}

// GenerationFailedError signals that zero variants survived validation.
type GenerationFailedError struct {
	*StudioError
}

func NewGenerationFailedError(message string) *GenerationFailedError {
	return &GenerationFailedError{
		StudioError: &StudioError{
			Message: message,
			Code:    CodeGenerationFailed,
		},
	}
}
