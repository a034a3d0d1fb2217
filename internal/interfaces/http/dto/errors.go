package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Failure codes, shared with shared.FailureKind.String
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeConflict   = "CONFLICT"
)

// Request error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body is not valid JSON
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
)

// General error codes
const (
	ErrCodeRateLimited = "RATE_LIMITED"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeUnknown     = "UNKNOWN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Conflicts are reported as 400: a dependent row blocking a delete is a
// client error the caller can fix.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeConflict:   http.StatusBadRequest,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeRateLimited: http.StatusTooManyRequests,
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeUnknown:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Normalize translates any error produced while serving a request into a
// status code and response body. Failures carry their own status; errors
// the request layer does not recognise use fallback.
func Normalize(err error, fallback int) (int, ErrorResponse) {
	if f, ok := shared.AsFailure(err); ok {
		code := f.Kind.String()
		return GetHTTPStatus(code), ErrorResponse{
			Message: f.Message,
			Code:    code,
			Extra:   f.Fields,
		}
	}

	if errors.Is(err, shared.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorResponse{
			Message: shared.MsgValueOutOfRange,
			Code:    ErrCodeValidation,
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := ValidationDetails(verrs)
		messages := lo.Map(details, func(d ValidationDetail, _ int) string { return d.Message })
		return http.StatusBadRequest, ErrorResponse{
			Message: strings.Join(messages, "; "),
			Code:    ErrCodeValidation,
			Details: details,
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
			Code:    ErrCodeInvalidJSON,
		}
	}

	code := ErrCodeUnknown
	if fallback < http.StatusInternalServerError {
		code = ErrCodeBadRequest
		if fallback == http.StatusForbidden {
			code = ErrCodeForbidden
		}
	}
	return fallback, ErrorResponse{Message: err.Error(), Code: code}
}

// ValidationDetails flattens validator errors into one detail per field,
// keyed by the JSON field name registered with the validator.
func ValidationDetails(verrs validator.ValidationErrors) []ValidationDetail {
	return lo.Map(verrs, func(fe validator.FieldError, _ int) ValidationDetail {
		return ValidationDetail{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Code:    validationCode(fe.Tag()),
		}
	})
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "'" + field + "' is required"
	case "min":
		return "'" + field + "' must be at least " + fe.Param() + " characters"
	case "max":
		return "'" + field + "' must be at most " + fe.Param() + " characters"
	case "gt":
		return "'" + field + "' must be greater than " + fe.Param()
	case "gte":
		return "'" + field + "' must be at least " + fe.Param()
	case "oneof":
		return "'" + field + "' must be one of: " + fe.Param()
	case "len":
		return "'" + field + "' must have length " + fe.Param()
	case "numeric":
		return "'" + field + "' must contain only digits"
	default:
		return "'" + field + "' is invalid"
	}
}

func validationCode(tag string) string {
	switch tag {
	case "required":
		return "REQUIRED"
	case "min", "max", "len":
		return "LENGTH"
	case "gt", "gte", "lt", "lte":
		return "RANGE"
	default:
		return "FORMAT"
	}
}
