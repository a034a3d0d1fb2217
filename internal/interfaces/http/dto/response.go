package dto

import "encoding/json"

// ErrorResponse is the body of every failed request.
// @Description Error response
type ErrorResponse struct {
	Message   string             `json:"message" example:"Address not found"`
	Code      string             `json:"code" example:"NOT_FOUND"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
	// Extra holds entity specific fields emitted at the top level,
	// e.g. address_id on a conflict.
	Extra map[string]any `json:"-"`
}

// ValidationDetail describes one invalid field.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// MarshalJSON flattens Extra into the top-level object. Extra never
// overrides the standard keys.
func (r ErrorResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+4)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["message"] = r.Message
	out["code"] = r.Code
	if r.RequestID != "" {
		out["request_id"] = r.RequestID
	}
	if len(r.Details) > 0 {
		out["details"] = r.Details
	}
	return json.Marshal(out)
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

// NewErrorResponseWithRequestID creates an error response tagged with the request id
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, RequestID: requestID}
}

// NewValidationErrorResponse creates a 400 validation response with per-field details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Code:      ErrCodeValidation,
		Message:   message,
		RequestID: requestID,
		Details:   details,
	}
}

// MessageResponse is a body carrying only a human readable message.
// @Description Message response
type MessageResponse struct {
	Message string `json:"message" example:"Address updated successfully!"`
}
