package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestFailureKindCodesMatch(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, shared.KindValidation.String())
	assert.Equal(t, ErrCodeNotFound, shared.KindNotFound.String())
	assert.Equal(t, ErrCodeConflict, shared.KindConflict.String())
}

type bindTarget struct {
	Description string `json:"description" validate:"required,min=2"`
	Amount      int    `json:"amount" validate:"gt=0"`
}

func jsonTagValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestNormalize(t *testing.T) {
	t.Run("validation failure", func(t *testing.T) {
		status, body := Normalize(shared.NewValidationFailure("The 'cep' is invalid"), http.StatusForbidden)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, ErrCodeValidation, body.Code)
		assert.Equal(t, "The 'cep' is invalid", body.Message)
	})

	t.Run("not found failure", func(t *testing.T) {
		status, body := Normalize(shared.NewNotFoundFailure("Address not found"), http.StatusBadRequest)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, ErrCodeNotFound, body.Code)
	})

	t.Run("conflict failure keeps extra fields", func(t *testing.T) {
		err := shared.NewConflictFailure("Address is in use and cannot be deleted.").With("address_id", uint64(9))
		status, body := Normalize(fmt.Errorf("delete: %w", err), http.StatusBadRequest)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, ErrCodeConflict, body.Code)
		assert.Equal(t, uint64(9), body.Extra["address_id"])
	})

	t.Run("storage range error is a validation error", func(t *testing.T) {
		err := fmt.Errorf("update address: %w", fmt.Errorf("%w: value too long", shared.ErrInvalidInput))
		status, body := Normalize(err, http.StatusForbidden)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, ErrCodeValidation, body.Code)
		assert.Equal(t, shared.MsgValueOutOfRange, body.Message)
	})

	t.Run("validator errors are joined", func(t *testing.T) {
		err := jsonTagValidator().Struct(bindTarget{Description: "", Amount: 0})
		require.Error(t, err)

		status, body := Normalize(err, http.StatusForbidden)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "'description' is required; 'amount' must be greater than 0", body.Message)
		require.Len(t, body.Details, 2)
		assert.Equal(t, "description", body.Details[0].Field)
		assert.Equal(t, "REQUIRED", body.Details[0].Code)
		assert.Equal(t, "RANGE", body.Details[1].Code)
	})

	t.Run("json syntax error", func(t *testing.T) {
		var v map[string]any
		err := json.Unmarshal([]byte(`{"street":`), &v)
		require.Error(t, err)

		status, body := Normalize(err, http.StatusForbidden)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, ErrCodeInvalidJSON, body.Code)
	})

	t.Run("json type error", func(t *testing.T) {
		var v bindTarget
		err := json.Unmarshal([]byte(`{"amount":"x"}`), &v)
		require.Error(t, err)

		status, _ := Normalize(err, http.StatusForbidden)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("unknown error uses fallback", func(t *testing.T) {
		status, body := Normalize(assert.AnError, http.StatusForbidden)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, ErrCodeForbidden, body.Code)
		assert.Equal(t, assert.AnError.Error(), body.Message)

		status, body = Normalize(assert.AnError, http.StatusBadRequest)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, ErrCodeBadRequest, body.Code)
	})
}

func TestErrorResponseJSON(t *testing.T) {
	t.Run("flattens extra fields", func(t *testing.T) {
		resp := ErrorResponse{
			Message:   "Address is in use and cannot be deleted.",
			Code:      ErrCodeConflict,
			RequestID: "req-1",
			Extra:     map[string]any{"address_id": 4, "message": "ignored"},
		}
		data, err := json.Marshal(resp)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "Address is in use and cannot be deleted.", decoded["message"])
		assert.Equal(t, "CONFLICT", decoded["code"])
		assert.Equal(t, "req-1", decoded["request_id"])
		assert.Equal(t, float64(4), decoded["address_id"])
		assert.NotContains(t, decoded, "details")
	})

	t.Run("omits empty request id", func(t *testing.T) {
		data, err := json.Marshal(NewErrorResponse(ErrCodeNotFound, "Address not found"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Address not found","code":"NOT_FOUND"}`, string(data))
	})
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{{Field: "description", Message: "'description' is required"}}
	resp := NewValidationErrorResponse("Request validation failed", "req-2", details)

	assert.Equal(t, ErrCodeValidation, resp.Code)
	assert.Equal(t, "req-2", resp.RequestID)
	assert.Equal(t, details, resp.Details)
}
