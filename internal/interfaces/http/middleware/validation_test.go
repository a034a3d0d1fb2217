package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/delivery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	type permissionBody struct {
		Description string `json:"description" binding:"required,min=2"`
	}
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/permissions", func(c *gin.Context) {
		var req permissionBody
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantDetails int
	}{
		{name: "missing field", body: `{}`, wantMessage: "'description' is required", wantDetails: 1},
		{name: "too short", body: `{"description":"R"}`, wantMessage: "'description' must be at least 2 characters", wantDetails: 1},
		{name: "malformed json", body: `{"description":`, wantMessage: "unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/permissions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(RequestIDHeader, "req-9")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Message   string                 `json:"message"`
				Code      string                 `json:"code"`
				RequestID string                 `json:"request_id"`
				Details   []dto.ValidationDetail `json:"details"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeValidation, resp.Code)
			assert.Equal(t, "req-9", resp.RequestID)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Len(t, resp.Details, tt.wantDetails)
			if tt.wantDetails > 0 {
				assert.Equal(t, "description", resp.Details[0].Field)
			}
		})
	}
}
