package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/delivery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes gin's validator report JSON field names, falling
// back to form tags for query bindings.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// FormatValidationErrors builds a validation response with per-field
// details. Non validator errors produce a response without details.
func FormatValidationErrors(err error, requestID string) dto.ErrorResponse {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return dto.NewValidationErrorResponse(err.Error(), requestID, nil)
	}
	_, resp := dto.Normalize(verrs, http.StatusBadRequest)
	resp.RequestID = requestID
	return resp
}

// HandleValidationError writes a 400 validation response.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}
