package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/infrastructure/logger"
	"github.com/delivery/backend/internal/interfaces/http/dto"
	"github.com/delivery/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail funnels err through the error normalizer exactly once and writes
// the result. fallback is the status for errors that are not failures the
// normalizer recognizes.
func (h *BaseHandler) Fail(c *gin.Context, err error, fallback int) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeRequestTooLarge, "Request body too large", middleware.GetRequestID(c)))
		return
	}

	status, resp := dto.Normalize(err, fallback)
	resp.RequestID = middleware.GetRequestID(c)

	log := logger.GetGinLogger(c)
	if _, ok := shared.AsFailure(err); ok || errors.Is(err, shared.ErrInvalidInput) {
		log.Warn("request rejected", zap.Int("status", status), zap.String("reason", resp.Message))
	} else {
		log.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, resp)
}

// decodeBody reads a JSON object keeping numbers as json.Number, so field
// validators see exactly what the client sent. An empty body is an empty
// object; anything after the object is rejected.
func decodeBody(c *gin.Context) (map[string]any, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, shared.NewValidationFailure("The request body must be a JSON object")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, shared.NewValidationFailure("The request body must hold a single JSON object")
	}
	return body, nil
}

// queryParams flattens the query string, keeping the first value per key.
func queryParams(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params
}
