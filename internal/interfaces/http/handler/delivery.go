package handler

import (
	"context"
	"net/http"

	logisticsapp "github.com/delivery/backend/internal/application/logistics"
	"github.com/gin-gonic/gin"
)

// DeliveryService is the delivery use case surface used by DeliveryHandler.
type DeliveryService interface {
	List(ctx context.Context, query map[string]string) ([]logisticsapp.DeliveryResponse, error)
}

// DeliveryHandler handles delivery API endpoints
type DeliveryHandler struct {
	BaseHandler
	deliveries DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(deliveries DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

// List godoc
// @ID           listDeliveries
// @Summary      List deliveries
// @Description  Lists deliveries by address or sale. Requires READ.
// @Tags         deliveries
// @Produce      json
// @Param        address_id query int false "Address ID"
// @Param        sale_id query int false "Sale ID"
// @Success      200 {object} DeliveryListResponse
// @Success      204 "No delivery matched"
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /deliveries [get]
func (h *DeliveryHandler) List(c *gin.Context) {
	deliveries, err := h.deliveries.List(c.Request.Context(), queryParams(c))
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if len(deliveries) == 0 {
		h.NoContent(c)
		return
	}
	h.OK(c, DeliveryListResponse{Deliveries: deliveries})
}
