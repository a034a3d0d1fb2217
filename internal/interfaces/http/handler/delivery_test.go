package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	logisticsapp "github.com/delivery/backend/internal/application/logistics"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) List(ctx context.Context, query map[string]string) ([]logisticsapp.DeliveryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logisticsapp.DeliveryResponse), args.Error(1)
}

func TestDeliveryHandler_List(t *testing.T) {
	newRouter := func(svc DeliveryService) *gin.Engine {
		router := gin.New()
		router.GET("/deliveries", NewDeliveryHandler(svc).List)
		return router
	}

	tests := []struct {
		name       string
		target     string
		result     []logisticsapp.DeliveryResponse
		err        error
		wantStatus int
	}{
		{
			name:       "matches",
			target:     "/deliveries?address_id=3",
			result:     []logisticsapp.DeliveryResponse{{ID: 1, AddressID: 3, SaleID: 8, DeliveryForecast: time.Now()}},
			wantStatus: http.StatusOK,
		},
		{name: "no match", target: "/deliveries?sale_id=99", result: []logisticsapp.DeliveryResponse{}, wantStatus: http.StatusNoContent},
		{
			name:       "bad filter",
			target:     "/deliveries?address_id=x",
			err:        shared.NewValidationFailure("Invalid value for query param(s): address_id"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockDeliveryService)
			if tt.err != nil {
				svc.On("List", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("List", mock.Anything, mock.Anything).Return(tt.result, nil)
			}

			w := serve(newRouter(svc), http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, decodeJSON(t, w)["deliveries"], len(tt.result))
			}
		})
	}
}
