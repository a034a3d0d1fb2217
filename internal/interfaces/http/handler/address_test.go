package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	locationapp "github.com/delivery/backend/internal/application/location"
	"github.com/delivery/backend/internal/domain/location"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
	"github.com/delivery/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) List(ctx context.Context, query map[string]string) ([]locationapp.AddressResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]locationapp.AddressResponse), args.Error(1)
}

func (m *MockAddressService) Create(ctx context.Context, cmd locationapp.CreateAddressCommand) (locationapp.CreateAddressResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(locationapp.CreateAddressResult), args.Error(1)
}

func (m *MockAddressService) Update(ctx context.Context, id uint64, patch location.AddressPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockAddressService) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func newAddressRouter(svc AddressService) *gin.Engine {
	h := NewAddressHandler(svc)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/addresses", h.List)
	router.POST("/states/:state_id/cities/:city_id/addresses", h.Create)
	router.PATCH("/addresses/:id", h.Update)
	router.DELETE("/addresses/:id", h.Delete)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddressHandler_List(t *testing.T) {
	t.Run("returns matches", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("List", mock.Anything, map[string]string{"cep": "89229780"}).
			Return([]locationapp.AddressResponse{{ID: 1, Street: "Rua Florianopolis", Number: 123, CEP: "89229780"}}, nil)

		w := serve(newAddressRouter(svc), http.MethodGet, "/addresses?cep=89229780", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, MsgAddressesFound, body["message"])
		addresses := body["addresses"].([]any)
		assert.Len(t, addresses, 1)
		assert.Equal(t, "89229780", addresses[0].(map[string]any)["cep"])
		svc.AssertExpectations(t)
	})

	t.Run("no match is 204", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("List", mock.Anything, map[string]string{"cep": "00000000"}).Return([]locationapp.AddressResponse{}, nil)

		w := serve(newAddressRouter(svc), http.MethodGet, "/addresses?cep=00000000", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("bad query is 400", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("List", mock.Anything, mock.Anything).
			Return(nil, shared.NewValidationFailure("Invalid value for query param(s): city_id"))

		w := serve(newAddressRouter(svc), http.MethodGet, "/addresses?city_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid value for query param(s): city_id", decodeJSON(t, w)["message"])
	})

	t.Run("other errors are 403", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("List", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		w := serve(newAddressRouter(svc), http.MethodGet, "/addresses", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAddressHandler_Create(t *testing.T) {
	t.Run("stores the normalized cep", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Create", mock.Anything, locationapp.CreateAddressCommand{
			StateID:    1,
			CityID:     2,
			Street:     "Rua Florianopolis",
			Number:     123,
			PostalCode: valueobject.PostalCode("89229780"),
		}).Return(locationapp.CreateAddressResult{AddressID: 42}, nil)

		w := serve(newAddressRouter(svc), http.MethodPost, "/states/1/cities/2/addresses",
			`{"street":"Rua Florianopolis","number":123,"cep":"89229-780"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(42), body["address_id"])
		assert.NotContains(t, body, "message")
		svc.AssertExpectations(t)
	})

	t.Run("duplicate returns 200 with the existing id", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(locationapp.CreateAddressResult{AddressID: 7, Duplicate: true}, nil)

		w := serve(newAddressRouter(svc), http.MethodPost, "/states/1/cities/2/addresses",
			`{"street":"Rua Florianopolis","number":"123","cep":"89229780"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(7), body["address_id"])
		assert.Equal(t, MsgAddressDuplicate, body["message"])
	})

	tests := []struct {
		name        string
		target      string
		body        string
		wantMessage string
	}{
		{
			name:        "non numeric ids are named together",
			target:      "/states/x/cities/y/addresses",
			body:        `{}`,
			wantMessage: "A numeric id is required for state and city.",
		},
		{
			name:        "missing fields",
			target:      "/states/1/cities/2/addresses",
			body:        `{"street":"Rua"}`,
			wantMessage: "The 'street', 'number' and 'cep' params are required in the req body",
		},
		{
			name:        "cep without hyphen at index 5",
			target:      "/states/1/cities/2/addresses",
			body:        `{"street":"Rua","number":1,"cep":"892297-80"}`,
			wantMessage: "The 'cep' param format is invalid",
		},
		{
			name:        "cep with wrong length",
			target:      "/states/1/cities/2/addresses",
			body:        `{"street":"Rua","number":1,"cep":"8922978"}`,
			wantMessage: "The 'cep' param is invalid",
		},
		{
			name:        "empty street",
			target:      "/states/1/cities/2/addresses",
			body:        `{"street":"","number":1,"cep":"89229780"}`,
			wantMessage: "The 'street' param cannot be empty",
		},
		{
			name:        "non numeric house number",
			target:      "/states/1/cities/2/addresses",
			body:        `{"street":"Rua","number":"abc","cep":"89229780"}`,
			wantMessage: "The 'number' param must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAddressService)

			w := serve(newAddressRouter(svc), http.MethodPost, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMessage, decodeJSON(t, w)["message"])
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		w := serve(newAddressRouter(new(MockAddressService)), http.MethodPost, "/states/1/cities/2/addresses", `{"street":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown state is 404", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(locationapp.CreateAddressResult{}, shared.NewNotFoundFailure(locationapp.MsgStateNotFound))

		w := serve(newAddressRouter(svc), http.MethodPost, "/states/9/cities/2/addresses",
			`{"street":"Rua","number":1,"cep":"89229780"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, locationapp.MsgStateNotFound, decodeJSON(t, w)["message"])
	})
}

func TestAddressHandler_Update(t *testing.T) {
	t.Run("applies only supplied fields", func(t *testing.T) {
		street := "Rua Blumenau"
		svc := new(MockAddressService)
		svc.On("Update", mock.Anything, uint64(3), location.AddressPatch{Street: &street}).Return(nil)

		w := serve(newAddressRouter(svc), http.MethodPatch, "/addresses/3", `{"street":"Rua Blumenau"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, MsgAddressUpdated, decodeJSON(t, w)["message"])
		svc.AssertExpectations(t)
	})

	t.Run("empty body is 400", func(t *testing.T) {
		svc := new(MockAddressService)
		w := serve(newAddressRouter(svc), http.MethodPatch, "/addresses/3", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown address is 404", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Update", mock.Anything, uint64(3), mock.Anything).
			Return(shared.NewNotFoundFailure(locationapp.MsgAddressMissing))

		w := serve(newAddressRouter(svc), http.MethodPatch, "/addresses/3", `{"number":9}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("storage errors are 403", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Update", mock.Anything, uint64(3), mock.Anything).Return(assert.AnError)

		w := serve(newAddressRouter(svc), http.MethodPatch, "/addresses/3", `{"number":9}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAddressHandler_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Delete", mock.Anything, uint64(5)).Return(nil)

		w := serve(newAddressRouter(svc), http.MethodDelete, "/addresses/5", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("in use is 400 with the address id", func(t *testing.T) {
		svc := new(MockAddressService)
		svc.On("Delete", mock.Anything, uint64(5)).
			Return(shared.NewConflictFailure(locationapp.MsgAddressInUse).With("address_id", uint64(5)))

		w := serve(newAddressRouter(svc), http.MethodDelete, "/addresses/5", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, locationapp.MsgAddressInUse, body["message"])
		assert.Equal(t, float64(5), body["address_id"])
		assert.Equal(t, "CONFLICT", body["code"])
	})

	t.Run("non numeric id", func(t *testing.T) {
		w := serve(newAddressRouter(new(MockAddressService)), http.MethodDelete, "/addresses/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "A numeric id is required for address.", decodeJSON(t, w)["message"])
	})
}
