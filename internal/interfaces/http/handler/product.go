package handler

import (
	"context"
	"net/http"

	catalogapp "github.com/delivery/backend/internal/application/catalog"
	"github.com/delivery/backend/internal/application/validation"
	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// MsgProductCreated is returned by a successful product create.
const MsgProductCreated = "Product created successfully!"

// ProductService is the product use case surface used by ProductHandler.
type ProductService interface {
	List(ctx context.Context, query map[string]string) ([]catalogapp.ProductResponse, error)
	Create(ctx context.Context, in catalogapp.ProductInput) (*catalogapp.ProductResponse, error)
	Replace(ctx context.Context, id uint64, in catalogapp.ProductInput) error
	Patch(ctx context.Context, id uint64, patch catalog.ProductPatch) error
	Delete(ctx context.Context, id uint64) error
}

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	products ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Description  Lists products by name substring and price range. Requires READ.
// @Tags         products
// @Produce      json
// @Param        name query string false "Name contains"
// @Param        price_min query number false "Minimum suggested price"
// @Param        price_max query number false "Maximum suggested price"
// @Success      200 {object} ProductListResponse
// @Success      204 "No product matched"
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), queryParams(c))
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if len(products) == 0 {
		h.NoContent(c)
		return
	}
	h.OK(c, ProductListResponse{Products: products})
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Description  Creates a product with a name and a positive suggested price. Requires WRITE.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body ProductRequest true "Product"
// @Success      200 {object} CreateProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	product, err := h.products.Create(c.Request.Context(), in)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	h.OK(c, CreateProductResponse{Message: MsgProductCreated, Product: product})
}

// Replace godoc
// @ID           replaceProduct
// @Summary      Replace a product
// @Description  Overwrites every product field; all are required. Requires UPDATE.
// @Tags         products
// @Accept       json
// @Param        id path int true "Product ID"
// @Param        request body ProductRequest true "Product"
// @Success      204 "Updated"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Replace(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	if err := h.products.Replace(c.Request.Context(), id, in); err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	h.NoContent(c)
}

// Patch godoc
// @ID           patchProduct
// @Summary      Partially update a product
// @Description  Overwrites only the supplied fields. Requires UPDATE.
// @Tags         products
// @Accept       json
// @Param        id path int true "Product ID"
// @Param        request body ProductRequest true "Fields to change"
// @Success      204 "Updated"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [patch]
func (h *ProductHandler) Patch(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	body, err := decodeBody(c)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	patch, err := catalogapp.ParseProductPatch(body)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	if err := h.products.Patch(c.Request.Context(), id, patch); err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	h.NoContent(c)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Description  Deletes a product that was never sold. Requires DELETE.
// @Tags         products
// @Param        id path int true "Product ID"
// @Success      204 "Deleted"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return
	}
	h.NoContent(c)
}

func (h *ProductHandler) productID(c *gin.Context) (uint64, bool) {
	id, err := validation.NumericID("product", c.Param("id"))
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) bindInput(c *gin.Context) (catalogapp.ProductInput, bool) {
	body, err := decodeBody(c)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return catalogapp.ProductInput{}, false
	}
	in, err := catalogapp.ParseProductInput(body)
	if err != nil {
		h.Fail(c, err, http.StatusBadRequest)
		return catalogapp.ProductInput{}, false
	}
	return in, true
}
