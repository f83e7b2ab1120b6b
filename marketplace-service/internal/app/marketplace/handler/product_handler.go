package handler

import (
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductServiceInterface
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req entity.ProductRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAll - GET /products/all?start=&end=&sort=asc|desc
func (h *ProductHandler) ListAll(c *gin.Context) {
	var query entity.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	products, err := h.productService.List(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) HomeFeed(c *gin.Context) {
	products, err := h.productService.HomeFeed(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetByItemName(c *gin.Context) {
	product, err := h.productService.GetByItemName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListByVendor(c *gin.Context) {
	products, err := h.productService.ListByVendor(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Replace(c *gin.Context) {
	var req entity.ProductRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.productService.Replace(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	var req entity.UpdateProductStatusRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.productService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	result, err := h.productService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) ItemNames(c *gin.Context) {
	names, err := h.productService.ItemNames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, names)
}
