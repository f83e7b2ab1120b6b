package handler

import (
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderServiceInterface
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req entity.CreateOrderRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.orderService.Create(c.Request.Context(), c.GetString(contextKeyEmail), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) ListByBuyer(c *gin.Context) {
	orders, err := h.orderService.ListByBuyer(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
