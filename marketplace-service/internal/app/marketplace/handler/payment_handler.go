package handler

import (
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      validator.New(),
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req entity.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrInvalidAmount.Error())
		return
	}

	secret, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), req.Amount.Float64())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.ClientSecretResponse{ClientSecret: secret})
}
