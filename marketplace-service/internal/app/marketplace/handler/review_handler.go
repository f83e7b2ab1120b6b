package handler

import (
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const reviewDuplicateMessage = "You have already reviewed this product."

type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req entity.CreateReviewRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, created, err := h.reviewService.Add(c.Request.Context(), c.GetString(contextKeyEmail), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, entity.MessageResponse{Message: reviewDuplicateMessage})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListByProduct - GET /reviews/:id, где id - это productId
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.reviewService.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
