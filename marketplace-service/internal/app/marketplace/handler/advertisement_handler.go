package handler

import (
	"errors"
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdvertisementHandler struct {
	adService service.AdvertisementServiceInterface
	validator *validator.Validate
}

func NewAdvertisementHandler(adService service.AdvertisementServiceInterface) *AdvertisementHandler {
	return &AdvertisementHandler{
		adService: adService,
		validator: validator.New(),
	}
}

func (h *AdvertisementHandler) Create(c *gin.Context) {
	var req entity.CreateAdvertisementRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.adService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AdvertisementHandler) ListByVendor(c *gin.Context) {
	ads, err := h.adService.ListByVendor(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ads)
}

func (h *AdvertisementHandler) Update(c *gin.Context) {
	var req entity.UpdateAdvertisementRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.adService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete отвечает {success, message}: фронтенд смотрит на флаг success
func (h *AdvertisementHandler) Delete(c *gin.Context) {
	err := h.adService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrAdvertisementNotFound) {
		c.JSON(http.StatusNotFound, entity.DeleteAdvertisementResponse{
			Success: false,
			Message: "Advertisement not found",
		})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.DeleteAdvertisementResponse{
		Success: true,
		Message: "Advertisement deleted successfully",
	})
}
