package handler

import (
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const watchlistDuplicateMessage = "This item already in watchList"

type WatchlistHandler struct {
	watchlistService service.WatchlistServiceInterface
	validator        *validator.Validate
}

func NewWatchlistHandler(watchlistService service.WatchlistServiceInterface) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
		validator:        validator.New(),
	}
}

// Add - повторное добавление не ошибка: 200 и {"message": ...} вместо результата вставки
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req entity.AddWatchlistRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, created, err := h.watchlistService.Add(c.Request.Context(), c.GetString(contextKeyEmail), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, entity.MessageResponse{Message: watchlistDuplicateMessage})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *WatchlistHandler) ListByUser(c *gin.Context) {
	entries, err := h.watchlistService.ListByUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *WatchlistHandler) Delete(c *gin.Context) {
	result, err := h.watchlistService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
