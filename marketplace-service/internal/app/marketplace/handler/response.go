package handler

import (
	"errors"
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"
	"bazaar/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const invalidBodyMessage = "Invalid request body"

// respondError отправляет ответ об ошибке
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// respondServiceError переводит ошибку сервиса в HTTP статус.
// Ошибки БД и платежного шлюза отдаются как 500 с исходным текстом
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidAmount):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrWatchlistItemNotFound):
		respondError(c, http.StatusNotFound, "Watchlist item not found")
	case errors.Is(err, service.ErrAdvertisementNotFound):
		respondError(c, http.StatusNotFound, "Advertisement not found")
	default:
		log := logger.FromGin(c)
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// bindAndValidate разбирает JSON тело и проверяет теги validate.
// При ошибке ответ 400 уже отправлен
func bindAndValidate(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return false
	}

	if err := v.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return false
	}

	return true
}

// formatValidationError форматирует ошибки валидации
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Field() + " validation failed on '" + validationErrors[0].Tag() + "'"
	}
	return "Validation failed"
}
